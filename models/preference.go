package models

import "gorm.io/gorm"

// UserPreference holds one row per (user, weather type), upserted on change.
type UserPreference struct {
	gorm.Model
	UserID          int    `gorm:"index;not null" json:"user_id"`
	WeatherType     string `gorm:"type:varchar(20);not null" json:"weather_type"`
	SpicePreference int    `json:"spice_preference"`
	SugarPreference int    `json:"sugar_preference"`
	MealType        string `gorm:"type:varchar(20)" json:"meal_type"`
	RecentDislikes  string `gorm:"type:text" json:"recent_dislikes"`
}
