package models

import "gorm.io/gorm"

// Weather maps a weather type to the comma-separated dish names the dataset
// marks as preferred under it.
type Weather struct {
	gorm.Model
	WeatherType    string `gorm:"type:varchar(20);not null" json:"weather_type"`
	PreferredFoods string `gorm:"type:text" json:"preferred_foods"`
}
