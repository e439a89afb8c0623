package models

import "gorm.io/gorm"

// Rating is an append-only event: no update or delete semantics.
// A value >= 4 counts as liked, <= 2 as disliked (see services thresholds).
type Rating struct {
	gorm.Model
	UserID int `gorm:"index;not null" json:"user_id"`
	FoodID int `gorm:"index;not null" json:"food_id"`
	Rating int `gorm:"not null" json:"rating"`
}
