package models

import "gorm.io/gorm"

// SearchHistory records the terms a user searched for, newest retrieved first.
type SearchHistory struct {
	gorm.Model
	UserID     int     `gorm:"index;not null" json:"user_id"`
	SearchTerm string  `gorm:"type:varchar(100);not null" json:"search_term"`
	Timestamp  float64 `gorm:"not null" json:"timestamp"`
}
