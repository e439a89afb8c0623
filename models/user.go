package models

// User carries the signup-time profile. The primary key comes from the
// User_ID column of the source dataset, so no auto-increment here.
type User struct {
	UserID            int    `gorm:"primaryKey" json:"user_id"`
	Username          string `gorm:"uniqueIndex;not null" json:"username"`
	Age               string `gorm:"type:varchar(20)" json:"age"`
	Gender            string `gorm:"type:varchar(20)" json:"gender"`
	DietaryPreference string `gorm:"type:varchar(50)" json:"dietary_preference"`
	Allergies         string `gorm:"type:varchar(200)" json:"allergies"`
}
