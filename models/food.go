package models

// Food is immutable reference data loaded once per process.
//
// FoodType holds the standardized dietary classification
// ("Vegetarian"/"NonVegetarian"); VegNon keeps the legacy free-text value the
// dataset shipped with. Resolution between the two lives in the services
// package, not here.
type Food struct {
	FoodID       int    `gorm:"primaryKey" json:"food_id"`
	DishName     string `gorm:"not null" json:"dish_name"`
	CuisineType  string `gorm:"type:varchar(50)" json:"cuisine_type"`
	VegNon       string `gorm:"type:varchar(20)" json:"veg_non"`
	FoodType     string `gorm:"type:varchar(20)" json:"type"`
	Describe     string `gorm:"type:text" json:"describe"`
	SpiceLevel   int    `json:"spice_level"`
	SugarLevel   int    `json:"sugar_level"`
	DishCategory string `gorm:"type:varchar(50)" json:"dish_category"`
	WeatherType  string `gorm:"type:varchar(20)" json:"weather_type"`
}
