package services

import (
	"github.com/anuragksng/Food-Recommendation-System/models"
)

// fixtureDataset builds a small catalog shared by the recommender tests.
// Foods 1-4 are Cold-weather, 5-6 Hot, 7-8 catalog-wide (Any).
func fixtureDataset() *Dataset {
	users := []models.User{
		{UserID: 1, Username: "asha", DietaryPreference: "Vegetarian"},
		{UserID: 2, Username: "vikram", DietaryPreference: "Non-Vegetarian"},
		{UserID: 3, Username: "neha", DietaryPreference: "Vegetarian"},
		{UserID: 4, Username: "ravi", DietaryPreference: "None"},
	}
	foods := []models.Food{
		{FoodID: 1, DishName: "Paneer Tikka", CuisineType: "Indian", FoodType: "Vegetarian",
			Describe: "paneer cubes grilled with smoky spices", SpiceLevel: 6, SugarLevel: 1,
			DishCategory: "Starter", WeatherType: "Cold"},
		{FoodID: 2, DishName: "Paneer Curry", CuisineType: "Indian", FoodType: "Vegetarian",
			Describe: "paneer cubes simmered in creamy gravy", SpiceLevel: 5, SugarLevel: 2,
			DishCategory: "Main Course", WeatherType: "Cold"},
		{FoodID: 3, DishName: "Chocolate Cake", CuisineType: "Continental", FoodType: "Vegetarian",
			Describe: "chocolate sponge layered with ganache", SpiceLevel: 0, SugarLevel: 9,
			DishCategory: "Dessert", WeatherType: "Cold"},
		{FoodID: 4, DishName: "Chicken Korma", CuisineType: "Indian", FoodType: "NonVegetarian",
			Describe: "chicken braised in cashew gravy", SpiceLevel: 6, SugarLevel: 2,
			DishCategory: "Main Course", WeatherType: "Cold"},
		{FoodID: 5, DishName: "Mango Lassi", CuisineType: "Indian", FoodType: "Vegetarian",
			Describe: "chilled yogurt drink with mango pulp", SpiceLevel: 0, SugarLevel: 6,
			DishCategory: "Beverage", WeatherType: "Hot"},
		{FoodID: 6, DishName: "Fish Fry", CuisineType: "Coastal", FoodType: "NonVegetarian",
			Describe: "crisp fried fish with curry leaves", SpiceLevel: 7, SugarLevel: 0,
			DishCategory: "Starter", WeatherType: "Hot"},
		{FoodID: 7, DishName: "Veg Biryani", CuisineType: "Indian", FoodType: "Vegetarian",
			Describe: "fragrant rice with garden vegetables", SpiceLevel: 5, SugarLevel: 1,
			DishCategory: "Main Course", WeatherType: "Any"},
		{FoodID: 8, DishName: "Chicken Biryani", CuisineType: "Indian", FoodType: "NonVegetarian",
			Describe: "fragrant rice layered with spiced chicken", SpiceLevel: 7, SugarLevel: 1,
			DishCategory: "Main Course", WeatherType: "Any"},
	}
	weather := []models.Weather{
		{WeatherType: "Cold", PreferredFoods: "Paneer Tikka, Chicken Korma"},
		{WeatherType: "Hot", PreferredFoods: "Mango Lassi"},
	}
	prefs := []models.UserPreference{
		{UserID: 1, WeatherType: "Cold", SpicePreference: 6, SugarPreference: 1, MealType: "Any"},
		{UserID: 1, WeatherType: "Hot", SpicePreference: 3, SugarPreference: 5, MealType: "Breakfast"},
		{UserID: 3, WeatherType: "Cold", SpicePreference: 0, SugarPreference: 9, MealType: "Dessert"},
	}
	ratings := []models.Rating{
		{UserID: 1, FoodID: 1, Rating: 5},
		{UserID: 1, FoodID: 2, Rating: 5},
		{UserID: 2, FoodID: 1, Rating: 5},
		{UserID: 2, FoodID: 4, Rating: 5},
		{UserID: 2, FoodID: 8, Rating: 4},
		{UserID: 3, FoodID: 3, Rating: 5},
		{UserID: 3, FoodID: 6, Rating: 1},
	}
	return NewDataset(users, foods, weather, prefs, ratings)
}

func detailIDs(details []FoodDetail) []int {
	out := make([]int, len(details))
	for i, d := range details {
		out[i] = d.FoodID
	}
	return out
}

func containsID(details []FoodDetail, id int) bool {
	for _, d := range details {
		if d.FoodID == id {
			return true
		}
	}
	return false
}
