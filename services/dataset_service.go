package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anuragksng/Food-Recommendation-System/models"
	"github.com/anuragksng/Food-Recommendation-System/utils"
)

// Rating thresholds shared by the recommenders.
const (
	// LikeThreshold and above counts as "liked".
	LikeThreshold = 4
	// DislikeThreshold and below counts as "disliked".
	DislikeThreshold = 2
)

// FoodDetail is the record shape returned to the application layer. Type is
// the resolved dietary classification; VegNon echoes the legacy source field.
type FoodDetail struct {
	FoodID       int    `json:"food_id"`
	DishName     string `json:"dish_name"`
	CuisineType  string `json:"cuisine_type"`
	VegNon       string `json:"veg_non"`
	Type         string `json:"type"`
	Describe     string `json:"describe"`
	SpiceLevel   int    `json:"spice_level"`
	SugarLevel   int    `json:"sugar_level"`
	DishCategory string `json:"dish_category"`
	WeatherType  string `json:"weather_type"`
}

// Dataset is the in-memory copy of the five relations, normalized once at
// load time. It is an explicit object passed by reference to every
// recommender; there is no package-global cache. The RWMutex only guards the
// mutable relations (ratings, preferences, search history) against concurrent
// HTTP handlers; each recommendation call still rebuilds its intermediate
// state from scratch.
type Dataset struct {
	mu sync.RWMutex

	users       []models.User
	foods       []models.Food
	weather     []models.Weather
	preferences []models.UserPreference
	ratings     []models.Rating
	searches    []models.SearchHistory

	userIdx map[int]int
	foodIdx map[int]int
}

// NewDataset builds a Dataset from already-normalized relations. LoadDataset
// is the usual entry point; tests construct fixtures through this.
func NewDataset(users []models.User, foods []models.Food, weather []models.Weather,
	preferences []models.UserPreference, ratings []models.Rating) *Dataset {

	ds := &Dataset{
		users:       users,
		foods:       foods,
		weather:     weather,
		preferences: preferences,
		ratings:     ratings,
		userIdx:     make(map[int]int, len(users)),
		foodIdx:     make(map[int]int, len(foods)),
	}
	for i, u := range users {
		ds.userIdx[u.UserID] = i
	}
	for i, f := range foods {
		ds.foodIdx[f.FoodID] = i
	}
	return ds
}

// LoadDataset reads user.csv, food.csv, weather.csv, user_preferences.csv and
// ratings.csv from dir. All numeric coercion and default-filling happens
// here, in one pass; downstream code consumes fully-typed records.
func LoadDataset(dir string) (*Dataset, error) {
	users, err := loadUsers(filepath.Join(dir, "user.csv"))
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	foods, err := loadFoods(filepath.Join(dir, "food.csv"))
	if err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	weather, err := loadWeather(filepath.Join(dir, "weather.csv"))
	if err != nil {
		return nil, fmt.Errorf("load weather: %w", err)
	}
	prefs, err := loadPreferences(filepath.Join(dir, "user_preferences.csv"))
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	ratings, err := loadRatings(filepath.Join(dir, "ratings.csv"))
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	return NewDataset(users, foods, weather, prefs, ratings), nil
}

// Foods returns a copy of the food catalog in source order.
func (ds *Dataset) Foods() []models.Food {
	out := make([]models.Food, len(ds.foods))
	copy(out, ds.foods)
	return out
}

// FoodByID returns the food with the given ID.
func (ds *Dataset) FoodByID(id int) (models.Food, bool) {
	i, ok := ds.foodIdx[id]
	if !ok {
		return models.Food{}, false
	}
	return ds.foods[i], true
}

// FoodsForWeather returns foods whose weather association matches
// weatherType. An empty match set falls back to the full catalog so a rare
// weather value never silently yields zero results.
func (ds *Dataset) FoodsForWeather(weatherType string) []models.Food {
	var out []models.Food
	for _, f := range ds.foods {
		if f.WeatherType == weatherType {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return ds.Foods()
	}
	return out
}

// Users returns a copy of the user relation.
func (ds *Dataset) Users() []models.User {
	out := make([]models.User, len(ds.users))
	copy(out, ds.users)
	return out
}

// UserByID returns the user with the given ID.
func (ds *Dataset) UserByID(id int) (models.User, bool) {
	i, ok := ds.userIdx[id]
	if !ok {
		return models.User{}, false
	}
	return ds.users[i], true
}

// PreferencesFor returns every stored preference row for the user.
func (ds *Dataset) PreferencesFor(userID int) []models.UserPreference {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	var out []models.UserPreference
	for _, p := range ds.preferences {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// PreferenceFor returns the preference row for one (user, weather) pair.
func (ds *Dataset) PreferenceFor(userID int, weatherType string) (models.UserPreference, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for _, p := range ds.preferences {
		if p.UserID == userID && p.WeatherType == weatherType {
			return p, true
		}
	}
	return models.UserPreference{}, false
}

// UpsertPreference replaces the (user, weather) row or appends a new one.
func (ds *Dataset) UpsertPreference(pref models.UserPreference) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for i, p := range ds.preferences {
		if p.UserID == pref.UserID && p.WeatherType == pref.WeatherType {
			ds.preferences[i].SpicePreference = pref.SpicePreference
			ds.preferences[i].SugarPreference = pref.SugarPreference
			ds.preferences[i].MealType = pref.MealType
			ds.preferences[i].RecentDislikes = pref.RecentDislikes
			return
		}
	}
	ds.preferences = append(ds.preferences, pref)
}

// Ratings returns a copy of all rating events.
func (ds *Dataset) Ratings() []models.Rating {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	out := make([]models.Rating, len(ds.ratings))
	copy(out, ds.ratings)
	return out
}

// RatingsBy returns the rating events of one user, in append order.
func (ds *Dataset) RatingsBy(userID int) []models.Rating {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	var out []models.Rating
	for _, r := range ds.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// AddRating appends a rating event.
func (ds *Dataset) AddRating(r models.Rating) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.ratings = append(ds.ratings, r)
}

// LikedAndDisliked derives the user's liked and disliked food ID sets from
// the rating log using the shared thresholds. A food rated several times
// appears once per qualifying event; callers treat the slices as sets.
func (ds *Dataset) LikedAndDisliked(userID int) (liked, disliked []int) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	seenLiked := make(map[int]bool)
	seenDisliked := make(map[int]bool)
	for _, r := range ds.ratings {
		if r.UserID != userID {
			continue
		}
		switch {
		case r.Rating >= LikeThreshold:
			if !seenLiked[r.FoodID] {
				seenLiked[r.FoodID] = true
				liked = append(liked, r.FoodID)
			}
		case r.Rating <= DislikeThreshold:
			if !seenDisliked[r.FoodID] {
				seenDisliked[r.FoodID] = true
				disliked = append(disliked, r.FoodID)
			}
		}
	}
	return liked, disliked
}

// WeatherPreferredFoods returns the dish names the weather relation marks as
// preferred for weatherType.
func (ds *Dataset) WeatherPreferredFoods(weatherType string) []string {
	for _, w := range ds.weather {
		if w.WeatherType == weatherType {
			if strings.TrimSpace(w.PreferredFoods) == "" {
				return nil
			}
			parts := strings.Split(w.PreferredFoods, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if t := strings.TrimSpace(p); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
	}
	return nil
}

// SearchHistoryFor returns the user's search terms, newest first.
func (ds *Dataset) SearchHistoryFor(userID int) []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	var entries []models.SearchHistory
	for _, s := range ds.searches {
		if s.UserID == userID {
			entries = append(entries, s)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SearchTerm
	}
	return out
}

// AddSearchTerm records a search term for the user.
func (ds *Dataset) AddSearchTerm(userID int, term string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.searches = append(ds.searches, models.SearchHistory{
		UserID:     userID,
		SearchTerm: term,
		Timestamp:  float64(time.Now().UnixNano()) / float64(time.Second),
	})
}

// Weather returns a copy of the weather relation.
func (ds *Dataset) Weather() []models.Weather {
	out := make([]models.Weather, len(ds.weather))
	copy(out, ds.weather)
	return out
}

// ---- CSV loading ----

func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[strings.TrimSpace(col)] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func loadUsers(path string) ([]models.User, error) {
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(recs))
	for _, rec := range recs {
		id := utils.ToInt(rec["User_ID"])
		username := utils.NonEmpty(rec["Username"], fmt.Sprintf("user%d", id))
		users = append(users, models.User{
			UserID:            id,
			Username:          username,
			Age:               utils.NonEmpty(rec["Age"], "Unknown"),
			Gender:            utils.NonEmpty(rec["Gender"], "Other"),
			DietaryPreference: utils.NonEmpty(rec["Dietary_Preferences"], "None"),
			Allergies:         utils.NonEmpty(rec["Allergies"], "None"),
		})
	}
	return users, nil
}

func loadFoods(path string) ([]models.Food, error) {
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	foods := make([]models.Food, 0, len(recs))
	for _, rec := range recs {
		foods = append(foods, models.Food{
			FoodID:       utils.ToInt(rec["Food_ID"]),
			DishName:     strings.TrimSpace(rec["Dish_Name"]),
			CuisineType:  utils.NonEmpty(rec["Cuisine_Type"], "Other"),
			VegNon:       strings.TrimSpace(rec["Veg_Non"]),
			FoodType:     strings.TrimSpace(rec["Type"]),
			Describe:     utils.NonEmpty(rec["Describe"], "No description available"),
			SpiceLevel:   utils.ToInt(rec["Spice_Level"]),
			SugarLevel:   utils.ToInt(rec["Sugar_Level"]),
			DishCategory: utils.NonEmpty(rec["Dish_Category"], "Other"),
			WeatherType:  utils.NonEmpty(rec["Weather_Type"], "Any"),
		})
	}
	return foods, nil
}

func loadWeather(path string) ([]models.Weather, error) {
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	weather := make([]models.Weather, 0, len(recs))
	for _, rec := range recs {
		weather = append(weather, models.Weather{
			WeatherType:    strings.TrimSpace(rec["Weather_Type"]),
			PreferredFoods: utils.NonEmpty(rec["Preferred_Foods"], ""),
		})
	}
	return weather, nil
}

func loadPreferences(path string) ([]models.UserPreference, error) {
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	prefs := make([]models.UserPreference, 0, len(recs))
	for _, rec := range recs {
		prefs = append(prefs, models.UserPreference{
			UserID:          utils.ToInt(rec["User_ID"]),
			WeatherType:     utils.NonEmpty(rec["Weather_Type"], "Any"),
			SpicePreference: utils.ToInt(rec["Spice_Preference"]),
			SugarPreference: utils.ToInt(rec["Sugar_Preference"]),
			MealType:        utils.NonEmpty(rec["Meal_Type"], "Any"),
			RecentDislikes:  strings.TrimSpace(rec["Recent_Dislikes"]),
		})
	}
	return prefs, nil
}

func loadRatings(path string) ([]models.Rating, error) {
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	ratings := make([]models.Rating, 0, len(recs))
	for _, rec := range recs {
		// Rows missing any of the three fields are dropped, everything
		// else is coerced with fill-0.
		if strings.TrimSpace(rec["User_ID"]) == "" ||
			strings.TrimSpace(rec["Food_ID"]) == "" ||
			strings.TrimSpace(rec["Rating"]) == "" {
			continue
		}
		ratings = append(ratings, models.Rating{
			UserID: utils.ToInt(rec["User_ID"]),
			FoodID: utils.ToInt(rec["Food_ID"]),
			Rating: utils.ToInt(rec["Rating"]),
		})
	}
	return ratings, nil
}
