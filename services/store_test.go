package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store_test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Weather{},
		&models.UserPreference{},
		&models.Rating{},
		&models.SearchHistory{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return NewStore(db, logger.Nop())
}

func TestImportInitialDataOnce(t *testing.T) {
	store := newTestStore(t)
	ds := fixtureDataset()

	if err := store.ImportInitialData(ds); err != nil {
		t.Fatalf("first import: %v", err)
	}

	var users, foods, ratings int64
	store.db.Model(&models.User{}).Count(&users)
	store.db.Model(&models.Food{}).Count(&foods)
	store.db.Model(&models.Rating{}).Count(&ratings)
	if int(users) != len(ds.Users()) {
		t.Errorf("mirrored %d users, want %d", users, len(ds.Users()))
	}
	if int(foods) != len(ds.Foods()) {
		t.Errorf("mirrored %d foods, want %d", foods, len(ds.Foods()))
	}
	if int(ratings) != len(ds.Ratings()) {
		t.Errorf("mirrored %d ratings, want %d", ratings, len(ds.Ratings()))
	}

	// A non-empty users table means a previous run imported; nothing doubles.
	if err := store.ImportInitialData(ds); err != nil {
		t.Fatalf("second import: %v", err)
	}
	var after int64
	store.db.Model(&models.User{}).Count(&after)
	if after != users {
		t.Errorf("second import changed user count from %d to %d", users, after)
	}
}

func TestStoreSaveRatingAppends(t *testing.T) {
	store := newTestStore(t)

	for _, r := range []models.Rating{
		{UserID: 1, FoodID: 2, Rating: 5},
		{UserID: 1, FoodID: 2, Rating: 1},
	} {
		if err := store.SaveRating(r); err != nil {
			t.Fatalf("SaveRating: %v", err)
		}
	}

	var rows []models.Rating
	if err := store.db.Where("user_id = ? AND food_id = ?", 1, 2).
		Order("id").Find(&rows).Error; err != nil {
		t.Fatalf("load ratings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want both events kept", len(rows))
	}
	if rows[0].Rating != 5 || rows[1].Rating != 1 {
		t.Errorf("event values %d,%d, want 5,1 in append order", rows[0].Rating, rows[1].Rating)
	}
}

func TestStoreUpsertPreferenceRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.UpsertPreference(models.UserPreference{
		UserID: 1, WeatherType: "Cold", SpicePreference: 6, SugarPreference: 1, MealType: "Main Course",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.UpsertPreference(models.UserPreference{
		UserID: 1, WeatherType: "Cold", SpicePreference: 2, SugarPreference: 8, MealType: "Dessert",
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var rows []models.UserPreference
	if err := store.db.Where("user_id = ? AND weather_type = ?", 1, "Cold").
		Find(&rows).Error; err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want a single upserted row", len(rows))
	}
	if rows[0].SpicePreference != 2 || rows[0].SugarPreference != 8 || rows[0].MealType != "Dessert" {
		t.Errorf("row = %+v, want the updated values", rows[0])
	}

	if err := store.UpsertPreference(models.UserPreference{
		UserID: 1, WeatherType: "Hot", SpicePreference: 3,
	}); err != nil {
		t.Fatalf("create second weather row: %v", err)
	}
	var count int64
	store.db.Model(&models.UserPreference{}).Where("user_id = ?", 1).Count(&count)
	if count != 2 {
		t.Errorf("user has %d rows, want one per weather type", count)
	}
}

func TestStoreSaveSearchTerm(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveSearchTerm(3, "paneer"); err != nil {
		t.Fatalf("SaveSearchTerm: %v", err)
	}
	var row models.SearchHistory
	if err := store.db.Where("user_id = ?", 3).First(&row).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}
	if row.SearchTerm != "paneer" {
		t.Errorf("term = %q, want paneer", row.SearchTerm)
	}
	if row.Timestamp <= 0 {
		t.Errorf("timestamp = %v, want a positive epoch value", row.Timestamp)
	}
}
