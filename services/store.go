package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/models"
)

// Store mirrors the dataset into the relational database and persists the
// mutable relations. Reads on the recommendation path never touch it; it
// exists so ratings, preferences and search history survive restarts.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStore(db *gorm.DB, log *logger.Logger) *Store {
	return &Store{db: db, log: log}
}

// ImportInitialData copies the CSV dataset into the database once. A
// non-empty users table means a previous run already imported; nothing is
// overwritten.
func (s *Store) ImportInitialData(ds *Dataset) error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.log.Info("dataset already mirrored, skipping import")
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		users := ds.Users()
		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return fmt.Errorf("import users: %w", err)
			}
		}
		foods := ds.Foods()
		if len(foods) > 0 {
			if err := tx.Create(&foods).Error; err != nil {
				return fmt.Errorf("import foods: %w", err)
			}
		}
		weather := ds.Weather()
		if len(weather) > 0 {
			if err := tx.Create(&weather).Error; err != nil {
				return fmt.Errorf("import weather: %w", err)
			}
		}
		for _, u := range users {
			prefs := ds.PreferencesFor(u.UserID)
			if len(prefs) > 0 {
				if err := tx.Create(&prefs).Error; err != nil {
					return fmt.Errorf("import preferences: %w", err)
				}
			}
		}
		ratings := ds.Ratings()
		if len(ratings) > 0 {
			if err := tx.Create(&ratings).Error; err != nil {
				return fmt.Errorf("import ratings: %w", err)
			}
		}
		s.log.Info("dataset mirrored into database",
			"users", len(users), "foods", len(foods), "ratings", len(ratings))
		return nil
	})
}

// SaveRating appends a rating event.
func (s *Store) SaveRating(r models.Rating) error {
	if err := s.db.Create(&r).Error; err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

// UpsertPreference updates the (user, weather) row or creates it.
func (s *Store) UpsertPreference(pref models.UserPreference) error {
	var existing models.UserPreference
	err := s.db.Where("user_id = ? AND weather_type = ?", pref.UserID, pref.WeatherType).
		First(&existing).Error
	switch {
	case err == nil:
		existing.SpicePreference = pref.SpicePreference
		existing.SugarPreference = pref.SugarPreference
		existing.MealType = pref.MealType
		existing.RecentDislikes = pref.RecentDislikes
		if err := s.db.Save(&existing).Error; err != nil {
			return fmt.Errorf("update preference: %w", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&pref).Error; err != nil {
			return fmt.Errorf("create preference: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("lookup preference: %w", err)
	}
}

// SaveSearchTerm appends a search-history row.
func (s *Store) SaveSearchTerm(userID int, term string) error {
	entry := models.SearchHistory{
		UserID:     userID,
		SearchTerm: term,
		Timestamp:  float64(time.Now().UnixNano()) / float64(time.Second),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("save search term: %w", err)
	}
	return nil
}
