package services

import (
	"fmt"

	"github.com/anuragksng/Food-Recommendation-System/models"
)

// PreferenceService reads and upserts per-weather preference rows,
// write-through to the mirror when one is configured.
type PreferenceService struct {
	ds    *Dataset
	store *Store
}

func NewPreferenceService(ds *Dataset, store *Store) *PreferenceService {
	return &PreferenceService{ds: ds, store: store}
}

// For returns all stored preference rows for the user.
func (p *PreferenceService) For(userID int) []models.UserPreference {
	return p.ds.PreferencesFor(userID)
}

// Upsert replaces or creates the (user, weather) preference row.
func (p *PreferenceService) Upsert(pref models.UserPreference) error {
	if _, ok := p.ds.UserByID(pref.UserID); !ok {
		return fmt.Errorf("unknown user %d", pref.UserID)
	}
	if p.store != nil {
		if err := p.store.UpsertPreference(pref); err != nil {
			return err
		}
	}
	p.ds.UpsertPreference(pref)
	return nil
}
