package services

import (
	"fmt"

	"github.com/anuragksng/Food-Recommendation-System/models"
)

// RatingService validates and records rating events, write-through to the
// mirror when one is configured.
type RatingService struct {
	ds    *Dataset
	store *Store
}

func NewRatingService(ds *Dataset, store *Store) *RatingService {
	return &RatingService{ds: ds, store: store}
}

// Add appends a rating for an existing (user, food) pair. The event log has
// no update or delete semantics; re-rating appends a new event.
func (r *RatingService) Add(userID, foodID, rating int) error {
	if _, ok := r.ds.UserByID(userID); !ok {
		return fmt.Errorf("unknown user %d", userID)
	}
	if _, ok := r.ds.FoodByID(foodID); !ok {
		return fmt.Errorf("unknown food %d", foodID)
	}
	event := models.Rating{UserID: userID, FoodID: foodID, Rating: rating}
	if r.store != nil {
		if err := r.store.SaveRating(event); err != nil {
			return err
		}
	}
	r.ds.AddRating(event)
	return nil
}

// ListByUser returns the user's rating events in append order.
func (r *RatingService) ListByUser(userID int) []models.Rating {
	return r.ds.RatingsBy(userID)
}

// LikedAndDisliked exposes the threshold-derived sets.
func (r *RatingService) LikedAndDisliked(userID int) (liked, disliked []int) {
	return r.ds.LikedAndDisliked(userID)
}
