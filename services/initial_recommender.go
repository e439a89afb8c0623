package services

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/models"
)

const (
	// DefaultInitialLimit is the result limit when the caller passes none.
	DefaultInitialLimit = 10
	// minInitialResults is the floor below which the list is padded with
	// random catalog picks.
	minInitialResults = 5
)

// InitialRecommender produces the first-session list: weather-matched foods
// scored by closeness to the user's stored spice/sugar preferences, before
// any rating history exists to feed the other recommenders.
type InitialRecommender struct {
	ds  *Dataset
	rng *rand.Rand
	log *logger.Logger
}

func NewInitialRecommender(ds *Dataset, rng *rand.Rand, log *logger.Logger) *InitialRecommender {
	return &InitialRecommender{ds: ds, rng: rng, log: log}
}

// Recommend scores the weather-matched pool by
// |spice - spicePref| + |sugar - sugarPref| (lower is better, stable sort),
// optionally narrows by the preferred meal type as a substring of the dish
// category, moves dishes the weather table marks as preferred to the front,
// drops the user's disliked foods, and pads with random catalog picks when
// fewer than five results survive. Unlike the content path, an unmatched
// weather type here yields an empty pool, so the list is pad-only.
func (r *InitialRecommender) Recommend(userID int, weatherType string, limit int) []FoodDetail {
	if limit <= 0 {
		limit = DefaultInitialLimit
	}

	var pool []models.Food
	for _, f := range r.ds.Foods() {
		if f.WeatherType == weatherType {
			pool = append(pool, f)
		}
	}

	if pref, ok := r.ds.PreferenceFor(userID, weatherType); ok {
		mealType := strings.ToLower(strings.TrimSpace(pref.MealType))
		if mealType != "" && mealType != "any" {
			var narrowed []models.Food
			for _, f := range pool {
				if strings.Contains(strings.ToLower(f.DishCategory), mealType) {
					narrowed = append(narrowed, f)
				}
			}
			pool = narrowed
		}

		score := func(f models.Food) int {
			return abs(f.SpiceLevel-pref.SpicePreference) + abs(f.SugarLevel-pref.SugarPreference)
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return score(pool[i]) < score(pool[j])
		})
	}

	// Dishes the weather table marks as preferred lead; score order holds
	// inside each partition.
	if names := r.ds.WeatherPreferredFoods(weatherType); len(names) > 0 {
		preferred := make(map[string]bool, len(names))
		for _, n := range names {
			preferred[strings.ToLower(n)] = true
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return preferred[strings.ToLower(pool[i].DishName)] &&
				!preferred[strings.ToLower(pool[j].DishName)]
		})
	}

	_, disliked := r.ds.LikedAndDisliked(userID)
	dislikedSet := make(map[int]bool, len(disliked))
	for _, id := range disliked {
		dislikedSet[id] = true
	}

	var out []FoodDetail
	seen := make(map[int]bool)
	for _, f := range pool {
		if len(out) == limit {
			break
		}
		if dislikedSet[f.FoodID] || seen[f.FoodID] {
			continue
		}
		seen[f.FoodID] = true
		out = append(out, Detail(f))
	}

	// Too few matches: pad with general picks from the whole catalog.
	if len(out) < minInitialResults {
		all := r.ds.Foods()
		for _, i := range r.rng.Perm(len(all)) {
			if len(out) >= minInitialResults || len(out) == limit {
				break
			}
			f := all[i]
			if seen[f.FoodID] {
				continue
			}
			seen[f.FoodID] = true
			out = append(out, Detail(f))
		}
	}

	r.log.Debug("initial recommendations generated",
		"user_id", userID, "weather", weatherType, "returned", len(out))
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
