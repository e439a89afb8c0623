package services

import (
	"sort"

	"github.com/anuragksng/Food-Recommendation-System/logger"
)

const (
	// DefaultCollaborativeLimit is the result limit when the caller passes none.
	DefaultCollaborativeLimit = 10
	// topSimilarUsers bounds the neighborhood used for aggregation.
	topSimilarUsers = 5
)

// CollaborativeRecommender recommends foods highly rated by users whose
// rating patterns resemble the target's liked/disliked profile.
type CollaborativeRecommender struct {
	ds  *Dataset
	log *logger.Logger
}

func NewCollaborativeRecommender(ds *Dataset, log *logger.Logger) *CollaborativeRecommender {
	return &CollaborativeRecommender{ds: ds, log: log}
}

// Recommend builds the full user-by-food rating matrix (missing entries are
// 0, conflating "no opinion" with "lowest rating" to match the upstream data
// pipeline), correlates a synthetic profile for the target user
// (liked foods at the maximum weight, disliked at the minimum) against every
// other user's row by cosine similarity, and pools the foods those neighbors
// rated at or above the like threshold. Foods the target already rated are
// excluded. Similarity ties keep ascending user-ID matrix order; the pooled
// result iterates in ascending food ID.
func (r *CollaborativeRecommender) Recommend(userID int, liked, disliked []int, limit int) []FoodDetail {
	if limit <= 0 {
		limit = DefaultCollaborativeLimit
	}

	ratings := r.ds.Ratings()
	if len(ratings) == 0 || len(liked) == 0 {
		return nil
	}

	// Matrix axes: sorted unique user and food IDs.
	userSet := make(map[int]bool)
	foodSet := make(map[int]bool)
	for _, rt := range ratings {
		userSet[rt.UserID] = true
		foodSet[rt.FoodID] = true
	}
	userIDs := sortedKeys(userSet)
	foodIDs := sortedKeys(foodSet)
	colIdx := make(map[int]int, len(foodIDs))
	for i, id := range foodIDs {
		colIdx[id] = i
	}

	rows := make(map[int][]float64, len(userIDs))
	for _, uid := range userIDs {
		rows[uid] = make([]float64, len(foodIDs))
	}
	for _, rt := range ratings {
		rows[rt.UserID][colIdx[rt.FoodID]] = float64(rt.Rating)
	}

	// Synthetic profile in the same column space.
	profile := make([]float64, len(foodIDs))
	for _, id := range liked {
		if i, ok := colIdx[id]; ok {
			profile[i] = 5
		}
	}
	for _, id := range disliked {
		if i, ok := colIdx[id]; ok {
			profile[i] = 1
		}
	}
	if vectorSum(profile) <= 0 {
		return nil
	}

	type userSim struct {
		userID int
		sim    float64
	}
	var sims []userSim
	for _, uid := range userIDs {
		if uid == userID {
			continue
		}
		row := rows[uid]
		if vectorSum(row) <= 0 {
			continue
		}
		sims = append(sims, userSim{userID: uid, sim: cosineDense(row, profile)})
	}
	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].sim > sims[j].sim
	})

	var neighbors []int
	for _, s := range sims {
		if len(neighbors) == topSimilarUsers {
			break
		}
		if s.sim > 0 {
			neighbors = append(neighbors, s.userID)
		}
	}

	// Pool the neighbors' highly-rated foods.
	pooled := make(map[int]bool)
	for _, rt := range ratings {
		if rt.Rating < LikeThreshold {
			continue
		}
		for _, uid := range neighbors {
			if rt.UserID == uid {
				pooled[rt.FoodID] = true
				break
			}
		}
	}

	rated := make(map[int]bool, len(liked)+len(disliked))
	for _, id := range liked {
		rated[id] = true
	}
	for _, id := range disliked {
		rated[id] = true
	}

	var out []FoodDetail
	for _, id := range sortedKeys(pooled) {
		if rated[id] {
			continue
		}
		if len(out) == limit {
			break
		}
		if f, ok := r.ds.FoodByID(id); ok {
			out = append(out, Detail(f))
		}
	}

	r.log.Debug("collaborative recommendations generated",
		"user_id", userID, "neighbors", len(neighbors), "returned", len(out))
	return out
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func vectorSum(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum
}
