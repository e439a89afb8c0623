package services

import (
	"github.com/anuragksng/Food-Recommendation-System/logger"
)

// RefreshRecommender recomputes a user's list after feedback: collaborative
// results first, then search-history-driven content results, de-duplicated,
// with initial recommendations filling the remainder.
type RefreshRecommender struct {
	ds      *Dataset
	collab  *CollaborativeRecommender
	search  *SearchService
	initial *InitialRecommender
	log     *logger.Logger
}

func NewRefreshRecommender(ds *Dataset, collab *CollaborativeRecommender, search *SearchService,
	initial *InitialRecommender, log *logger.Logger) *RefreshRecommender {
	return &RefreshRecommender{ds: ds, collab: collab, search: search, initial: initial, log: log}
}

// Recommend merges the feedback-driven sources and pads with initial
// recommendations up to limit.
func (r *RefreshRecommender) Recommend(userID int, weatherType string, limit int) []FoodDetail {
	if limit <= 0 {
		limit = DefaultInitialLimit
	}

	liked, disliked := r.ds.LikedAndDisliked(userID)

	var collabRecs []FoodDetail
	if len(liked) > 0 {
		collabRecs = r.collab.Recommend(userID, liked, disliked, limit)
	}
	historyRecs := r.search.HistoryRecommendations(userID, liked, disliked)

	seen := make(map[int]bool)
	var out []FoodDetail
	for _, rec := range collabRecs {
		if !seen[rec.FoodID] {
			seen[rec.FoodID] = true
			out = append(out, rec)
		}
	}
	for _, rec := range historyRecs {
		if !seen[rec.FoodID] {
			seen[rec.FoodID] = true
			out = append(out, rec)
		}
	}
	if len(out) < limit {
		for _, rec := range r.initial.Recommend(userID, weatherType, limit) {
			if len(out) >= limit {
				break
			}
			if !seen[rec.FoodID] {
				seen[rec.FoodID] = true
				out = append(out, rec)
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}

	r.log.Debug("refreshed recommendations",
		"user_id", userID, "collaborative", len(collabRecs), "history", len(historyRecs), "returned", len(out))
	return out
}
