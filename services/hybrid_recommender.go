package services

import (
	"github.com/anuragksng/Food-Recommendation-System/logger"
)

// DefaultHybridLimit is the result limit when the caller passes none.
const DefaultHybridLimit = 10

// HybridRecommender concatenates content-based and collaborative output with
// de-duplication. There is no score blending: content results come first in
// neighbor order, then collaborative results, each deduplicated against a
// running seen-set keyed by food ID.
type HybridRecommender struct {
	ds      *Dataset
	content *ContentRecommender
	collab  *CollaborativeRecommender
	log     *logger.Logger
}

func NewHybridRecommender(ds *Dataset, content *ContentRecommender, collab *CollaborativeRecommender, log *logger.Logger) *HybridRecommender {
	return &HybridRecommender{ds: ds, content: content, collab: collab, log: log}
}

// Recommend generates the merged list for the user. The user's stored
// dietary preference drives the final-safeguard filter on both sub-lists;
// both sources are asked for twice the requested limit so de-duplication and
// filtering still leave enough candidates.
func (h *HybridRecommender) Recommend(userID int, weatherType string, limit int) []FoodDetail {
	if limit <= 0 {
		limit = DefaultHybridLimit
	}

	user, ok := h.ds.UserByID(userID)
	if !ok {
		return nil
	}
	preference := user.DietaryPreference
	if preference == "" || preference == "None" {
		preference = "Non-Vegetarian"
	}

	liked, disliked := h.ds.LikedAndDisliked(userID)

	contentRecs := h.content.Recommend(userID, preference, weatherType, limit*2)
	collabRecs := h.collab.Recommend(userID, liked, disliked, limit*2)

	// Final safeguard: both lists pass the dietary filter even though the
	// content path already applied it internally.
	contentRecs = FilterDetails(contentRecs, preference)
	collabRecs = FilterDetails(collabRecs, preference)

	seen := make(map[int]bool)
	var out []FoodDetail
	for _, rec := range contentRecs {
		if !seen[rec.FoodID] {
			seen[rec.FoodID] = true
			out = append(out, rec)
		}
	}
	for _, rec := range collabRecs {
		if !seen[rec.FoodID] {
			seen[rec.FoodID] = true
			out = append(out, rec)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}

	h.log.Debug("hybrid recommendations generated",
		"user_id", userID, "content", len(contentRecs), "collaborative", len(collabRecs), "returned", len(out))
	return out
}
