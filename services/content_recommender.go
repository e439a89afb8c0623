package services

import (
	"math/rand"
	"strings"

	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/models"
)

// DefaultContentLimit is the result limit when the caller passes none.
const DefaultContentLimit = 20

// ContentRecommender retrieves foods textually similar to a user's liked
// history. The random source is injected so the cold-start fallback is
// deterministic under test.
type ContentRecommender struct {
	ds  *Dataset
	rng *rand.Rand
	log *logger.Logger
}

func NewContentRecommender(ds *Dataset, rng *rand.Rand, log *logger.Logger) *ContentRecommender {
	return &ContentRecommender{ds: ds, rng: rng, log: log}
}

// Recommend generates content-based recommendations for the user.
//
// The candidate pool is weather-filtered (with full-catalog fallback when the
// match set is empty), a TF-IDF vectorizer is fitted fresh over the pool's
// feature blobs, and neighbors are retrieved by cosine distance from the
// centroid of the user's liked foods present in the pool. A user with no
// intersecting liked history gets a uniform random sample instead. Results
// are annotated with their resolved dietary type and filtered against the
// stated preference; incompatible entries are dropped, not substituted.
func (c *ContentRecommender) Recommend(userID int, dietaryPreference, weatherType string, limit int) []FoodDetail {
	if limit <= 0 {
		limit = DefaultContentLimit
	}

	pool := c.ds.FoodsForWeather(weatherType)
	if len(pool) == 0 {
		return nil
	}

	docs := make([]string, len(pool))
	for i, f := range pool {
		docs[i] = featureBlob(f)
	}
	var vectorizer tfidfVectorizer
	vecs := vectorizer.fitTransform(docs)

	liked, _ := c.ds.LikedAndDisliked(userID)
	likedSet := make(map[int]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}
	var likedVecs []sparseVec
	for i, f := range pool {
		if likedSet[f.FoodID] {
			likedVecs = append(likedVecs, vecs[i])
		}
	}

	k := limit
	if k > len(pool) {
		k = len(pool)
	}

	var order []int
	if len(likedVecs) > 0 {
		order = nearestNeighbors(meanVector(likedVecs), vecs, k)
	} else {
		// Cold start: uniform sample without replacement.
		order = c.rng.Perm(len(pool))[:k]
	}

	details := make([]FoodDetail, 0, len(order))
	for _, i := range order {
		details = append(details, Detail(pool[i]))
	}
	details = FilterDetails(details, dietaryPreference)
	if len(details) > limit {
		details = details[:limit]
	}

	c.log.Debug("content recommendations generated",
		"user_id", userID, "weather", weatherType, "pool", len(pool), "returned", len(details))
	return details
}

// featureBlob concatenates the text attributes used for similarity.
func featureBlob(f models.Food) string {
	return strings.Join([]string{f.DishName, f.CuisineType, f.DishCategory, f.Describe}, " ")
}
