package services

import (
	"math/rand"
	"testing"

	"github.com/anuragksng/Food-Recommendation-System/logger"
)

func newRefresh(ds *Dataset, seed int64) *RefreshRecommender {
	rng := rand.New(rand.NewSource(seed))
	collab := NewCollaborativeRecommender(ds, logger.Nop())
	search := NewSearchService(ds, nil, logger.Nop())
	initial := NewInitialRecommender(ds, rng, logger.Nop())
	return NewRefreshRecommender(ds, collab, search, initial, logger.Nop())
}

func TestRefreshRecommendMergesSources(t *testing.T) {
	ds := fixtureDataset()
	ds.AddSearchTerm(1, "biryani")

	got := newRefresh(ds, 1).Recommend(1, "Cold", 10)
	if len(got) == 0 {
		t.Fatal("no recommendations returned")
	}

	// Collaborative output for user 1 is foods 4 and 8; the biryani search
	// adds food 7 (8 is deduplicated).
	for _, id := range []int{4, 8, 7} {
		if !containsID(got, id) {
			t.Errorf("results %v missing food %d", detailIDs(got), id)
		}
	}
	seen := make(map[int]bool)
	for _, d := range got {
		if seen[d.FoodID] {
			t.Errorf("food %d appears twice", d.FoodID)
		}
		seen[d.FoodID] = true
	}
}

func TestRefreshRecommendPadsWithInitial(t *testing.T) {
	ds := fixtureDataset()
	// User 4 has no ratings and no history; everything comes from the
	// initial recommender.
	got := newRefresh(ds, 1).Recommend(4, "Cold", 4)
	if len(got) != 4 {
		t.Fatalf("got %d results, want the limit of 4", len(got))
	}
}

func TestRefreshRecommendHonorsLimit(t *testing.T) {
	ds := fixtureDataset()
	ds.AddSearchTerm(1, "paneer")
	got := newRefresh(ds, 1).Recommend(1, "Cold", 2)
	if len(got) > 2 {
		t.Fatalf("limit 2 returned %d results", len(got))
	}
}
