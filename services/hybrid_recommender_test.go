package services

import (
	"math/rand"
	"testing"

	"github.com/anuragksng/Food-Recommendation-System/logger"
)

func newHybrid(ds *Dataset, seed int64) *HybridRecommender {
	rng := rand.New(rand.NewSource(seed))
	content := NewContentRecommender(ds, rng, logger.Nop())
	collab := NewCollaborativeRecommender(ds, logger.Nop())
	return NewHybridRecommender(ds, content, collab, logger.Nop())
}

func TestHybridRecommendFiltersAndDedupes(t *testing.T) {
	ds := fixtureDataset()
	got := newHybrid(ds, 1).Recommend(1, "Cold", 10)
	if len(got) == 0 {
		t.Fatal("no recommendations returned")
	}

	seen := make(map[int]bool)
	for _, d := range got {
		if d.Type != "Vegetarian" {
			t.Errorf("food %d has type %q, want stored Vegetarian preference enforced", d.FoodID, d.Type)
		}
		if seen[d.FoodID] {
			t.Errorf("food %d appears twice", d.FoodID)
		}
		seen[d.FoodID] = true
	}
}

func TestHybridRecommendNonePreferenceDefaultsNonVeg(t *testing.T) {
	ds := fixtureDataset()
	got := newHybrid(ds, 1).Recommend(4, "Cold", 10)
	for _, d := range got {
		if d.Type != "NonVegetarian" {
			t.Errorf("food %d has type %q, want NonVegetarian under the None default", d.FoodID, d.Type)
		}
	}
}

func TestHybridRecommendUnknownUser(t *testing.T) {
	ds := fixtureDataset()
	if got := newHybrid(ds, 1).Recommend(99, "Cold", 10); got != nil {
		t.Fatalf("unknown user got %v, want nil", detailIDs(got))
	}
}

func TestHybridRecommendContentComesFirst(t *testing.T) {
	ds := fixtureDataset()
	got := newHybrid(ds, 1).Recommend(2, "Cold", 10)
	if len(got) == 0 {
		t.Fatal("no recommendations returned")
	}
	// User 2 is non-vegetarian; the only Cold non-veg dish is the korma, which
	// the content pass surfaces. The collaborative pass can then only append
	// unseen IDs.
	if got[0].FoodID != 4 {
		t.Errorf("first result = food %d, want content-pass Chicken Korma (4)", got[0].FoodID)
	}
}

func TestHybridRecommendHonorsLimit(t *testing.T) {
	ds := fixtureDataset()
	got := newHybrid(ds, 1).Recommend(1, "Cold", 1)
	if len(got) > 1 {
		t.Fatalf("limit 1 returned %d results", len(got))
	}
}
