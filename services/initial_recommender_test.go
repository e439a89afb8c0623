package services

import (
	"math/rand"
	"testing"

	"github.com/anuragksng/Food-Recommendation-System/logger"
)

func TestInitialRecommendScoresByPreferenceDistance(t *testing.T) {
	ds := fixtureDataset()
	rec := NewInitialRecommender(ds, rand.New(rand.NewSource(1)), logger.Nop())

	// User 1's Cold preference is spice 6, sugar 1. Distances in the Cold
	// pool: tikka 0, korma 1, curry 2, cake 14. The weather table prefers
	// the tikka and the korma, which the distance order already leads with.
	got := rec.Recommend(1, "Cold", 4)
	want := []int{1, 4, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", detailIDs(got), want)
	}
	for i, id := range want {
		if got[i].FoodID != id {
			t.Fatalf("order %v, want %v", detailIDs(got), want)
		}
	}
}

func TestInitialRecommendMealTypeNarrowsAndPads(t *testing.T) {
	ds := fixtureDataset()
	rec := NewInitialRecommender(ds, rand.New(rand.NewSource(1)), logger.Nop())

	// User 3 prefers Dessert in Cold weather; only the chocolate cake
	// qualifies, so the list pads with random catalog picks to five.
	got := rec.Recommend(3, "Cold", 10)
	if len(got) != 5 {
		t.Fatalf("got %d results, want padded minimum of 5", len(got))
	}
	if got[0].FoodID != 3 {
		t.Errorf("first result = food %d, want the dessert (3)", got[0].FoodID)
	}
	seen := make(map[int]bool)
	for _, d := range got {
		if seen[d.FoodID] {
			t.Errorf("food %d appears twice", d.FoodID)
		}
		seen[d.FoodID] = true
	}
}

func TestInitialRecommendDropsDisliked(t *testing.T) {
	ds := fixtureDataset()
	rec := NewInitialRecommender(ds, rand.New(rand.NewSource(1)), logger.Nop())

	// The Hot pool is {lassi, fish fry} and user 3 rated the fish fry 1, so
	// only the lassi survives the pool pass before padding.
	got := rec.Recommend(3, "Hot", 10)
	if len(got) == 0 {
		t.Fatal("no recommendations returned")
	}
	if got[0].FoodID != 5 {
		t.Errorf("first result = food %d, want lassi (5)", got[0].FoodID)
	}
}

func TestInitialRecommendWeatherPreferredLead(t *testing.T) {
	ds := fixtureDataset()
	rec := NewInitialRecommender(ds, rand.New(rand.NewSource(1)), logger.Nop())

	// User 2 stored no Cold preference row, so the pool keeps catalog order
	// except that the weather table's preferred dishes (tikka and korma)
	// move to the front.
	got := rec.Recommend(2, "Cold", 4)
	want := []int{1, 4, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", detailIDs(got), want)
	}
	for i, id := range want {
		if got[i].FoodID != id {
			t.Fatalf("order %v, want preferred-first order %v", detailIDs(got), want)
		}
	}
}

func TestInitialRecommendUnmatchedWeatherPadsOnly(t *testing.T) {
	ds := fixtureDataset()
	rec := NewInitialRecommender(ds, rand.New(rand.NewSource(1)), logger.Nop())

	// No food carries this weather type; the pool is empty and the whole
	// list comes from random catalog padding.
	got := rec.Recommend(4, "Snowstorm", 10)
	if len(got) != 5 {
		t.Fatalf("got %d results, want the padded minimum of 5", len(got))
	}
	seen := make(map[int]bool)
	for _, d := range got {
		if seen[d.FoodID] {
			t.Errorf("food %d appears twice", d.FoodID)
		}
		seen[d.FoodID] = true
	}
}
