package services

import (
	"strings"

	"github.com/anuragksng/Food-Recommendation-System/logger"
	"github.com/anuragksng/Food-Recommendation-System/models"
)

const (
	// recentSearchTerms bounds how much history feeds the search-driven pass.
	recentSearchTerms = 3
	// maxHistoryResults caps the search-driven recommendation list.
	maxHistoryResults = 5
)

// SearchService answers catalog searches and turns a user's recent search
// history into a content pass over the catalog.
type SearchService struct {
	ds    *Dataset
	store *Store
	log   *logger.Logger
}

// NewSearchService wires the search layer. store may be nil when no
// relational mirror is configured.
func NewSearchService(ds *Dataset, store *Store, log *logger.Logger) *SearchService {
	return &SearchService{ds: ds, store: store, log: log}
}

// Search matches query case-insensitively against dish name, cuisine,
// description, category and resolved type. A multi-word query with no hits is
// retried word by word (words longer than two characters) and de-duplicated.
func (s *SearchService) Search(query string) []FoodDetail {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	foods := s.ds.Foods()
	matched := searchFoods(foods, query)

	if len(matched) == 0 && strings.Contains(query, " ") {
		seen := make(map[int]bool)
		for _, word := range strings.Fields(query) {
			if len(word) <= 2 {
				continue
			}
			for _, f := range searchFoods(foods, word) {
				if !seen[f.FoodID] {
					seen[f.FoodID] = true
					matched = append(matched, f)
				}
			}
		}
	}

	return Details(matched)
}

// SearchAndRecord runs Search and appends the term to the user's history,
// write-through to the mirror when one is configured.
func (s *SearchService) SearchAndRecord(userID int, query string) ([]FoodDetail, error) {
	results := s.Search(query)
	if strings.TrimSpace(query) == "" {
		return results, nil
	}
	s.ds.AddSearchTerm(userID, query)
	if s.store != nil {
		if err := s.store.SaveSearchTerm(userID, query); err != nil {
			return results, err
		}
	}
	return results, nil
}

// HistoryRecommendations searches the user's three most recent terms,
// de-duplicates, and drops foods the user has already rated. Capped at five.
func (s *SearchService) HistoryRecommendations(userID int, liked, disliked []int) []FoodDetail {
	history := s.ds.SearchHistoryFor(userID)
	if len(history) == 0 {
		return nil
	}
	if len(history) > recentSearchTerms {
		history = history[:recentSearchTerms]
	}

	rated := make(map[int]bool, len(liked)+len(disliked))
	for _, id := range liked {
		rated[id] = true
	}
	for _, id := range disliked {
		rated[id] = true
	}

	seen := make(map[int]bool)
	var out []FoodDetail
	for _, term := range history {
		for _, d := range s.Search(term) {
			if seen[d.FoodID] || rated[d.FoodID] {
				continue
			}
			seen[d.FoodID] = true
			out = append(out, d)
		}
	}
	if len(out) > maxHistoryResults {
		out = out[:maxHistoryResults]
	}
	return out
}

func searchFoods(foods []models.Food, query string) []models.Food {
	q := strings.ToLower(query)
	var out []models.Food
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.DishName), q) ||
			strings.Contains(strings.ToLower(f.CuisineType), q) ||
			strings.Contains(strings.ToLower(f.Describe), q) ||
			strings.Contains(strings.ToLower(f.DishCategory), q) ||
			strings.Contains(strings.ToLower(string(ResolveDietaryType(f))), q) {
			out = append(out, f)
		}
	}
	return out
}
