package services

import (
	"strings"

	"github.com/anuragksng/Food-Recommendation-System/models"
)

// DietaryType is the resolved classification of a food. Exactly two values
// exist past this boundary, no matter how dirty the source fields are.
type DietaryType string

const (
	Vegetarian    DietaryType = "Vegetarian"
	NonVegetarian DietaryType = "NonVegetarian"
)

// ResolveDietaryType classifies a food. The standardized FoodType field wins
// when present; otherwise the legacy VegNon field is consulted with an exact
// literal match against "Vegetarian". Anything else, including "veg", "" and
// "vegan", resolves NonVegetarian. The exact-match fallback silently
// misclassifies lowercase/abbreviated legacy values; kept for compatibility
// with the source data pipeline.
func ResolveDietaryType(f models.Food) DietaryType {
	if t := strings.TrimSpace(f.FoodType); t != "" {
		if t == string(Vegetarian) {
			return Vegetarian
		}
		return NonVegetarian
	}
	if strings.TrimSpace(f.VegNon) == string(Vegetarian) {
		return Vegetarian
	}
	return NonVegetarian
}

// wantsVegetarian reports whether a free-text dietary preference asks for
// vegetarian items. "Non-Vegetarian" contains the substring "vegetarian", so
// the "non" marker is checked first.
func wantsVegetarian(preference string) bool {
	p := strings.ToLower(preference)
	return strings.Contains(p, "vegetarian") && !strings.Contains(p, "non")
}

// IsCompatible reports whether a food matches the stated dietary preference.
// Matching is exact in both directions: a vegetarian preference admits only
// Vegetarian foods and a non-vegetarian preference only NonVegetarian ones.
func IsCompatible(f models.Food, preference string) bool {
	if wantsVegetarian(preference) {
		return ResolveDietaryType(f) == Vegetarian
	}
	return ResolveDietaryType(f) == NonVegetarian
}

// FilterFoods applies IsCompatible elementwise, preserving input order.
func FilterFoods(foods []models.Food, preference string) []models.Food {
	var out []models.Food
	for _, f := range foods {
		if IsCompatible(f, preference) {
			out = append(out, f)
		}
	}
	return out
}

// FilterDetails filters annotated detail records against the preference using
// their already-resolved Type. Order is preserved; incompatible entries are
// dropped, never substituted.
func FilterDetails(details []FoodDetail, preference string) []FoodDetail {
	want := NonVegetarian
	if wantsVegetarian(preference) {
		want = Vegetarian
	}
	var out []FoodDetail
	for _, d := range details {
		if d.Type == string(want) {
			out = append(out, d)
		}
	}
	return out
}

// Detail annotates a food record with its resolved dietary type.
func Detail(f models.Food) FoodDetail {
	return FoodDetail{
		FoodID:       f.FoodID,
		DishName:     f.DishName,
		CuisineType:  f.CuisineType,
		VegNon:       f.VegNon,
		Type:         string(ResolveDietaryType(f)),
		Describe:     f.Describe,
		SpiceLevel:   f.SpiceLevel,
		SugarLevel:   f.SugarLevel,
		DishCategory: f.DishCategory,
		WeatherType:  f.WeatherType,
	}
}

// Details annotates a slice of foods, preserving order.
func Details(foods []models.Food) []FoodDetail {
	out := make([]FoodDetail, len(foods))
	for i, f := range foods {
		out[i] = Detail(f)
	}
	return out
}
