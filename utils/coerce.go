package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToInt parses a CSV cell into an int. Unparseable or empty values become 0,
// matching the fill-0 normalization applied at the data-load boundary.
// Values like "3.0" are accepted and truncated.
func ToInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

// NonEmpty returns s trimmed, or def when s is blank or a textual NaN marker
// left behind by spreadsheet exports.
func NonEmpty(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return def
	}
	return s
}
