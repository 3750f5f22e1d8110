package profile

import (
	"regexp"
	"strconv"
)

// DefaultThickness is assumed when a type label carries no parseable
// cross-section dimensions.
const DefaultThickness = 20.0

// Matches "20x40", "20 x 40", "20×40" (unicode multiplication sign),
// case-insensitive, with optional decimals.
var dimensionRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*[x×]\s*(\d+(?:\.\d+)?)`)

// Thickness extracts the cross-section thickness in mm from a type label
// like "20x40". Profiles are rectangular tube stock, so the smaller of the
// two dimensions bounds the safe slow-start distance. Malformed labels are
// expected input and return the fallback, never an error.
func Thickness(typeLabel string, fallback float64) float64 {
	m := dimensionRe.FindStringSubmatch(typeLabel)
	if m == nil {
		return fallback
	}
	a, err1 := strconv.ParseFloat(m[1], 64)
	b, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || a <= 0 || b <= 0 {
		return fallback
	}
	if a < b {
		return a
	}
	return b
}
