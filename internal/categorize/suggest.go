package categorize

import (
	"strings"
	"unicode/utf8"

	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/agnivade/levenshtein"
)

// MinSimilarity is the lowest similarity for which a category is suggested.
const MinSimilarity = 0.8

// Example is a vendor whose category is known.
type Example struct {
	Vendor   string
	Category string
}

// Similarity is 1 minus the Levenshtein distance of a and b divided by the
// length of the longer string, in runes. Comparison is case-insensitive.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}

	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Suggest returns the category of the example most similar to the vendor of
// the description. If no example reaches MinSimilarity, false is returned.
func Suggest(description string, examples []Example) (string, bool) {
	vendor := helpers.NormalizeVendor(description)

	var category string
	best := 0.0
	for _, e := range examples {
		if s := Similarity(vendor, e.Vendor); s > best {
			best = s
			category = e.Category
		}
	}

	if best < MinSimilarity {
		return "", false
	}

	return category, true
}
