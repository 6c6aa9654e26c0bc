package helpers

import (
	"regexp"
	"strings"
)

type vendorPattern struct {
	match *regexp.Regexp
	name  string
}

// Checked in order, the first match wins.
var vendorPatterns = []vendorPattern{
	{regexp.MustCompile(`starbucks|스타벅스`), "스타벅스"},
	{regexp.MustCompile(`gs25|gs\s*25|지에스25`), "GS25"},
	{regexp.MustCompile(`cu\s?편의점|cu\b`), "CU"},
	{regexp.MustCompile(`emart24|이마트24`), "이마트24"},
	{regexp.MustCompile(`seven\s*eleven|세븐일레븐|7-?11`), "세븐일레븐"},
}

// NormalizeVendor maps known vendor spellings to one name. Unknown vendors
// are returned trimmed.
func NormalizeVendor(description string) string {
	trimmed := strings.TrimSpace(description)
	lower := strings.ToLower(trimmed)

	for _, p := range vendorPatterns {
		if p.match.MatchString(lower) {
			return p.name
		}
	}

	return trimmed
}
