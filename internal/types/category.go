package types

import "strings"

// Uncategorized is the category name used for transactions without a category.
const Uncategorized = "미분류"

// CategoryName returns the trimmed name, or Uncategorized if it is blank.
func CategoryName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return Uncategorized
}
