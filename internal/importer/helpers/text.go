package helpers

import "strings"

// Clean replaces non-breaking spaces and trims the cell.
func Clean(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, "\u00a0", " "))
}

// Cell returns the cleaned cell at index i, or an empty string if the row is
// too short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return Clean(row[i])
}
