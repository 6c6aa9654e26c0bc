package helpers

import "strings"

// FindHeaderRow returns the index of the first of the first maxRows rows that
// isHeader accepts, or -1.
func FindHeaderRow(rows [][]string, maxRows int, isHeader func(row []string) bool) int {
	for i := 0; i < min(maxRows, len(rows)); i++ {
		if isHeader(rows[i]) {
			return i
		}
	}
	return -1
}

// Joined concatenates all cells of a row.
func Joined(row []string) string {
	return strings.Join(row, "")
}

// Columns returns the index of each named column in the header row.
//
// The second return value is false if any of the names is missing.
func Columns(header []string, names ...string) (map[string]int, bool) {
	columns := make(map[string]int, len(names))
	for i, cell := range header {
		name := Clean(cell)
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	for _, name := range names {
		if _, ok := columns[name]; !ok {
			return nil, false
		}
	}

	return columns, true
}
