// Package types contains the types shared by the spreadsheet loader,
// the bank parsers and the importer.
package types

import (
	"errors"

	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

// ErrUnknownFormat is returned by bank specific parsers when the sheet is not
// in their format.
var ErrUnknownFormat = errors.New("the sheet is not in this format")

// Sheet is the content of a spreadsheet as rows of raw cell values.
type Sheet [][]string

// Width is the length of the longest row.
func (s Sheet) Width() int {
	width := 0
	for _, row := range s {
		width = max(width, len(row))
	}
	return width
}

// Row is a transaction parsed from a bank export.
type Row struct {
	Date        types.Date // Zero if the date cell could not be parsed
	Description string
	Memo        string
	Amount      decimal.Decimal     // Signed, deposits are positive
	Balance     decimal.NullDecimal // Balance after the transaction
	Branch      string
}

// HasDate reports if the date of the row could be parsed.
func (r Row) HasDate() bool {
	return !r.Date.IsZero()
}
