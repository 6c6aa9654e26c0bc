// Package generic parses bank exports of unknown banks by detecting the
// header row and the columns from their names.
package generic

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
	"github.com/shopspring/decimal"
)

var (
	ErrHeaderNotFound = errors.New("the header row could not be found")
	ErrMissingColumns = errors.New("the date or description column is missing")
	ErrNoAmountColumn = errors.New("there is no amount column")
)

// Column name patterns per field.
var (
	datePattern       = regexp.MustCompile(`(?i)날짜|거래일|일자|승인일자|거래\s*시간`)
	descPattern       = regexp.MustCompile(`(?i)내용|적요|거래내용|가맹점명|받는.?분|보내.?는.?분`)
	memoPattern       = regexp.MustCompile(`(?i)메모|비고`)
	depositPattern    = regexp.MustCompile(`(?i)입금|받은금액|credit`)
	withdrawalPattern = regexp.MustCompile(`(?i)출금|보낸금액|debit`)
	amountPattern     = regexp.MustCompile(`(?i)금액|이체금액|거래금액`)
)

// Patterns counted when searching the header row. The memo is not.
var headerPatterns = []*regexp.Regexp{datePattern, descPattern, amountPattern, depositPattern, withdrawalPattern}

// Balance columns, in order of preference.
var balanceColumns = []string{"잔액", "거래후 잔액", "잔액(원)"}

const (
	headerScanRows = 80
	minHeaderHits  = 2
)

func isHeader(row []string) bool {
	hits := 0
	for _, cell := range row {
		cell = helpers.Clean(cell)
		for _, p := range headerPatterns {
			if p.MatchString(cell) {
				hits++
			}
		}
	}
	return hits >= minHeaderHits
}

// column returns the index of the first column whose name matches.
func column(names []string, p *regexp.Regexp) int {
	for i, name := range names {
		if p.MatchString(name) {
			return i
		}
	}
	return -1
}

// Parse parses any sheet that has a header row with at least a date,
// a description and an amount column.
//
// The amount is the deposit minus the withdrawal if either of those columns
// exists, the amount column otherwise. Sheets without balance column have a
// balance of 0 for every row.
func Parse(sheet types.Sheet) ([]types.Row, error) {
	sheet = dropBlank(sheet)

	header := helpers.FindHeaderRow(sheet, headerScanRows, isHeader)
	if header == -1 {
		return nil, ErrHeaderNotFound
	}

	names := make([]string, len(sheet[header]))
	for i, cell := range sheet[header] {
		names[i] = helpers.Clean(cell)
	}

	dateColumn := column(names, datePattern)
	descColumn := column(names, descPattern)
	if dateColumn == -1 || descColumn == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(names, ", "))
	}

	memoColumn := column(names, memoPattern)
	depositColumn := column(names, depositPattern)
	withdrawalColumn := column(names, withdrawalPattern)
	amountColumn := column(names, amountPattern)
	if depositColumn == -1 && withdrawalColumn == -1 && amountColumn == -1 {
		return nil, ErrNoAmountColumn
	}

	balanceColumn := -1
	columns, _ := helpers.Columns(names)
	for _, name := range balanceColumns {
		if i, ok := columns[name]; ok {
			balanceColumn = i
			break
		}
	}

	rows := make([]types.Row, 0, len(sheet)-header-1)
	for _, record := range sheet[header+1:] {
		date, ok := helpers.ParseDate(helpers.Cell(record, dateColumn))
		description := helpers.Cell(record, descColumn)
		if !ok && description == "" {
			continue
		}

		var amount decimal.Decimal
		if depositColumn != -1 || withdrawalColumn != -1 {
			amount = helpers.ParseMoney(helpers.Cell(record, depositColumn)).Sub(helpers.ParseMoney(helpers.Cell(record, withdrawalColumn)))
		} else {
			amount = helpers.ParseMoney(helpers.Cell(record, amountColumn))
		}

		balance := decimal.NewNullDecimal(decimal.Zero)
		if balanceColumn != -1 {
			balance = decimal.NewNullDecimal(helpers.ParseMoney(helpers.Cell(record, balanceColumn)))
		}

		rows = append(rows, types.Row{
			Date:        date,
			Description: description,
			Memo:        helpers.Cell(record, memoColumn),
			Amount:      amount,
			Balance:     balance,
		})
	}

	return rows, nil
}

// dropBlank removes all rows and columns that only contain blank cells.
func dropBlank(sheet types.Sheet) types.Sheet {
	width := sheet.Width()
	used := make([]bool, width)
	for _, row := range sheet {
		for i, cell := range row {
			if helpers.Clean(cell) != "" {
				used[i] = true
			}
		}
	}

	out := make(types.Sheet, 0, len(sheet))
	for _, row := range sheet {
		kept := make([]string, 0, width)
		blank := true
		for i := 0; i < width; i++ {
			if !used[i] {
				continue
			}

			cell := helpers.Cell(row, i)
			if cell != "" {
				blank = false
			}
			kept = append(kept, cell)
		}

		if !blank {
			out = append(out, kept)
		}
	}

	return out
}
