// Package kb parses transaction exports of KB Kookmin Bank.
package kb

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
)

const (
	Date         = "거래일시"
	Counterparty = "보낸분/받는분"
	Outflow      = "출금액(원)"
	Inflow       = "입금액(원)"
	Balance      = "잔액(원)"
	Memo         = "내 통장 표시"
)

const headerScanRows = 30

func isHeader(row []string) bool {
	joined := helpers.Joined(row)
	return strings.Contains(joined, Date) && (strings.Contains(joined, "보낸분") || strings.Contains(joined, "받는분"))
}

// Parse parses a KB Kookmin Bank export. If the sheet does not look like one,
// types.ErrUnknownFormat is returned.
//
// The counterparty is used as description. KB exports do not contain a branch.
func Parse(sheet types.Sheet) ([]types.Row, error) {
	if sheet.Width() < 5 {
		return nil, types.ErrUnknownFormat
	}

	header := helpers.FindHeaderRow(sheet, headerScanRows, isHeader)
	if header == -1 {
		return nil, types.ErrUnknownFormat
	}

	columns, ok := helpers.Columns(sheet[header], Date, Counterparty, Outflow, Inflow, Balance)
	if !ok {
		return nil, types.ErrUnknownFormat
	}

	memoColumn, hasMemo := columns[Memo]

	rows := make([]types.Row, 0, len(sheet)-header-1)
	for _, record := range sheet[header+1:] {
		dateCell := helpers.Cell(record, columns[Date])
		if dateCell == "" {
			continue
		}

		date, _ := helpers.ParseDate(dateCell)

		row := types.Row{
			Date:        date,
			Description: helpers.Cell(record, columns[Counterparty]),
			Amount:      helpers.ParseMoney(helpers.Cell(record, columns[Inflow])).Sub(helpers.ParseMoney(helpers.Cell(record, columns[Outflow]))),
			Balance:     helpers.ParseBalance(helpers.Cell(record, columns[Balance])),
		}

		if hasMemo {
			row.Memo = helpers.Cell(record, memoColumn)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
