// Package woori parses transaction exports of Woori Bank.
package woori

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
)

const (
	Date        = "거래일시"
	Kind        = "적요"
	Description = "기재내용"
	Outflow     = "지급(원)"
	Inflow      = "입금(원)"
	Balance     = "거래후 잔액(원)"
	Branch      = "취급점"
)

// The header is searched in the first rows only, the rows before it
// contain account information.
const headerScanRows = 30

func isHeader(row []string) bool {
	joined := helpers.Joined(row)
	return strings.Contains(joined, Date) && strings.Contains(joined, Kind) && strings.Contains(joined, "입금")
}

// Parse parses a Woori Bank export. If the sheet does not look like one,
// types.ErrUnknownFormat is returned.
func Parse(sheet types.Sheet) ([]types.Row, error) {
	if sheet.Width() < 5 {
		return nil, types.ErrUnknownFormat
	}

	header := helpers.FindHeaderRow(sheet, headerScanRows, isHeader)
	if header == -1 {
		return nil, types.ErrUnknownFormat
	}

	columns, ok := helpers.Columns(sheet[header], Date, Kind, Description, Outflow, Inflow, Balance, Branch)
	if !ok {
		return nil, types.ErrUnknownFormat
	}

	rows := make([]types.Row, 0, len(sheet)-header-1)
	for _, record := range sheet[header+1:] {
		dateCell := helpers.Cell(record, columns[Date])
		if dateCell == "" {
			continue
		}

		// Rows with an unparseable date keep the zero date
		date, _ := helpers.ParseDate(dateCell)

		rows = append(rows, types.Row{
			Date:        date,
			Description: helpers.Cell(record, columns[Description]),
			Memo:        helpers.Cell(record, columns[Kind]),
			Amount:      helpers.ParseMoney(helpers.Cell(record, columns[Inflow])).Sub(helpers.ParseMoney(helpers.Cell(record, columns[Outflow]))),
			Balance:     helpers.ParseBalance(helpers.Cell(record, columns[Balance])),
			Branch:      helpers.Cell(record, columns[Branch]),
		})
	}

	return rows, nil
}
