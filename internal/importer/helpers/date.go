package helpers

import (
	"strconv"
	"strings"
	"time"

	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/xuri/excelize/v2"
)

// Layouts used by the supported bank exports, most specific first.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006.01.02 15:04:05",
	"2006.01.02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006.1.2",
	"20060102",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/06",
	"01/02/2006",
}

// Excel serial dates between 1954 and 2119. Other numbers are not taken as dates.
const (
	minExcelSerial = 20000
	maxExcelSerial = 80000
)

// ParseDate parses the date of a transaction cell.
//
// The second return value is false if the cell does not contain a date.
func ParseDate(cell string) (types.Date, bool) {
	s := strings.TrimSuffix(Clean(cell), ".")
	if s == "" {
		return types.Date{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return types.DateOf(t), true
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return types.DateOf(t), true
	}

	// Cells without number format are returned as serial numbers
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= minExcelSerial && serial <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return types.DateOf(t), true
		}
	}

	return types.Date{}, false
}
