package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
)

var moneyReplacer = strings.NewReplacer("₩", "", "원", "", ",", "")

// ParseMoney parses a money cell of a bank export.
//
// Currency symbols, thousands separators and whitespace are removed. Blank
// cells, "-" and anything that is not a number are 0.
func ParseMoney(cell string) decimal.Decimal {
	d, ok := parseMoney(cell)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseBalance works like ParseMoney, but blank and unparseable cells are
// returned as NULL.
func ParseBalance(cell string) decimal.NullDecimal {
	d, ok := parseMoney(cell)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func parseMoney(cell string) (decimal.Decimal, bool) {
	s := strings.Join(strings.Fields(moneyReplacer.Replace(Clean(cell))), "")
	if s == "-" {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
