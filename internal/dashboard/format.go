package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// FormatAmount formats an amount in won with thousands separators.
// Fractions are rounded.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}
