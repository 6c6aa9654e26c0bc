package importer

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

// Fingerprint identifies a transaction across uploads so that overlapping
// exports do not create duplicates.
//
// It is the SHA256 of date, amount with two decimals, description, branch
// and balance without decimals, separated by "|". Description and branch are
// compared case-insensitive, a missing balance is empty.
func Fingerprint(date types.Date, amount decimal.Decimal, description, branch string, balance decimal.NullDecimal) string {
	b := ""
	if balance.Valid {
		b = balance.Decimal.StringFixedBank(0)
	}

	return helpers.Sha256String(strings.Join([]string{
		date.String(),
		amount.StringFixedBank(2),
		strings.ToLower(strings.TrimSpace(description)),
		strings.ToLower(strings.TrimSpace(branch)),
		b,
	}, "|"))
}
