package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value that decodes leniently from JSON.
//
// Numbers and numeric strings are accepted. Anything else, including null,
// booleans and malformed strings, decodes to zero instead of failing the
// whole payload.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// AmountFromInt is a shorthand for whole currency units.
func AmountFromInt(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Decimal = decimal.Zero

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	} else {
		raw = string(data)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	a.Decimal = d
	return nil
}
