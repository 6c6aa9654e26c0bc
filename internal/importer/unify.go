// Package importer turns uploaded bank exports into bank transactions.
package importer

import (
	"errors"

	"github.com/SuHyeon515/wky-report/internal/importer/parser/generic"
	"github.com/SuHyeon515/wky-report/internal/importer/parser/kb"
	"github.com/SuHyeon515/wky-report/internal/importer/parser/woori"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
)

// Parser parses a sheet in a bank specific format.
type Parser func(types.Sheet) ([]types.Row, error)

// Bank specific parsers, tried in order before the generic one.
var parsers = []Parser{
	woori.Parse,
	kb.Parse,
}

// Unify parses a sheet with the first bank specific parser that recognizes
// its format and falls back to generic header detection.
func Unify(sheet types.Sheet) ([]types.Row, error) {
	for _, parse := range parsers {
		rows, err := parse(sheet)
		if errors.Is(err, types.ErrUnknownFormat) {
			continue
		}
		return rows, err
	}

	return generic.Parse(sheet)
}
