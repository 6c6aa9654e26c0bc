// Package report builds income and expense reports of bank transactions
// and aggregates them for charts.
package report

import (
	"github.com/SuHyeon515/wky-report/internal/types"
	"golang.org/x/exp/slices"
)

// ByCategory sums the absolute amounts of the records per category.
//
// Records with a blank category are counted as types.Uncategorized. The
// entries are sorted by amount, largest first. Categories with equal amounts
// keep the order in which they first occur in records.
func ByCategory(records []TxRecord) []ChartEntry {
	entries := make([]ChartEntry, 0)
	index := make(map[string]int)

	for _, record := range records {
		name := types.CategoryName(record.Category)

		i, ok := index[name]
		if !ok {
			i = len(entries)
			index[name] = i
			entries = append(entries, ChartEntry{Category: name})
		}

		entries[i].Amount = types.NewAmount(entries[i].Amount.Add(record.Amount.Abs()))
	}

	slices.SortStableFunc(entries, func(a, b ChartEntry) int {
		return b.Amount.Cmp(a.Amount.Decimal)
	})

	return entries
}

// PartitionExpenses splits the records into fixed and variable expenses.
// Records without the IsFixed flag are variable.
func PartitionExpenses(records []TxRecord) (fixed, variable []TxRecord) {
	fixed = make([]TxRecord, 0)
	variable = make([]TxRecord, 0)

	for _, record := range records {
		if record.IsFixed != nil && *record.IsFixed {
			fixed = append(fixed, record)
			continue
		}
		variable = append(variable, record)
	}

	return fixed, variable
}

// BuildCharts aggregates the income, fixed expense and variable expense
// details of a report by category.
func BuildCharts(r Response) Charts {
	fixed, variable := PartitionExpenses(r.ExpenseDetails)

	return Charts{
		Income:   ByCategory(r.IncomeDetails),
		Fixed:    ByCategory(fixed),
		Variable: ByCategory(variable),
	}
}
