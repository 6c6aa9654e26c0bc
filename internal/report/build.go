package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrYearRequired = errors.New("year required")

// DetailLimit is the maximum number of income and expense details each.
const DetailLimit = 5000

// Build queries the report for the given months.
//
// The summary, the category sums and both detail lists are queried
// concurrently. The first error cancels the other queries.
func Build(ctx context.Context, db *gorm.DB, q Query) (Response, error) {
	if q.Year == 0 {
		return Response{}, ErrYearRequired
	}

	months, err := types.NewMonthRange(q.Year, q.StartMonth, q.EndMonth)
	if err != nil {
		return Response{}, err
	}

	f := filter{
		from:   months.From.Time(),
		to:     months.To.Time(),
		branch: strings.TrimSpace(q.Branch),
	}

	var r Response
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.Summary, err = summary(f.apply(db.WithContext(gctx)))
		return
	})

	g.Go(func() (err error) {
		r.ByCategory, err = byCategory(f.apply(db.WithContext(gctx)))
		return
	})

	g.Go(func() (err error) {
		r.IncomeDetails, err = details(f.apply(db.WithContext(gctx)).Where("t.amount > 0"), false)
		return
	})

	g.Go(func() (err error) {
		r.ExpenseDetails, err = details(f.apply(db.WithContext(gctx)).Where("t.amount < 0"), true)
		return
	})

	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	return r, nil
}

type filter struct {
	from   time.Time
	to     time.Time
	branch string
}

// apply selects the transactions in the date range and branch.
func (f filter) apply(db *gorm.DB) *gorm.DB {
	q := db.Table("bank_transactions AS t").Where("t.tx_date >= ? AND t.tx_date < ?", f.from, f.to)
	if f.branch != "" {
		q = q.Where("t.branch = ?", f.branch)
	}
	return q
}

// categoryJoins joins the tag and category of each transaction.
const categoryJoins = "LEFT JOIN transaction_tags AS tt ON tt.transaction_id = t.id LEFT JOIN categories AS c ON c.id = tt.category_id"

type summaryRow struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Net      decimal.Decimal
}

func summary(q *gorm.DB) (Summary, error) {
	var row summaryRow
	err := q.Select("COALESCE(SUM(CASE WHEN t.amount > 0 THEN t.amount ELSE 0 END), 0) AS total_in, " +
		"COALESCE(SUM(CASE WHEN t.amount < 0 THEN ABS(t.amount) ELSE 0 END), 0) AS total_out, " +
		"COALESCE(SUM(t.amount), 0) AS net").
		Scan(&row).Error
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalIn:  types.NewAmount(row.TotalIn),
		TotalOut: types.NewAmount(row.TotalOut),
		Net:      types.NewAmount(row.Net),
	}, nil
}

type categoryRow struct {
	Category string
	Sum      decimal.Decimal
}

func byCategory(q *gorm.DB) ([]CategorySum, error) {
	var rows []categoryRow
	err := q.Joins(categoryJoins).
		Select("COALESCE(c.name, ?) AS category, COALESCE(SUM(t.amount), 0) AS sum", types.Uncategorized).
		Group("category").
		Order("ABS(SUM(t.amount)) DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make([]CategorySum, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, CategorySum{Category: row.Category, Sum: types.NewAmount(row.Sum)})
	}

	return sums, nil
}

type detailRow struct {
	TxDate      types.Date
	Description string
	Category    string
	Amount      decimal.Decimal
	IsFixed     bool
	Memo        *string
}

// details lists the transactions with their category. The fixed flag of the
// tag takes precedence over the one of the category.
func details(q *gorm.DB, expenses bool) ([]TxRecord, error) {
	var rows []detailRow
	err := q.Joins(categoryJoins).
		Select(
			"t.tx_date, t.description, COALESCE(c.name, ?) AS category, t.amount, COALESCE(tt.is_fixed, c.is_fixed, false) AS is_fixed, tt.memo",
			types.Uncategorized,
		).
		Order("t.tx_date ASC, t.id ASC").
		Limit(DetailLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]TxRecord, 0, len(rows))
	for _, row := range rows {
		record := TxRecord{
			TxDate:      row.TxDate,
			Description: row.Description,
			Category:    row.Category,
			Amount:      types.NewAmount(row.Amount),
			Memo:        row.Memo,
		}

		if expenses {
			isFixed := row.IsFixed
			record.IsFixed = &isFixed
		}

		records = append(records, record)
	}

	return records, nil
}
