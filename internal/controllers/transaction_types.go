package controllers

import (
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

// UnclassifiedQueryFilter contains the query parameters for unclassified transactions
type UnclassifiedQueryFilter struct {
	Limit   int    `form:"limit"`   // Maximum number of transactions
	Branch  string `form:"branch"`  // Only transactions of this branch
	Suggest bool   `form:"suggest"` // Suggest categories from similar classified transactions
}

// UnclassifiedTransaction is a transaction without category.
type UnclassifiedTransaction struct {
	ID                uint          `json:"id" example:"17"`
	TxDate            types.Date    `json:"tx_date" swaggertype:"string" example:"2024-01-15"`
	Description       string        `json:"description" example:"스타벅스 역삼"`
	Amount            types.Amount  `json:"amount" swaggertype:"number" example:"-5500"`
	Branch            *string       `json:"branch" example:"역삼"`
	Balance           *types.Amount `json:"balance" swaggertype:"number" example:"94500"`
	SuggestedCategory *string       `json:"suggested_category,omitempty" example:"카페"` // Only set if requested and a similar transaction was found
}

type unclassifiedRow struct {
	ID               uint
	TxDate           types.Date
	Description      string
	VendorNormalized string
	Amount           decimal.Decimal
	Branch           *string
	Balance          decimal.NullDecimal
}

func newUnclassifiedTransaction(row unclassifiedRow) UnclassifiedTransaction {
	t := UnclassifiedTransaction{
		ID:          row.ID,
		TxDate:      row.TxDate,
		Description: row.Description,
		Amount:      types.NewAmount(row.Amount),
		Branch:      row.Branch,
	}

	if row.Balance.Valid {
		balance := types.NewAmount(row.Balance.Decimal)
		t.Balance = &balance
	}

	return t
}

// CategorizeEditable is the body for manual categorization
type CategorizeEditable struct {
	TransactionIDs []uint  `json:"transaction_ids" example:"1,2,3"` // Transactions to categorize
	CategoryID     uint    `json:"category_id" example:"5"`         // Category to assign
	IsFixed        bool    `json:"is_fixed" example:"false"`        // Are the transactions fixed expenses?
	Memo           *string `json:"memo" example:"회식"`               // Memo for the transactions
}

type CategorizeResponse struct {
	Updated int `json:"updated" example:"3"` // Number of updated transactions
}
