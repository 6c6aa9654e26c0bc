package report

import "github.com/SuHyeon515/wky-report/internal/types"

// Query selects the transactions of a report.
type Query struct {
	Year       int    `json:"year" example:"2024"`
	Branch     string `json:"branch" example:"역삼"` // Only transactions of this branch. All branches if empty
	StartMonth int    `json:"start_month" example:"1" minimum:"1" maximum:"12"`
	EndMonth   int    `json:"end_month" example:"12" minimum:"1" maximum:"12"` // Inclusive
}

// Summary totals all transactions of the report.
type Summary struct {
	TotalIn  types.Amount `json:"total_in" swaggertype:"number"`  // Sum of all deposits
	TotalOut types.Amount `json:"total_out" swaggertype:"number"` // Sum of all withdrawals, as positive number
	Net      types.Amount `json:"net" swaggertype:"number"`
}

// CategorySum is the signed sum of all transactions of a category.
type CategorySum struct {
	Category string       `json:"category" example:"식비"`
	Sum      types.Amount `json:"sum" swaggertype:"number" example:"-13000"`
}

// TxRecord is a transaction as listed in the report details.
type TxRecord struct {
	TxDate      types.Date   `json:"tx_date" swaggertype:"string" example:"2024-01-15"`
	Description string       `json:"description" example:"스타벅스 역삼"`
	Category    string       `json:"category" example:"카페"`
	Amount      types.Amount `json:"amount" swaggertype:"number" example:"-5500"`
	IsFixed     *bool        `json:"is_fixed,omitempty"` // Only set for expenses
	Memo        *string      `json:"memo"`
}

// Response is the full report.
type Response struct {
	Summary        Summary       `json:"summary"`
	ByCategory     []CategorySum `json:"by_category"`
	IncomeDetails  []TxRecord    `json:"income_details"`
	ExpenseDetails []TxRecord    `json:"expense_details"`
}

// ChartEntry is the total of one category in a chart.
type ChartEntry struct {
	Category string       `json:"category"`
	Amount   types.Amount `json:"amount" swaggertype:"number"` // Always zero or positive
}

// Charts are the category charts of a report.
type Charts struct {
	Income   []ChartEntry `json:"income"`
	Fixed    []ChartEntry `json:"fixed"`
	Variable []ChartEntry `json:"variable"`
}
