package client

import "github.com/SuHyeon515/wky-report/internal/types"

// Category is a category as returned by the API.
type Category struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	IsFixed bool   `json:"is_fixed"`
}

// UnclassifiedQuery filters the unclassified transactions. Zero values are
// not sent.
type UnclassifiedQuery struct {
	Limit   int
	Branch  string
	Suggest bool
}

// Transaction is an unclassified transaction.
type Transaction struct {
	ID                uint          `json:"id"`
	TxDate            types.Date    `json:"tx_date"`
	Description       string        `json:"description"`
	Amount            types.Amount  `json:"amount"`
	Branch            *string       `json:"branch"`
	Balance           *types.Amount `json:"balance"`
	SuggestedCategory *string       `json:"suggested_category,omitempty"`
}

// CategorizeRequest assigns a category to transactions.
type CategorizeRequest struct {
	TransactionIDs []uint  `json:"transaction_ids"`
	CategoryID     uint    `json:"category_id"`
	IsFixed        bool    `json:"is_fixed"`
	Memo           *string `json:"memo"`
}

// UploadResult is the result of a file upload.
type UploadResult struct {
	OK                bool `json:"ok"`
	BatchID           uint `json:"batch_id"`
	RowCount          int  `json:"row_count"`
	Inserted          int  `json:"inserted"`
	SkippedDuplicates int  `json:"skipped_duplicates"`
}
