package models

import (
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

// TxType is the direction of a bank transaction.
type TxType string

const (
	TxIn  TxType = "IN"
	TxOut TxType = "OUT"
)

// TxTypeOf returns TxIn for positive amounts and TxOut otherwise.
func TxTypeOf(amount decimal.Decimal) TxType {
	if amount.IsPositive() {
		return TxIn
	}
	return TxOut
}

// BankTransaction is a single row of an uploaded bank export.
//
// Amounts are signed: deposits are positive, withdrawals negative.
type BankTransaction struct {
	Model
	BatchID          uint        `gorm:"not null;index"`
	Batch            UploadBatch `gorm:"constraint:OnDelete:CASCADE"`
	TxDate           types.Date  `gorm:"not null;index"`
	Description      string      `gorm:"not null"`
	VendorNormalized string
	Memo             *string
	Amount           decimal.Decimal     `gorm:"type:DECIMAL(20,2);not null"`
	Balance          decimal.NullDecimal `gorm:"type:DECIMAL(20,2)"`
	TxType           TxType              `gorm:"not null"`
	Branch           *string             `gorm:"index"`
	Fingerprint      string              `gorm:"uniqueIndex;not null"`
}
