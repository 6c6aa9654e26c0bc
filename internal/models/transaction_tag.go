package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionTag is the classification of a BankTransaction.
//
// There is at most one tag per transaction. A tag without a category
// counts as uncategorized.
type TransactionTag struct {
	Model
	TransactionID uint            `gorm:"not null;uniqueIndex"`
	Transaction   BankTransaction `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID    *uint
	Category      *Category `gorm:"constraint:OnDelete:SET NULL"`
	IsFixed       bool      `gorm:"not null"`
	Memo          *string
}

// UpsertTags creates one tag per transaction ID or overwrites the existing one.
func UpsertTags(db *gorm.DB, transactionIDs []uint, categoryID *uint, isFixed bool, memo *string) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	tags := make([]TransactionTag, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		tags = append(tags, TransactionTag{
			TransactionID: id,
			CategoryID:    categoryID,
			IsFixed:       isFixed,
			Memo:          memo,
		})
	}

	return db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category_id", "is_fixed", "memo", "updated_at"}),
	}).Create(&tags).Error
}
