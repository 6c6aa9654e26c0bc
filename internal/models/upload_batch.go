package models

import "gorm.io/gorm"

// UploadBatch is one uploaded bank export.
type UploadBatch struct {
	Model
	Filename string `gorm:"not null"`
	BankHint *string
	Branch   *string
	RowCount int `gorm:"not null"`
}

// DeleteUploadBatch deletes the batch with all of its transactions and their tags.
func DeleteUploadBatch(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var batch UploadBatch
		if err := tx.First(&batch, id).Error; err != nil {
			return err
		}

		transactions := tx.Model(&BankTransaction{}).Select("id").Where("batch_id = ?", id)
		if err := tx.Where("transaction_id IN (?)", transactions).Delete(&TransactionTag{}).Error; err != nil {
			return err
		}

		if err := tx.Where("batch_id = ?", id).Delete(&BankTransaction{}).Error; err != nil {
			return err
		}

		return tx.Delete(&batch).Error
	})
}
