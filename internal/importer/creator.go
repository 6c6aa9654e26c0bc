package importer

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/categorize"
	"github.com/SuHyeon515/wky-report/internal/importer/helpers"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
	"github.com/SuHyeon515/wky-report/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upload describes an uploaded file.
type Upload struct {
	Filename string
	BankHint string
	Branch   string // If set, overrides the branch of all rows
}

// Result is the outcome of an import.
type Result struct {
	BatchID           uint `json:"batch_id"`
	RowCount          int  `json:"row_count"`
	Inserted          int  `json:"inserted"`
	SkippedDuplicates int  `json:"skipped_duplicates"`
}

// optional returns nil for blank strings.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Create stores the rows as a new upload batch.
//
// Rows without a valid date are dropped. Rows whose fingerprint already
// exists are skipped. Each inserted transaction is tagged with the category
// of the first matching rule. If the category of a rule does not exist as
// Category, the tag has no category.
//
// Everything is done in one database transaction.
func Create(db *gorm.DB, upload Upload, rows []types.Row) (Result, error) {
	valid := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if row.HasDate() {
			valid = append(valid, row)
		}
	}

	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()

	rules, err := models.EnabledRules(tx)
	if err != nil {
		tx.Rollback()
		return Result{}, err
	}

	categoryIDs, err := models.CategoryIDs(tx)
	if err != nil {
		tx.Rollback()
		return Result{}, err
	}

	batch := models.UploadBatch{
		Filename: upload.Filename,
		BankHint: optional(upload.BankHint),
		Branch:   optional(upload.Branch),
		RowCount: len(valid),
	}

	err = tx.Create(&batch).Error
	if err != nil {
		tx.Rollback()
		return Result{}, err
	}

	result := Result{BatchID: batch.ID, RowCount: len(valid)}

	for _, row := range valid {
		branch := row.Branch
		if batch.Branch != nil {
			branch = *batch.Branch
		}

		description := strings.TrimSpace(row.Description)
		vendor := helpers.NormalizeVendor(description)

		transaction := models.BankTransaction{
			BatchID:          batch.ID,
			TxDate:           row.Date,
			Description:      description,
			VendorNormalized: vendor,
			Memo:             optional(row.Memo),
			Amount:           row.Amount,
			Balance:          row.Balance,
			TxType:           models.TxTypeOf(row.Amount),
			Branch:           optional(branch),
			Fingerprint:      Fingerprint(row.Date, row.Amount, description, branch, row.Balance),
		}

		create := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fingerprint"}},
			DoNothing: true,
		}).Create(&transaction)
		if create.Error != nil {
			tx.Rollback()
			return Result{}, create.Error
		}

		if create.RowsAffected == 0 {
			result.SkippedDuplicates++
			continue
		}
		result.Inserted++

		match := categorize.Apply(rules, categorize.Subject{
			Description: description,
			Memo:        row.Memo,
			Vendor:      vendor,
		})

		var categoryID *uint
		if id, ok := categoryIDs[match.Category]; ok {
			categoryID = &id
		}

		err = models.UpsertTags(tx, []uint{transaction.ID}, categoryID, match.IsFixed, nil)
		if err != nil {
			tx.Rollback()
			return Result{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return Result{}, err
	}

	return result, nil
}
