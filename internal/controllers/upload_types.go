package controllers

import (
	"time"

	"github.com/SuHyeon515/wky-report/internal/importer"
	"github.com/SuHyeon515/wky-report/internal/models"
)

// UploadEditable represents all user configurable parameters
type UploadEditable struct {
	Filename string `json:"filename" example:"woori-2024-01.xlsx"` // Name of the uploaded file
	Branch   string `json:"branch" example:"역삼"`                   // Branch of all transactions in the batch
}

type Upload struct {
	ID        uint      `json:"id" example:"4"`
	Filename  string    `json:"filename" example:"woori-2024-01.xlsx"`
	BankHint  *string   `json:"bank_hint" example:"woori"`
	Branch    *string   `json:"branch" example:"역삼"`
	RowCount  int       `json:"row_count" example:"120"` // Number of rows with a valid date in the file
	CreatedAt time.Time `json:"created_at" example:"2024-02-01T10:00:00Z"`
}

func newUpload(model models.UploadBatch) Upload {
	return Upload{
		ID:        model.ID,
		Filename:  model.Filename,
		BankHint:  model.BankHint,
		Branch:    model.Branch,
		RowCount:  model.RowCount,
		CreatedAt: model.CreatedAt,
	}
}

type UploadFileResponse struct {
	OK bool `json:"ok" example:"true"`
	importer.Result
}

type UploadDeleteResponse struct {
	Deleted uint `json:"deleted" example:"4"` // ID of the deleted upload
}
