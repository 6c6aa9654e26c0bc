package controllers

import (
	"errors"
	"net/http"

	"github.com/SuHyeon515/wky-report/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"category_id required"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Categorization errors
var (
	errTransactionIDsRequired = errors.New("transaction_ids required")
	errCategoryIDRequired     = errors.New("category_id required")
)

// Category errors
var (
	errNameRequired = errors.New("name required")
)

// Rule errors
var (
	errKeywordRequired = errors.New("keyword required")
	errInvalidTarget   = errors.New("target must be one of description, memo, vendor, any")
)

// Upload errors
var (
	errFilenameRequired = errors.New("filename required")
	errNoFilePost       = errors.New("file required")
	errFileTooLarge     = errors.New("file too large")
	errParseFailed      = errors.New("parse failed")
)
