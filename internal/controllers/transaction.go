package controllers

import (
	"net/http"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/categorize"
	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// Number of unclassified transactions returned if no limit is set
	defaultUnclassifiedLimit = 500

	// Number of classified vendors used as examples for suggestions
	suggestExampleLimit = 2000
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/unclassified", OptionsUnclassified)
	r.GET("/unclassified", GetUnclassified)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions/unclassified [options]
func OptionsUnclassified(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get unclassified transactions
// @Description	Returns transactions without a category or with the category "미분류", newest first
// @Tags			Transactions
// @Produce		json
// @Success		200		{array}		UnclassifiedTransaction
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			limit	query		int		false	"Maximum number of transactions. Defaults to 500"
// @Param			branch	query		string	false	"Filter by branch"
// @Param			suggest	query		bool	false	"Suggest categories"
// @Router			/transactions/unclassified [get]
func GetUnclassified(c *gin.Context) {
	var filter UnclassifiedQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil || filter.Limit < 0 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidQueryString.Error(),
		})
		return
	}

	limit := defaultUnclassifiedLimit
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	q := models.DB.
		Table("bank_transactions AS t").
		Select("t.id, t.tx_date, t.description, t.vendor_normalized, t.amount, t.branch, t.balance").
		Joins("LEFT JOIN transaction_tags AS tt ON tt.transaction_id = t.id").
		Joins("LEFT JOIN categories AS c ON c.id = tt.category_id").
		Where("c.name IS NULL OR c.name = ?", types.Uncategorized)

	if branch := strings.TrimSpace(filter.Branch); branch != "" {
		q = q.Where("t.branch = ?", branch)
	}

	var rows []unclassifiedRow
	err = q.Order("t.tx_date DESC, t.id DESC").Limit(limit).Scan(&rows).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var examples []categorize.Example
	if filter.Suggest && len(rows) > 0 {
		examples, err = suggestExamples(models.DB)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	data := make([]UnclassifiedTransaction, 0, len(rows))
	for _, row := range rows {
		t := newUnclassifiedTransaction(row)

		if category, ok := categorize.Suggest(row.Description, examples); ok {
			t.SuggestedCategory = &category
		}

		data = append(data, t)
	}

	c.JSON(http.StatusOK, data)
}

// suggestExamples returns the most recently classified vendors with their category.
func suggestExamples(db *gorm.DB) ([]categorize.Example, error) {
	var examples []categorize.Example
	err := db.
		Table("bank_transactions AS t").
		Select("t.vendor_normalized AS vendor, c.name AS category").
		Joins("JOIN transaction_tags AS tt ON tt.transaction_id = t.id").
		Joins("JOIN categories AS c ON c.id = tt.category_id").
		Where("c.name <> ? AND t.vendor_normalized <> ''", types.Uncategorized).
		Order("t.id DESC").
		Limit(suggestExampleLimit).
		Scan(&examples).Error

	return examples, err
}
