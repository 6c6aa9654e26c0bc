package controllers

import (
	"net/http"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategorizeRoutes registers the routes for categorization with
// the RouterGroup that is passed.
func RegisterCategorizeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/manual", OptionsCategorizeManual)
	r.POST("/manual", CategorizeManual)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/categorize/manual [options]
func OptionsCategorizeManual(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Categorize transactions
// @Description	Sets the category, fixed flag and memo of transactions. Existing tags are overwritten
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	CategorizeResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			categorize	body		CategorizeEditable	true	"Transactions and category"
// @Router			/categorize/manual [post]
func CategorizeManual(c *gin.Context) {
	var editable CategorizeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if len(editable.TransactionIDs) == 0 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errTransactionIDsRequired.Error(),
		})
		return
	}

	if editable.CategoryID == 0 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCategoryIDRequired.Error(),
		})
		return
	}

	// A transaction can only be upserted once per statement
	ids := slices.Clone(editable.TransactionIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	err = models.UpsertTags(models.DB, ids, &editable.CategoryID, editable.IsFixed, editable.Memo)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CategorizeResponse{Updated: len(ids)})
}
