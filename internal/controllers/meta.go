package controllers

import (
	"net/http"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterMetaRoutes registers the routes for metadata with
// the RouterGroup that is passed.
func RegisterMetaRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/branches", OptionsBranches)
	r.GET("/branches", GetBranches)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Meta
// @Success		204
// @Router			/meta/branches [options]
func OptionsBranches(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get branches
// @Description	Returns the names of all branches that have transactions, sorted
// @Tags			Meta
// @Produce		json
// @Success		200	{array}		string
// @Failure		500	{object}	httpError
// @Router			/meta/branches [get]
func GetBranches(c *gin.Context) {
	branches := make([]string, 0)

	err := models.DB.
		Model(&models.BankTransaction{}).
		Distinct("branch").
		Where("branch IS NOT NULL AND TRIM(branch) <> ''").
		Order("branch").
		Pluck("branch", &branches).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, branches)
}
