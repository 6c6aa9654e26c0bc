package controllers

import (
	"net/http"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReports)
	r.POST("", CreateReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/reports [options]
func OptionsReports(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create report
// @Description	Returns the summary, the sums per category and the income and expense details for the months of a year
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	report.Response
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			query	body		report.Query	true	"Year, months and branch"
// @Router			/reports [post]
func CreateReport(c *gin.Context) {
	var query report.Query

	err := httputil.BindData(c, &query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	r, err := report.Build(c.Request.Context(), models.DB, query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, r)
}
