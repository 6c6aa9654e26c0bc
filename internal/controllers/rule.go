package controllers

import (
	"net/http"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/httputil"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRuleRoutes registers the routes for category rules with
// the RouterGroup that is passed.
func RegisterRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRuleList)
		r.GET("", GetRules)
		r.POST("", CreateRule)
	}

	// Rule with ID
	{
		r.OPTIONS("/:id", OptionsRuleDetail)
		r.DELETE("/:id", DeleteRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Router			/rules [options]
func OptionsRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as string"
// @Router			/rules/{id} [options]
func OptionsRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CategoryRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get rules
// @Description	Returns all category rules in the order they are applied
// @Tags			Rules
// @Produce		json
// @Success		200	{array}		Rule
// @Failure		500	{object}	httpError
// @Router			/rules [get]
func GetRules(c *gin.Context) {
	var rules []models.CategoryRule
	err := models.DB.Preload("Category").Order("priority ASC, id ASC").Find(&rules).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newRule(rule))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create rule
// @Description	Creates a category rule. It is applied to all following uploads
// @Tags			Rules
// @Produce		json
// @Success		201		{object}	Rule
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rule	body		RuleEditable	true	"Rule"
// @Router			/rules [post]
func CreateRule(c *gin.Context) {
	var editable RuleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if strings.TrimSpace(editable.Keyword) == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errKeywordRequired.Error(),
		})
		return
	}

	editable.Target = editable.Target.Normalize()
	if editable.Target != "" && !editable.Target.Valid() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errInvalidTarget.Error(),
		})
		return
	}

	if editable.CategoryID == 0 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCategoryIDRequired.Error(),
		})
		return
	}

	rule := editable.model()
	err = models.DB.Create(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Preload("Category").First(&rule, rule.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, newRule(rule))
}

// @Summary		Delete rule
// @Description	Deletes a category rule. Transactions that were categorized by it keep their category
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID formatted as string"
// @Router			/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.CategoryRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
