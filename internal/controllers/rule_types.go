package controllers

import "github.com/SuHyeon515/wky-report/internal/models"

// RuleEditable represents all user configurable parameters
type RuleEditable struct {
	Keyword    string            `json:"keyword" example:"스타벅스"`                                                // Keyword to search for. Keywords containing "*" are glob patterns
	Target     models.RuleTarget `json:"target" example:"vendor" enums:"description,memo,vendor,any" default:"any"` // Field the keyword is searched in
	Priority   int               `json:"priority" example:"10"`                                                  // Rules with lower priority are applied first
	IsFixed    bool              `json:"is_fixed" example:"false"`                                               // Are matching transactions fixed expenses?
	CategoryID uint              `json:"category_id" example:"3"`                                                // Category for matching transactions
	IsEnabled  *bool             `json:"is_enabled" example:"true" default:"true"`                               // Is the rule applied to uploads?
}

func (editable RuleEditable) model() models.CategoryRule {
	enabled := true
	if editable.IsEnabled != nil {
		enabled = *editable.IsEnabled
	}

	return models.CategoryRule{
		Keyword:    editable.Keyword,
		Target:     editable.Target,
		Priority:   editable.Priority,
		IsFixed:    editable.IsFixed,
		CategoryID: editable.CategoryID,
		IsEnabled:  enabled,
	}
}

type Rule struct {
	ID         uint              `json:"id" example:"8"`
	Keyword    string            `json:"keyword" example:"스타벅스"`
	Target     models.RuleTarget `json:"target" example:"vendor"`
	Priority   int               `json:"priority" example:"10"`
	IsFixed    bool              `json:"is_fixed" example:"false"`
	CategoryID uint              `json:"category_id" example:"3"`
	Category   string            `json:"category" example:"카페"` // Name of the category
	IsEnabled  bool              `json:"is_enabled" example:"true"`
}

func newRule(model models.CategoryRule) Rule {
	return Rule{
		ID:         model.ID,
		Keyword:    model.Keyword,
		Target:     model.Target,
		Priority:   model.Priority,
		IsFixed:    model.IsFixed,
		CategoryID: model.CategoryID,
		Category:   model.Category.Name,
		IsEnabled:  model.IsEnabled,
	}
}
