package controllers

import "github.com/SuHyeon515/wky-report/internal/models"

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name    string `json:"name" example:"식비"`        // Name of the category. Must be unique
	IsFixed bool   `json:"is_fixed" example:"false"` // Are transactions of this category fixed expenses by default?
}

type Category struct {
	ID uint `json:"id" example:"3"`
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		ID: model.ID,
		CategoryEditable: CategoryEditable{
			Name:    model.Name,
			IsFixed: model.IsFixed,
		},
	}
}
