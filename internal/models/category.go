package models

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Category groups transactions for reports.
type Category struct {
	Model
	Name    string `gorm:"uniqueIndex;not null"`
	IsFixed bool   `gorm:"not null"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// IsUncategorized reports if this is the category for uncategorized transactions.
func (c Category) IsUncategorized() bool {
	return c.Name == types.Uncategorized
}

// UpsertCategory creates a category. If a category with the same name exists,
// its IsFixed flag is updated instead.
func UpsertCategory(db *gorm.DB, name string, isFixed bool) (Category, error) {
	category := Category{Name: strings.TrimSpace(name), IsFixed: isFixed}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_fixed", "updated_at"}),
	}).Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	// On conflict, not all drivers return the ID of the existing row
	var stored Category
	err = db.Where(&Category{Name: category.Name}).First(&stored).Error
	if err != nil {
		return Category{}, err
	}

	return stored, nil
}

// CategoryIDs returns the IDs of all categories, keyed by name.
func CategoryIDs(db *gorm.DB) (map[string]uint, error) {
	var categories []Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]uint, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}

	return ids, nil
}
