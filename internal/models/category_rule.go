package models

import (
	"strings"

	"gorm.io/gorm"
)

// RuleTarget is the transaction field a CategoryRule is matched against.
type RuleTarget string

const (
	TargetDescription RuleTarget = "description"
	TargetMemo        RuleTarget = "memo"
	TargetVendor      RuleTarget = "vendor"
	TargetAny         RuleTarget = "any"
)

// Normalize returns the target trimmed and in lower case.
func (t RuleTarget) Normalize() RuleTarget {
	return RuleTarget(strings.ToLower(strings.TrimSpace(string(t))))
}

// Valid reports if the target is known.
func (t RuleTarget) Valid() bool {
	switch t {
	case TargetDescription, TargetMemo, TargetVendor, TargetAny:
		return true
	}
	return false
}

// CategoryRule assigns a category to imported transactions whose target field
// contains the keyword.
type CategoryRule struct {
	Model
	Keyword    string     `gorm:"not null"`
	Target     RuleTarget `gorm:"not null"`
	Priority   int        `gorm:"not null;index"`
	IsFixed    bool       `gorm:"not null"`
	IsEnabled  bool       `gorm:"not null"`
	CategoryID uint       `gorm:"not null"`
	Category   Category   `gorm:"constraint:OnDelete:CASCADE"`
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Keyword = strings.TrimSpace(r.Keyword)
	r.Target = r.Target.Normalize()
	if r.Target == "" {
		r.Target = TargetAny
	}
	return nil
}

// EnabledRules returns all enabled rules with their category, in the order
// they are applied.
func EnabledRules(db *gorm.DB) ([]CategoryRule, error) {
	var rules []CategoryRule
	err := db.Preload("Category").Where("is_enabled = ?", true).Order("priority asc, id asc").Find(&rules).Error
	return rules, err
}
