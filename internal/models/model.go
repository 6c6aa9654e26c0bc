package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for all other models in wky-report.
type Model struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AfterFind updates the timestamps to use UTC as timezone.
//
// They are stored in UTC, but some drivers return them with a local
// or +0000 location.
func (m *Model) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
