package models

import (
	"time"

	"gorm.io/gorm"
)

type Model interface {
	Self() string
}

// DefaultModel is the base model for all models in the expense tracker.
// IDs are auto-incrementing integers assigned by the store.
type DefaultModel struct {
	ID        uint64    `json:"id" example:"17"`                                 // Sequence number of the resource
	CreatedAt time.Time `json:"createdAt" example:"2026-02-14T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2026-02-14T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
