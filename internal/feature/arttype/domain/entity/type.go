// Package entity defines the domain entities for the arttype feature.
package entity

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
)

// Type is a category an art listing belongs to. Name uniqueness is not
// enforced at the storage level; only presence is validated.
type Type struct {
	ID uint `gorm:"primaryKey"`

	// Name of the category. Required.
	Name string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeSave validates the type at the storage boundary.
func (t *Type) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(t.Name) == "" {
		return apperror.BadRequest("name required")
	}
	return nil
}
