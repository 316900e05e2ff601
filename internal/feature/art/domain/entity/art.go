// Package entity defines the domain entities for the art feature.
package entity

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
	authentity "art_backend/internal/feature/auth/domain/entity"
	typeentity "art_backend/internal/feature/arttype/domain/entity"
)

// MinPrice is the lowest price an art listing may carry.
const MinPrice = 100

// Art is a product listing. It belongs to exactly one User (the creator and
// owner) and exactly one Type. The owner never changes after creation; rows
// cascade away with their parent User or Type.
type Art struct {
	ID uint `gorm:"primaryKey"`

	// Name of the listing. Required.
	Name string `gorm:"size:255;not null"`

	// Description of the listing. Required.
	Description string `gorm:"size:1024;not null"`

	// Price in the smallest currency unit. Minimum 100.
	Price int `gorm:"not null"`

	Stock int

	// ImgURL is the hosted image location. Only URLs returned by the asset
	// host are persisted, never image bytes.
	ImgURL string `gorm:"size:1024"`

	// TypeID references the category this listing belongs to.
	TypeID uint
	Type   *typeentity.Type `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// UserID references the owner. Immutable after creation.
	UserID uint
	User   *authentity.User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeSave validates the art at the storage boundary. Violations surface
// to the client as 400 responses with the first violation message.
func (a *Art) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(a.Name) == "" {
		return apperror.BadRequest("name required")
	}
	if strings.TrimSpace(a.Description) == "" {
		return apperror.BadRequest("description required")
	}
	if a.Price < MinPrice {
		return apperror.BadRequest("price number min 100")
	}
	return nil
}
