// Package adapters provides the repository implementations for the art
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/art/domain/entity"
	"art_backend/internal/feature/art/usecase"
	jwtmw "art_backend/internal/platform/jwt"
)

// artGorm implements the art repository on gorm.
type artGorm struct {
	db *gorm.DB
}

// Compile-time interface checks.
var (
	_ usecase.ArtRepository = (*artGorm)(nil)
	_ jwtmw.ArtFinder       = (*artGorm)(nil)
)

// NewArtGorm creates an artGorm with the given connection.
func NewArtGorm(db *gorm.DB) *artGorm {
	return &artGorm{db: db}
}

// Create inserts the listing. Entity hook violations pass through unchanged.
func (r *artGorm) Create(ctx context.Context, a *entity.Art) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindAll returns every listing with owner and type preloaded. The owner's
// password stays in the entity here; the transport layer is responsible for
// never serializing it.
func (r *artGorm) FindAll(ctx context.Context) ([]entity.Art, error) {
	var arts []entity.Art
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Type").
		Find(&arts).Error
	if err != nil {
		return nil, err
	}
	return arts, nil
}

// FindByID returns the listing with the given id, 404 when missing.
func (r *artGorm) FindByID(ctx context.Context, id uint) (*entity.Art, error) {
	var a entity.Art
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(id)
		}
		return nil, err
	}
	return &a, nil
}

// Save writes back a modified listing, running entity validation again.
func (r *artGorm) Save(ctx context.Context, a *entity.Art) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes the listing with the given id.
func (r *artGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Art{}, id).Error
}

// List executes a compiled public-listing filter. The filter is the only
// user-derived input; every value in it has already passed validation.
// LOWER(...) LIKE keeps the substring match case-insensitive on both
// postgres and the sqlite test database.
func (r *artGorm) List(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error) {
	q := r.db.WithContext(ctx).Model(&entity.Art{})
	if f.NamePattern != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+f.NamePattern+"%")
	}
	if f.TypeID > 0 {
		q = q.Where("type_id = ?", f.TypeID)
	}
	order := "created_at DESC"
	if f.OldestFirst {
		order = "created_at ASC"
	}

	var arts []entity.Art
	err := q.Order(order).Offset(f.Offset).Limit(f.Limit).Find(&arts).Error
	if err != nil {
		return nil, err
	}
	return arts, nil
}
