// Package adapters provides the repository implementations for the arttype
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/arttype/domain/entity"
	"art_backend/internal/feature/arttype/usecase"
)

// typeGorm implements the type repository on gorm.
type typeGorm struct {
	db *gorm.DB
}

var _ usecase.TypeRepository = (*typeGorm)(nil)

// NewTypeGorm creates a typeGorm with the given connection.
func NewTypeGorm(db *gorm.DB) *typeGorm {
	return &typeGorm{db: db}
}

func (r *typeGorm) Create(ctx context.Context, t *entity.Type) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *typeGorm) FindAll(ctx context.Context) ([]entity.Type, error) {
	var types []entity.Type
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindByID returns the type with the given id, 404 when missing.
func (r *typeGorm) FindByID(ctx context.Context, id uint) (*entity.Type, error) {
	var t entity.Type
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *typeGorm) Save(ctx context.Context, t *entity.Type) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *typeGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Type{}, id).Error
}
