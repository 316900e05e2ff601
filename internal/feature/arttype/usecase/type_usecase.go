// Package usecase implements the business logic for the arttype feature.
package usecase

import (
	"context"

	"art_backend/internal/feature/arttype/domain/entity"
)

// TypeRepository abstracts type persistence. Following Go convention the
// interface is defined by the consumer (usecase), not the provider (adapters).
type TypeRepository interface {
	Create(ctx context.Context, t *entity.Type) error
	FindAll(ctx context.Context) ([]entity.Type, error)
	FindByID(ctx context.Context, id uint) (*entity.Type, error)
	Save(ctx context.Context, t *entity.Type) error
	Delete(ctx context.Context, id uint) error
}

type typeUsecase struct {
	types TypeRepository
}

// NewTypeUsecase creates the arttype usecase.
func NewTypeUsecase(types TypeRepository) *typeUsecase {
	return &typeUsecase{types: types}
}

// CreateType persists a new category type.
func (u *typeUsecase) CreateType(ctx context.Context, name string) (*entity.Type, error) {
	t := &entity.Type{Name: name}
	if err := u.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTypes returns every category type.
func (u *typeUsecase) ListTypes(ctx context.Context) ([]entity.Type, error) {
	return u.types.FindAll(ctx)
}

// UpdateType renames an existing type.
func (u *typeUsecase) UpdateType(ctx context.Context, id uint, name string) (*entity.Type, error) {
	t, err := u.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Name = name
	if err := u.types.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteType removes the type and returns it for the response echo.
// Art rows belonging to it cascade away with it.
func (u *typeUsecase) DeleteType(ctx context.Context, id uint) (*entity.Type, error) {
	t, err := u.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.types.Delete(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}
