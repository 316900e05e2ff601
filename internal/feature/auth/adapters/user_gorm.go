// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/auth/domain/entity"
	"art_backend/internal/feature/auth/usecase"
	jwtmw "art_backend/internal/platform/jwt"
)

// userGorm implements the user repository on gorm.
type userGorm struct {
	db *gorm.DB
}

// Compile-time interface checks.
var (
	_ usecase.UserRepository = (*userGorm)(nil)
	_ jwtmw.UserFinder       = (*userGorm)(nil)
)

// NewUserGorm creates a userGorm with the given connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A duplicate email surfaces as a 400 constraint
// violation; entity hook violations pass through unchanged.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.BadRequest("email must be unique")
		}
		return err
	}
	return nil
}

// FindByEmail returns the user with the given email. A missing row is a
// 401: this lookup backs both login and per-request claims revalidation,
// where "no such user" means the caller is not authenticated.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized()
		}
		return nil, err
	}
	return &u, nil
}
