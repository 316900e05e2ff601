// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/auth/domain/entity"
	jwtmw "art_backend/internal/platform/jwt"
)

// minPasswordLength is the minimum plaintext password length.
const minPasswordLength = 5

// UserRepository abstracts user persistence. Following Go convention the
// interface is defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Fails with a constraint violation when the
	// email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with the given email, or a 401-mapped
	// error when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenIssuer signs a claims payload into a session token.
type TokenIssuer interface {
	Issue(claims jwtmw.Claims) (string, error)
}

// LoginLimiter throttles login attempts per email. May be backed by redis;
// a nil limiter disables throttling entirely.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

type authUsecase struct {
	users   UserRepository
	tokens  TokenIssuer
	limiter LoginLimiter
}

// NewAuthUsecase creates the auth usecase. limiter may be nil.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, limiter LoginLimiter) *authUsecase {
	return &authUsecase{users: users, tokens: tokens, limiter: limiter}
}

// RegisterInput carries the fields of a registration request. Role is not
// part of it: self-registration always persists Staff.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// Register creates a new Staff user with a bcrypt-hashed password.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if len(in.Password) < minPasswordLength {
		return nil, apperror.BadRequest(fmt.Sprintf("password char len min %d", minPasswordLength))
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hashed),
		Role:        entity.RoleStaff,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed token. An unknown email
// fails as "unauthorized", a known email with the wrong password as
// "incorrect password"; clients can rely on the distinction. A bcrypt
// compare runs even for unknown emails so response timing does not reveal
// whether an account exists.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, email)
		if err != nil {
			// The limiter is best-effort: a redis outage must not lock
			// everyone out.
			slog.Warn("login limiter unavailable", "error", err)
		} else if !allowed {
			return "", apperror.RateLimited()
		}
	}

	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps the bcrypt compare on the unknown-email path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		return "", err
	}
	if compareErr != nil {
		return "", apperror.New(http.StatusUnauthorized, "incorrect password")
	}

	token, err := u.tokens.Issue(jwtmw.Claims{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        string(user.Role),
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
