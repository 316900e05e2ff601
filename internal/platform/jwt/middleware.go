package jwtmw

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"art_backend/internal/apperror"
	artentity "art_backend/internal/feature/art/domain/entity"
	authentity "art_backend/internal/feature/auth/domain/entity"
)

// ContextClaims is the gin context key holding the caller's Claims.
const ContextClaims = "authClaims"

// TokenVerifier verifies a signed token and returns its claims.
// Kept small so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

// UserFinder looks up the user a token's claims refer to. Following Go
// convention the interface is defined by the consumer (the guard), not the
// provider (the auth adapter).
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)
}

// ArtFinder looks up an art listing for the ownership guard.
type ArtFinder interface {
	FindByID(ctx context.Context, id uint) (*artentity.Art, error)
}

// Guard bundles the policy middlewares. Each request moves through
// token decoding, then role/ownership checks; any rejection aborts with the
// translated taxonomy error (401 or 403).
type Guard struct {
	tokens TokenVerifier
	users  UserFinder
	arts   ArtFinder
}

// NewGuard creates a Guard with the given verifier and lookups.
func NewGuard(tokens TokenVerifier, users UserFinder, arts ArtFinder) *Guard {
	return &Guard{tokens: tokens, users: users, arts: arts}
}

// AuthRequired rejects requests without a valid bearer token. The claims are
// revalidated against the store: a token for a user row that no longer
// exists is treated exactly like no token at all, so tokens issued to
// since-deleted users stop authenticating. On success the context carries
// claims rebuilt from the fresh user row, not the token payload.
func (g *Guard) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			apperror.Abort(c, apperror.Unauthorized())
			return
		}
		claims, err := g.tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			apperror.Abort(c, apperror.New(401, "invalid token"))
			return
		}

		user, err := g.users.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			apperror.Abort(c, err)
			return
		}

		c.Set(ContextClaims, Claims{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			Role:        string(user.Role),
			PhoneNumber: user.PhoneNumber,
			Address:     user.Address,
		})
		c.Next()
	}
}

// AdminRequired rejects authenticated callers whose role is not Admin.
// Must run after AuthRequired.
func (g *Guard) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			apperror.Abort(c, apperror.Unauthorized())
			return
		}
		if claims.Role != string(authentity.RoleAdmin) {
			apperror.Abort(c, apperror.Forbidden())
			return
		}
		c.Next()
	}
}

// ArtOwnerOrAdmin allows admins through unconditionally; staff may only pass
// for art they own. A missing art id is a 404 so the ownership check never
// leaks whether a row exists to someone who could not touch it anyway.
// Must run after AuthRequired.
func (g *Guard) ArtOwnerOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			apperror.Abort(c, apperror.Unauthorized())
			return
		}
		if claims.Role == string(authentity.RoleAdmin) {
			c.Next()
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperror.Abort(c, apperror.BadRequest("invalid id"))
			return
		}
		art, err := g.arts.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			apperror.Abort(c, err)
			return
		}
		if art.UserID != claims.ID {
			apperror.Abort(c, apperror.Forbidden())
			return
		}
		c.Next()
	}
}

// ClaimsFromContext returns the authenticated caller's claims, if any.
// Handlers use this instead of knowing the context key.
func ClaimsFromContext(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
