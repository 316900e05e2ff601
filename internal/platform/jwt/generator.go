// Package jwtmw provides signed-token issuance/verification and the gin
// guards that enforce authentication, role and ownership policy.
package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature verification or
// carries a malformed payload.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload carried by a signed token. It mirrors the
// user's core fields but never the password hash; guards re-fetch the user
// row per request, so nothing downstream needs stored credentials.
type Claims struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// tokenClaims adapts Claims to the jwt.Claims interface. RegisteredClaims
// stays empty: tokens carry no expiry. Adding exp here would be the natural
// hardening if sessions ever need to time out.
type tokenClaims struct {
	Claims
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens with a process-wide secret
// injected at construction.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService with the provided signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the claims payload and returns the token string.
func (s *TokenService) Issue(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{Claims: claims})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token, checks its signature and returns the embedded
// claims. Only HMAC-signed tokens are accepted; anything else fails with
// ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &tc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &tc.Claims, nil
}
