// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"art_backend/internal/api"
	"art_backend/internal/apperror"
	"art_backend/internal/feature/auth/domain/entity"
	"art_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations this handler orchestrates.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Login authenticates a user and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a new Staff user with a hashed password.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
}

// AuthHandler handles login and registration requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid request body"))
		return
	}
	if req.Email == "" {
		apperror.Respond(c, apperror.BadRequest("email is required"))
		return
	}
	if req.Password == "" {
		apperror.Respond(c, apperror.BadRequest("password is required"))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP(), "error", err)
		apperror.Respond(c, err)
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Message: "login success", Token: token})
}

// Register handles POST /user. The route is admin-gated; the handler itself
// only validates the body and delegates.
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid request body"))
		return
	}
	// Required-field check, first absent field wins.
	for _, f := range []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"password", req.Password},
		{"phoneNumber", req.PhoneNumber},
		{"address", req.Address},
	} {
		if f.value == "" {
			apperror.Respond(c, apperror.BadRequest(f.name+" is required"))
			return
		}
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		slog.Warn("registration failed", "email", req.Email, "error", err)
		apperror.Respond(c, err)
		return
	}
	slog.Info("user registered", "email", user.Email)
	c.JSON(http.StatusCreated, api.RegisterResponse{
		Message: "register success",
		User: api.UserResponse{
			Username:    user.Username,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Address:     user.Address,
			Role:        string(user.Role),
		},
	})
}
