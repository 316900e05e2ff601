// Package apperror defines the error taxonomy shared by all features and the
// single translator that renders errors as JSON responses.
package apperror

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a client-facing error carrying the HTTP status it maps to.
// Usecases and adapters return *Error for every failure that has a defined
// client message; anything else is translated to a 500.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with an explicit status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 error. Used for missing body fields, invalid
// listing queries and storage-level constraint violations.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 error with the canonical "unauthorized" message.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "unauthorized")
}

// Forbidden creates a 403 error with the canonical "forbidden" message.
func Forbidden() *Error {
	return New(http.StatusForbidden, "forbidden")
}

// NotFound creates a 404 error for a lookup by identifier that found nothing.
func NotFound(id uint) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("object with id:%d does not exist", id))
}

// RateLimited creates a 429 error for throttled login attempts.
func RateLimited() *Error {
	return New(http.StatusTooManyRequests, "too many login attempts, try again later")
}

// errorResponse is the canonical error envelope: {"message": "..."}.
type errorResponse struct {
	Message string `json:"message"`
}

// resolve maps any error to a status code and client message. Unclassified
// errors are logged with their real cause and collapsed to a generic 500.
func resolve(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	slog.Error("unhandled error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// Respond writes the translated error response. Handlers forward every
// failure here so the client-facing shape is consistent regardless of origin.
func Respond(c *gin.Context, err error) {
	status, message := resolve(err)
	c.JSON(status, errorResponse{Message: message})
}

// Abort writes the translated error response and aborts the handler chain.
// Guards use this to stop a rejected request before it reaches the handler.
func Abort(c *gin.Context, err error) {
	status, message := resolve(err)
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}
