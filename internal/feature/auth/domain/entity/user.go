// Package entity defines the domain entities for the auth feature.
package entity

import (
	"regexp"
	"time"

	"gorm.io/gorm"

	"art_backend/internal/apperror"
)

// Role is the closed set of user roles.
type Role string

const (
	// RoleAdmin may manage every resource and create new users.
	RoleAdmin Role = "Admin"

	// RoleStaff may create resources and manage only their own.
	// Self-registration always persists this role.
	RoleStaff Role = "Staff"
)

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered user in the system.
// It owns zero or more Art entities and is never updated or deleted through
// the API surface.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name. Not unique.
	Username string `gorm:"size:255"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role gates what the user may do. Defaults to Staff.
	Role Role `gorm:"size:32;not null;default:Staff"`

	PhoneNumber string `gorm:"size:64"`
	Address     string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeSave validates the user at the storage boundary. Violations surface
// to the client as 400 responses with the first violation message.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Email == "" {
		return apperror.BadRequest("email required")
	}
	if !emailPattern.MatchString(u.Email) {
		return apperror.BadRequest("wrong email format")
	}
	if u.Password == "" {
		return apperror.BadRequest("password required")
	}
	if u.Role == "" {
		u.Role = RoleStaff
	}
	if !u.Role.Valid() {
		return apperror.BadRequest("role must be either Admin or Staff")
	}
	return nil
}
