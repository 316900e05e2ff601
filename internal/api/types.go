// Package api defines the JSON request and response shapes of the HTTP
// surface. Handlers bind requests into these types and map entities out of
// them; entities themselves never cross the transport boundary.
package api

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /user. Field order matters: the first
// absent field is the one named in the 400 response.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// ArtRequest is the body of POST /art and PUT /art/:id.
type ArtRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	ImgURL      string `json:"imgUrl"`
	TypeID      uint   `json:"typeId"`
}

// TypeRequest is the body of POST /type and PUT /type/:id.
type TypeRequest struct {
	Name string `json:"name"`
}

// TokenResponse is the success body of POST /auth/login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse echoes a created user without its password.
type UserResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// RegisterResponse is the success body of POST /user.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// OwnerResponse is the owner embedded in an art response. The password is
// never part of this shape.
type OwnerResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// TypeResponse is a single category type.
type TypeResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArtResponse is a single art listing. User and Type are present only when
// the endpoint preloads them.
type ArtResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int            `json:"price"`
	Stock       int            `json:"stock"`
	ImgURL      string         `json:"imgUrl"`
	TypeID      uint           `json:"typeId"`
	UserID      uint           `json:"userId"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	User        *OwnerResponse `json:"user,omitempty"`
	Type        *TypeResponse  `json:"type,omitempty"`
}

// ArtListResponse wraps a list endpoint result.
type ArtListResponse struct {
	Message string        `json:"message"`
	Arts    []ArtResponse `json:"arts"`
}

// ArtItemResponse wraps a single-art result.
type ArtItemResponse struct {
	Message string      `json:"message"`
	Art     ArtResponse `json:"art"`
}

// TypeListResponse wraps a type list result.
type TypeListResponse struct {
	Message string         `json:"message"`
	Types   []TypeResponse `json:"types"`
}

// TypeItemResponse wraps a single-type result.
type TypeItemResponse struct {
	Message string       `json:"message"`
	Type    TypeResponse `json:"type"`
}
