// Package handler provides the HTTP handlers for the arttype feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"art_backend/internal/api"
	"art_backend/internal/apperror"
	"art_backend/internal/feature/arttype/domain/entity"
)

// TypeUsecase defines the type operations this handler orchestrates.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type TypeUsecase interface {
	CreateType(ctx context.Context, name string) (*entity.Type, error)
	ListTypes(ctx context.Context) ([]entity.Type, error)
	UpdateType(ctx context.Context, id uint, name string) (*entity.Type, error)
	DeleteType(ctx context.Context, id uint) (*entity.Type, error)
}

// TypeHandler handles the category type CRUD endpoints.
type TypeHandler struct {
	uc TypeUsecase
}

// NewTypeHandler creates a TypeHandler.
func NewTypeHandler(uc TypeUsecase) *TypeHandler {
	return &TypeHandler{uc: uc}
}

// bindTypeBody parses and checks the request body shared by create and
// update. On failure it has already written the error response.
func bindTypeBody(c *gin.Context) (string, bool) {
	var req api.TypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid request body"))
		return "", false
	}
	if req.Name == "" {
		apperror.Respond(c, apperror.BadRequest("name is required"))
		return "", false
	}
	return req.Name, true
}

func toTypeResponse(t entity.Type) api.TypeResponse {
	return api.TypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// Create handles POST /type.
func (h *TypeHandler) Create(c *gin.Context) {
	name, ok := bindTypeBody(c)
	if !ok {
		return
	}
	t, err := h.uc.CreateType(c.Request.Context(), name)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.TypeItemResponse{Message: "type created", Type: toTypeResponse(*t)})
}

// List handles GET /type.
func (h *TypeHandler) List(c *gin.Context) {
	types, err := h.uc.ListTypes(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	out := make([]api.TypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, toTypeResponse(t))
	}
	c.JSON(http.StatusOK, api.TypeListResponse{Message: "success", Types: out})
}

// Update handles PUT /type/:id.
func (h *TypeHandler) Update(c *gin.Context) {
	name, ok := bindTypeBody(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid id"))
		return
	}
	t, err := h.uc.UpdateType(c.Request.Context(), uint(id), name)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TypeItemResponse{Message: "type updated", Type: toTypeResponse(*t)})
}

// Delete handles DELETE /type/:id, echoing the deleted type.
func (h *TypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid id"))
		return
	}
	t, err := h.uc.DeleteType(c.Request.Context(), uint(id))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TypeItemResponse{Message: "type deleted", Type: toTypeResponse(*t)})
}
