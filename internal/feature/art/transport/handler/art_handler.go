// Package handler provides the HTTP handlers for the art feature.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"art_backend/internal/api"
	"art_backend/internal/apperror"
	"art_backend/internal/feature/art/domain/entity"
	"art_backend/internal/feature/art/usecase"
	jwtmw "art_backend/internal/platform/jwt"
)

// ArtUsecase defines the art operations this handler orchestrates.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type ArtUsecase interface {
	CreateArt(ctx context.Context, art *entity.Art) error
	ListAll(ctx context.Context) ([]entity.Art, error)
	ListPublic(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error)
	GetArt(ctx context.Context, id uint) (*entity.Art, error)
	UpdateArt(ctx context.Context, id uint, in usecase.UpdateArtInput) (*entity.Art, error)
	UpdateImage(ctx context.Context, id uint, data []byte, fileName string) (*entity.Art, error)
	DeleteArt(ctx context.Context, id uint) (*entity.Art, error)
}

// ArtHandler handles art CRUD and the public listing endpoint.
type ArtHandler struct {
	uc ArtUsecase
}

// NewArtHandler creates an ArtHandler.
func NewArtHandler(uc ArtUsecase) *ArtHandler {
	return &ArtHandler{uc: uc}
}

// parseID reads the :id path parameter. On failure it has already written
// the error response.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// checkArtBody enforces that every body field is present, naming the first
// absent one. Zero counts as absent for the numeric fields.
func checkArtBody(req api.ArtRequest) *apperror.Error {
	switch {
	case req.Name == "":
		return apperror.BadRequest("name is required")
	case req.Description == "":
		return apperror.BadRequest("description is required")
	case req.Price == 0:
		return apperror.BadRequest("price is required")
	case req.Stock == 0:
		return apperror.BadRequest("stock is required")
	case req.ImgURL == "":
		return apperror.BadRequest("imgUrl is required")
	case req.TypeID == 0:
		return apperror.BadRequest("typeId is required")
	}
	return nil
}

func toTypeResponse(t entity.Art) *api.TypeResponse {
	if t.Type == nil {
		return nil
	}
	return &api.TypeResponse{
		ID:        t.Type.ID,
		Name:      t.Type.Name,
		CreatedAt: t.Type.CreatedAt,
		UpdatedAt: t.Type.UpdatedAt,
	}
}

func toOwnerResponse(a entity.Art) *api.OwnerResponse {
	if a.User == nil {
		return nil
	}
	// The owner's password hash stops here; it is not part of the shape.
	return &api.OwnerResponse{
		ID:          a.User.ID,
		Username:    a.User.Username,
		Email:       a.User.Email,
		PhoneNumber: a.User.PhoneNumber,
		Address:     a.User.Address,
		Role:        string(a.User.Role),
	}
}

func toArtResponse(a entity.Art) api.ArtResponse {
	return api.ArtResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       a.Price,
		Stock:       a.Stock,
		ImgURL:      a.ImgURL,
		TypeID:      a.TypeID,
		UserID:      a.UserID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		User:        toOwnerResponse(a),
		Type:        toTypeResponse(a),
	}
}

func toArtList(arts []entity.Art) []api.ArtResponse {
	out := make([]api.ArtResponse, 0, len(arts))
	for _, a := range arts {
		out = append(out, toArtResponse(a))
	}
	return out
}

// Create handles POST /art. The caller becomes the owner.
func (h *ArtHandler) Create(c *gin.Context) {
	var req api.ArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid request body"))
		return
	}
	if err := checkArtBody(req); err != nil {
		apperror.Respond(c, err)
		return
	}
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		apperror.Respond(c, apperror.Unauthorized())
		return
	}

	art := &entity.Art{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImgURL:      req.ImgURL,
		TypeID:      req.TypeID,
		UserID:      claims.ID,
	}
	if err := h.uc.CreateArt(c.Request.Context(), art); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.ArtItemResponse{Message: "art created", Art: toArtResponse(*art)})
}

// List handles GET /art: every listing with owner and type.
func (h *ArtHandler) List(c *gin.Context) {
	arts, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtListResponse{Message: "success", Arts: toArtList(arts)})
}

// ListPublic handles GET /art/pub: the unauthenticated browse endpoint with
// filtering, sorting and pagination.
func (h *ArtHandler) ListPublic(c *gin.Context) {
	f, err := usecase.ParseListingQuery(
		c.Query("name"),
		c.Query("typeId"),
		c.Query("sort"),
		c.Query("page"),
	)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	arts, err := h.uc.ListPublic(c.Request.Context(), *f)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtListResponse{Message: "success", Arts: toArtList(arts)})
}

// GetByID handles GET /art/pub/:id.
func (h *ArtHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	art, err := h.uc.GetArt(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtItemResponse{Message: "success", Art: toArtResponse(*art)})
}

// Update handles PUT /art/:id. Ownership is preserved by the usecase.
func (h *ArtHandler) Update(c *gin.Context) {
	var req api.ArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("invalid request body"))
		return
	}
	if err := checkArtBody(req); err != nil {
		apperror.Respond(c, err)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	art, err := h.uc.UpdateArt(c.Request.Context(), id, usecase.UpdateArtInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImgURL:      req.ImgURL,
		TypeID:      req.TypeID,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtItemResponse{Message: "art updated", Art: toArtResponse(*art)})
}

// UpdateImage handles PATCH /art/:id.
//
// Content-Type: multipart/form-data, field "imgUrl" carrying the image file.
// The binary goes to the asset host; only the returned URL is persisted.
func (h *ArtHandler) UpdateImage(c *gin.Context) {
	file, err := c.FormFile("imgUrl")
	if err != nil {
		apperror.Respond(c, apperror.BadRequest("imgUrl required"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		apperror.Respond(c, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()
	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		apperror.Respond(c, err)
		return
	}

	art, err := h.uc.UpdateImage(c.Request.Context(), id, data, file.Filename)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtItemResponse{Message: "art image updated", Art: toArtResponse(*art)})
}

// Delete handles DELETE /art/:id, echoing the deleted listing.
func (h *ArtHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	art, err := h.uc.DeleteArt(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ArtItemResponse{Message: "art deleted", Art: toArtResponse(*art)})
}
