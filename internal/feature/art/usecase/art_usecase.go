// Package usecase implements the business logic for the art feature.
package usecase

import (
	"context"
	"fmt"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/art/domain/entity"
)

// MaxImageSize is the largest accepted image upload (10MB).
const MaxImageSize = 10 * 1024 * 1024

// ArtRepository abstracts art persistence. Following Go convention the
// interface is defined by the consumer (usecase), not the provider (adapters).
type ArtRepository interface {
	// Create persists a new art listing.
	Create(ctx context.Context, art *entity.Art) error

	// FindAll returns every listing with its owner and type preloaded.
	FindAll(ctx context.Context) ([]entity.Art, error)

	// FindByID returns the listing with the given id, or a 404-mapped error.
	FindByID(ctx context.Context, id uint) (*entity.Art, error)

	// Save writes back a modified listing.
	Save(ctx context.Context, art *entity.Art) error

	// Delete removes the listing with the given id.
	Delete(ctx context.Context, id uint) error

	// List executes a compiled public-listing filter.
	List(ctx context.Context, f ListingFilter) ([]entity.Art, error)
}

// ImageUploader sends image bytes to the asset host and returns the hosted
// URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, fileName string) (string, error)
}

type artUsecase struct {
	arts     ArtRepository
	uploader ImageUploader
}

// NewArtUsecase creates the art usecase.
func NewArtUsecase(arts ArtRepository, uploader ImageUploader) *artUsecase {
	return &artUsecase{arts: arts, uploader: uploader}
}

// CreateArt persists a new listing. The handler sets UserID from the
// caller's claims; ownership never changes afterwards.
func (u *artUsecase) CreateArt(ctx context.Context, art *entity.Art) error {
	return u.arts.Create(ctx, art)
}

// ListAll returns every listing with owner and type preloaded.
func (u *artUsecase) ListAll(ctx context.Context) ([]entity.Art, error) {
	return u.arts.FindAll(ctx)
}

// ListPublic executes a compiled listing filter.
func (u *artUsecase) ListPublic(ctx context.Context, f ListingFilter) ([]entity.Art, error) {
	return u.arts.List(ctx, f)
}

// GetArt returns a single listing by id.
func (u *artUsecase) GetArt(ctx context.Context, id uint) (*entity.Art, error) {
	return u.arts.FindByID(ctx, id)
}

// UpdateArtInput carries the mutable fields of a listing. UserID is absent:
// the owner is preserved across updates.
type UpdateArtInput struct {
	Name        string
	Description string
	Price       int
	Stock       int
	ImgURL      string
	TypeID      uint
}

// UpdateArt replaces the mutable fields of the listing, preserving its owner.
func (u *artUsecase) UpdateArt(ctx context.Context, id uint, in UpdateArtInput) (*entity.Art, error) {
	art, err := u.arts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	art.Name = in.Name
	art.Description = in.Description
	art.Price = in.Price
	art.Stock = in.Stock
	art.ImgURL = in.ImgURL
	art.TypeID = in.TypeID
	if err := u.arts.Save(ctx, art); err != nil {
		return nil, err
	}
	return art, nil
}

// UpdateImage uploads the image bytes to the asset host and persists the
// returned URL on the listing. The binary itself is never stored.
func (u *artUsecase) UpdateImage(ctx context.Context, id uint, data []byte, fileName string) (*entity.Art, error) {
	if len(data) == 0 {
		return nil, apperror.BadRequest("imgUrl required")
	}
	if len(data) > MaxImageSize {
		return nil, apperror.BadRequest("image maximum size is 10MB")
	}
	art, err := u.arts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := u.uploader.Upload(ctx, data, fileName)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}
	art.ImgURL = url
	if err := u.arts.Save(ctx, art); err != nil {
		return nil, err
	}
	return art, nil
}

// DeleteArt removes the listing and returns it for the response echo.
func (u *artUsecase) DeleteArt(ctx context.Context, id uint) (*entity.Art, error) {
	art, err := u.arts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.arts.Delete(ctx, id); err != nil {
		return nil, err
	}
	return art, nil
}
