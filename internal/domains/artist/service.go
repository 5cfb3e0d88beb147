package artist

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the artist domain.
type Service interface {
	// Create validates the request, derives the slug from the name and
	// inserts. Errors: ErrInvalidName, ErrDuplicateSlug.
	Create(ctx context.Context, req *CreateArtistRequest) (*Artist, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)

	// GetBySlug serves the public artist page (stats + albums + sets).
	GetBySlug(ctx context.Context, slug string) (*ArtistDetailResponse, error)

	// List is the admin list with search + pagination.
	List(ctx context.Context, p listing.Params) ([]Artist, listing.Meta, error)

	// ListPublic is the roster ordered by name with stats.
	ListPublic(ctx context.Context) ([]ArtistResponse, error)

	// Update applies the non-nil fields; a changed name regenerates the slug.
	Update(ctx context.Context, id uuid.UUID, req *UpdateArtistRequest) (*Artist, error)

	// DeleteFromList deletes the row, refetches the caller's current page
	// and falls back one page when the deletion emptied it.
	DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params) ([]Artist, listing.Meta, error)

	Options(ctx context.Context) ([]Option, error)

	UpdateStats(ctx context.Context, artistID uuid.UUID, req UpdateStatsRequest) (*Stats, error)

	// ImportWorkbook creates artists from an .xlsx sheet (Name, Bio
	// columns). Row failures are collected, not fatal.
	ImportWorkbook(ctx context.Context, data []byte) (*ImportResult, error)
}
