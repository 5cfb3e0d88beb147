package artist

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Repository defines data access for artists and their stats.
type Repository interface {
	// Create inserts a new artist.
	// Errors: ErrDuplicateSlug if the slug exists.
	Create(ctx context.Context, a *Artist) (*Artist, error)

	// GetByID retrieves an artist by UUID.
	// Errors: ErrArtistNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)

	// GetBySlug retrieves the full public profile by slug: artist, stats,
	// albums with their tracks, and live sets.
	// Errors: ErrArtistNotFound.
	GetBySlug(ctx context.Context, slug string) (*ArtistDetailResponse, error)

	// GetAll retrieves one admin list page: case-insensitive substring
	// search on name, stable ordering, offset pagination. Returns the
	// page of rows plus the total matching count.
	GetAll(ctx context.Context, p listing.Params) ([]Artist, int64, error)

	// ListWithStats returns the whole roster ordered by name, each artist
	// with its stats row when one exists. Public surface.
	ListWithStats(ctx context.Context) ([]ArtistResponse, error)

	// Update rewrites the row by id.
	// Errors: ErrArtistNotFound, ErrDuplicateSlug.
	Update(ctx context.Context, a *Artist) (*Artist, error)

	// Delete removes an artist.
	// Errors: ErrArtistNotFound, ErrArtistInUse on FK violation.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug checks slug uniqueness before insert/update.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Options returns (id, name) pairs ordered by name for form selectors.
	Options(ctx context.Context) ([]Option, error)

	// UpsertStats creates or replaces the stats row for an artist.
	UpsertStats(ctx context.Context, artistID uuid.UUID, req UpdateStatsRequest) (*Stats, error)
}
