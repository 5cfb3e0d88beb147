package album

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Filter narrows admin album listings beyond the shared listing params.
type Filter struct {
	ArtistID *uuid.UUID `form:"artist_id" json:"artist_id,omitempty"`
}

// Repository defines data access for albums.
type Repository interface {
	// Create inserts a new album.
	// Errors: ErrArtistNotFound on FK violation.
	Create(ctx context.Context, a *Album) (*Album, error)

	// GetByID retrieves an album by UUID.
	// Errors: ErrAlbumNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Album, error)

	// GetAll retrieves one admin list page with the artist name joined.
	// Search matches the title, Filter.ArtistID narrows to one artist.
	GetAll(ctx context.Context, p listing.Params, f Filter) ([]AlbumResponse, int64, error)

	// Update rewrites the row by id.
	// Errors: ErrAlbumNotFound, ErrArtistNotFound.
	Update(ctx context.Context, a *Album) (*Album, error)

	// Delete removes an album.
	// Errors: ErrAlbumNotFound, ErrAlbumInUse on FK violation.
	Delete(ctx context.Context, id uuid.UUID) error

	// Options returns (id, title) pairs ordered by title, optionally
	// narrowed to one artist, for the track form selector.
	Options(ctx context.Context, artistID *uuid.UUID) ([]Option, error)
}
