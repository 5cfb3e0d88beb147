package track

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Filter narrows admin track listings beyond the shared listing params.
type Filter struct {
	ArtistID *uuid.UUID `form:"artist_id" json:"artist_id,omitempty"`
	AlbumID  *uuid.UUID `form:"album_id" json:"album_id,omitempty"`
}

// Repository defines data access for tracks.
type Repository interface {
	// Create inserts a new track.
	// Errors: ErrArtistNotFound / ErrAlbumNotFound on FK violations.
	Create(ctx context.Context, t *Track) (*Track, error)

	// GetByID retrieves a track by UUID.
	// Errors: ErrTrackNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Track, error)

	// GetAll retrieves one admin list page with artist and album names
	// joined. Search matches the title.
	GetAll(ctx context.Context, p listing.Params, f Filter) ([]TrackResponse, int64, error)

	// Update rewrites the row by id.
	// Errors: ErrTrackNotFound, ErrArtistNotFound, ErrAlbumNotFound.
	Update(ctx context.Context, t *Track) (*Track, error)

	// Delete removes a track.
	// Errors: ErrTrackNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
