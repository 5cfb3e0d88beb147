package liveset

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Filter narrows admin live set listings beyond the shared listing params.
type Filter struct {
	ArtistID *uuid.UUID `form:"artist_id" json:"artist_id,omitempty"`
}

// Repository defines data access for live sets.
type Repository interface {
	// Create inserts a new live set.
	// Errors: ErrArtistNotFound / ErrEventNotFound on FK violations.
	Create(ctx context.Context, s *LiveSet) (*LiveSet, error)

	// GetByID retrieves a live set by UUID.
	// Errors: ErrLiveSetNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*LiveSet, error)

	// GetAll retrieves one admin list page with the artist name joined.
	// Search matches title and event name.
	GetAll(ctx context.Context, p listing.Params, f Filter) ([]LiveSetResponse, int64, error)

	// Update rewrites the row by id.
	// Errors: ErrLiveSetNotFound, ErrArtistNotFound, ErrEventNotFound.
	Update(ctx context.Context, s *LiveSet) (*LiveSet, error)

	// Delete removes a live set.
	// Errors: ErrLiveSetNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
