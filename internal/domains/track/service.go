package track

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the track domain.
type Service interface {
	Create(ctx context.Context, req *CreateTrackRequest) (*Track, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Track, error)

	// List is the admin list: title search, artist/album filters,
	// pagination.
	List(ctx context.Context, p listing.Params, f Filter) ([]TrackResponse, listing.Meta, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateTrackRequest) (*Track, error)

	// DeleteFromList deletes the row, refetches the caller's current page
	// and falls back one page when the deletion emptied it.
	DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f Filter) ([]TrackResponse, listing.Meta, error)
}
