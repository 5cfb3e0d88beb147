package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the event domain.
type Service interface {
	// Create validates, inserts the event and attaches the lineup.
	Create(ctx context.Context, req *CreateEventRequest) (*EventResponse, error)

	GetByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)

	// List is the admin list with search + pagination.
	List(ctx context.Context, p listing.Params) ([]EventResponse, listing.Meta, error)

	// ListMonth returns the month's events for the public calendar.
	// Zero month/year means the current month.
	ListMonth(ctx context.Context, year int, month time.Month) ([]EventResponse, error)

	// Update applies the non-nil fields; a non-nil ArtistIDs replaces
	// the lineup wholesale.
	Update(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)

	// DeleteFromList deletes the row, refetches the caller's current page
	// and falls back one page when the deletion emptied it.
	DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params) ([]EventResponse, listing.Meta, error)
}
