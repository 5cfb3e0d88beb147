package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Repository defines data access for events and their lineups.
type Repository interface {
	// Create inserts the event and its lineup join rows in one
	// transaction.
	// Errors: ErrArtistNotFound when a lineup id does not exist.
	Create(ctx context.Context, e *Event, artistIDs []uuid.UUID) (*EventResponse, error)

	// GetByID retrieves an event with its lineup.
	// Errors: ErrEventNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)

	// GetAll retrieves one admin list page: title search, ordering,
	// pagination. Lineups included.
	GetAll(ctx context.Context, p listing.Params) ([]EventResponse, int64, error)

	// ListWindow returns every event whose start date falls inside the
	// half-open [from, to) window, ordered by start date ascending.
	// Public calendar surface.
	ListWindow(ctx context.Context, from, to time.Time) ([]EventResponse, error)

	// Update rewrites the row by id.
	// Errors: ErrEventNotFound.
	Update(ctx context.Context, e *Event) (*EventResponse, error)

	// ReplaceArtists swaps the lineup wholesale: delete all join rows,
	// insert the given ids. An empty slice leaves the event without
	// artists. Runs in one transaction.
	// Errors: ErrEventNotFound, ErrArtistNotFound.
	ReplaceArtists(ctx context.Context, eventID uuid.UUID, artistIDs []uuid.UUID) error

	// Delete removes the event; join rows cascade.
	// Errors: ErrEventNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
