package liveset

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the live set domain.
type Service interface {
	Create(ctx context.Context, req *CreateLiveSetRequest) (*LiveSet, error)

	GetByID(ctx context.Context, id uuid.UUID) (*LiveSet, error)

	// List is the admin list: search, artist filter, pagination.
	List(ctx context.Context, p listing.Params, f Filter) ([]LiveSetResponse, listing.Meta, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateLiveSetRequest) (*LiveSet, error)

	// DeleteFromList deletes the row, refetches the caller's current page
	// and falls back one page when the deletion emptied it.
	DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f Filter) ([]LiveSetResponse, listing.Meta, error)
}
