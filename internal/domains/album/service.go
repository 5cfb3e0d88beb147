package album

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the album domain.
type Service interface {
	Create(ctx context.Context, req *CreateAlbumRequest) (*Album, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Album, error)

	// List is the admin list: title search, artist filter, pagination.
	List(ctx context.Context, p listing.Params, f Filter) ([]AlbumResponse, listing.Meta, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateAlbumRequest) (*Album, error)

	// DeleteFromList deletes the row, refetches the caller's current page
	// and falls back one page when the deletion emptied it.
	DeleteFromList(ctx context.Context, id uuid.UUID, p listing.Params, f Filter) ([]AlbumResponse, listing.Meta, error)

	Options(ctx context.Context, artistID *uuid.UUID) ([]Option, error)
}
