package profile

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Service defines the business operations of the profile domain.
type Service interface {
	// Register creates an account with the default user role and returns
	// a token pair, logging the account straight in.
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)

	// Login verifies credentials and returns a token pair. Never reveals
	// whether the email exists.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)

	// GetByID returns the account for the session endpoint.
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)

	// UpdateProfile applies the non-nil fields to the caller's account.
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileDTO, error)

	// ChangePassword verifies the current password and swaps the hash.
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error

	// List is the admin account list.
	List(ctx context.Context, p listing.Params) ([]ProfileDTO, listing.Meta, error)

	// UpdateRole promotes or demotes an account, optionally linking it to
	// a roster artist.
	UpdateRole(ctx context.Context, id uuid.UUID, req UpdateRoleRequest) (*ProfileDTO, error)
}
