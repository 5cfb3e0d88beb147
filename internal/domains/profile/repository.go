package profile

import (
	"context"

	"github.com/google/uuid"

	"dacosta-backend/internal/shared/listing"
)

// Repository defines data access for profiles.
type Repository interface {
	// Create inserts a new profile.
	// Errors: ErrEmailAlreadyExists.
	Create(ctx context.Context, p *Profile) error

	// FindByID retrieves a profile by UUID.
	// Errors: ErrProfileNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByEmail retrieves a profile by email (case-insensitive).
	// Errors: ErrProfileNotFound.
	FindByEmail(ctx context.Context, email string) (*Profile, error)

	// ExistsByEmail checks email uniqueness before insert.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetAll retrieves one admin list page; search matches email and
	// full name.
	GetAll(ctx context.Context, p listing.Params) ([]Profile, int64, error)

	// Update rewrites the mutable profile fields by id.
	// Errors: ErrProfileNotFound.
	Update(ctx context.Context, p *Profile) error

	// UpdatePassword replaces the stored hash.
	// Errors: ErrProfileNotFound.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
