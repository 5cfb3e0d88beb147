package cart

import "context"

// Repository stores cart documents keyed by session id.
type Repository interface {
	// Get loads the cart for sessionID. A missing, corrupt or
	// wrong-schema-version document comes back as a fresh empty cart.
	Get(ctx context.Context, sessionID string) (*Document, error)

	// Save persists the cart and resets its TTL.
	Save(ctx context.Context, sessionID string, d *Document) error

	// Delete drops the cart entirely.
	Delete(ctx context.Context, sessionID string) error
}
