package cart

import "context"

// Service defines the business operations of the cart domain. Every
// mutation returns the freshly priced cart so the client renders the new
// state from the same response.
type Service interface {
	// Products returns the shop catalog.
	Products(ctx context.Context) []Product

	// Get returns the priced cart for the session.
	Get(ctx context.Context, sessionID string) (*View, error)

	// Add merges quantity of productID into the cart.
	// Errors: ErrUnknownProduct.
	Add(ctx context.Context, sessionID, productID string, quantity int) (*View, error)

	// SetQuantity pins a line's quantity; zero or less removes the line.
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*View, error)

	// Remove drops a line.
	Remove(ctx context.Context, sessionID, productID string) (*View, error)

	// Clear empties the cart.
	Clear(ctx context.Context, sessionID string) (*View, error)
}
