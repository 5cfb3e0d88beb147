package cart

import "errors"

var (
	// Validation errors
	ErrUnknownProduct  = errors.New("product does not exist")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// Infrastructure errors
	ErrNoSession = errors.New("request has no cart session")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownProduct):
		return 404
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrNoSession):
		return 400
	default:
		return 500
	}
}
