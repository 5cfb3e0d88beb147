package artist

import "errors"

var (
	// Validation errors
	ErrInvalidName = errors.New("artist name is invalid")
	ErrInvalidSlug = errors.New("artist slug is invalid")

	// Business rule errors
	ErrArtistNotFound = errors.New("artist not found")
	ErrDuplicateSlug  = errors.New("artist with this slug already exists")
	ErrArtistInUse    = errors.New("cannot delete artist with linked catalog records")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArtistNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrArtistInUse):
		return 409
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidSlug):
		return 400
	default:
		return 500
	}
}
