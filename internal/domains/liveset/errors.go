package liveset

import "errors"

var (
	// Validation errors
	ErrInvalidTitle = errors.New("live set title is invalid")

	// Business rule errors
	ErrLiveSetNotFound = errors.New("live set not found")
	ErrArtistNotFound  = errors.New("live set artist not found")
	ErrEventNotFound   = errors.New("live set event not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrLiveSetNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrArtistNotFound), errors.Is(err, ErrEventNotFound):
		return 400
	default:
		return 500
	}
}
