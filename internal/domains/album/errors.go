package album

import "errors"

var (
	// Validation errors
	ErrInvalidTitle = errors.New("album title is invalid")
	ErrInvalidType  = errors.New("album type must be album, ep or single")

	// Business rule errors
	ErrAlbumNotFound  = errors.New("album not found")
	ErrArtistNotFound = errors.New("album artist not found")
	ErrAlbumInUse     = errors.New("cannot delete album with linked tracks")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAlbumNotFound):
		return 404
	case errors.Is(err, ErrAlbumInUse):
		return 409
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidType), errors.Is(err, ErrArtistNotFound):
		return 400
	default:
		return 500
	}
}
