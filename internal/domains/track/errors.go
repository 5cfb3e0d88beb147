package track

import "errors"

var (
	// Validation errors
	ErrInvalidTitle    = errors.New("track title is invalid")
	ErrInvalidDuration = errors.New("track duration cannot be negative")

	// Business rule errors
	ErrTrackNotFound  = errors.New("track not found")
	ErrArtistNotFound = errors.New("track artist not found")
	ErrAlbumNotFound  = errors.New("track album not found")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTrackNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidDuration),
		errors.Is(err, ErrArtistNotFound), errors.Is(err, ErrAlbumNotFound):
		return 400
	default:
		return 500
	}
}
