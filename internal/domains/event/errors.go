package event

import "errors"

var (
	// Validation errors
	ErrInvalidTitle     = errors.New("event title is invalid")
	ErrInvalidDateRange = errors.New("event end date cannot be before start date")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")

	// Business rule errors
	ErrEventNotFound  = errors.New("event not found")
	ErrArtistNotFound = errors.New("lineup references an unknown artist")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return 404
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidMonth), errors.Is(err, ErrArtistNotFound):
		return 400
	default:
		return 500
	}
}
