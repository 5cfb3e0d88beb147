package profile

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// Business rule errors
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidRole        = errors.New("role must be user, artist or admin")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrWrongPassword):
		return 401
	case errors.Is(err, ErrProfileNotFound):
		return 404
	case errors.Is(err, ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, ErrInvalidRole):
		return 400
	default:
		return 500
	}
}
