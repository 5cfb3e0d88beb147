package upload

import "errors"

var (
	ErrInvalidImage = errors.New("file is not a valid jpeg or png image")
	ErrInvalidAudio = errors.New("file is not a supported audio format")
	ErrTooLarge     = errors.New("file exceeds the upload size limit")
	ErrEmptyFile    = errors.New("uploaded file is empty")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidImage), errors.Is(err, ErrInvalidAudio), errors.Is(err, ErrEmptyFile):
		return 400
	case errors.Is(err, ErrTooLarge):
		return 413
	default:
		return 500
	}
}
