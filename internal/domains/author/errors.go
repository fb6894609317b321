package author

import "errors"

var (
	// Validation Errors
	ErrEmptyName = errors.New("author name cannot be empty")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrEmptyName):
		return "INVALID_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrEmptyName):
		return 400
	default:
		return 500
	}
}
