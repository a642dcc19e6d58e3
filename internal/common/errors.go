package common

import "errors"

// Business logic errors
var (
	// Validation errors (ValidationError)
	ErrQueryTooShort = errors.New("search query must be at least 2 characters long")
	ErrQueryTooLong  = errors.New("search query must be at most 100 characters long")
	ErrQueryInvalid  = errors.New("search query is not valid UTF-8")

	// Source errors (SourceUnavailable) - recovered by the merger
	ErrSourceUnavailable = errors.New("search source unavailable")
	ErrSourceTimeout     = errors.New("search source timed out")

	// System errors (SystemError) - surfaced as 500
	ErrAllSourcesFailed = errors.New("all search sources failed")
	ErrNoSources        = errors.New("no search sources configured")
)

// IsValidationError reports whether err rejects a request before any datastore access
func IsValidationError(err error) bool {
	return errors.Is(err, ErrQueryTooShort) ||
		errors.Is(err, ErrQueryTooLong) ||
		errors.Is(err, ErrQueryInvalid)
}
