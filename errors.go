package rssfeed

import "github.com/jdziat/rssfeed/pkg/errors"

// ValidationError is returned by every Validate, Finalize and Build method.
// It names the offending field and wraps one of the sentinel causes below.
type ValidationError = errors.ValidationError

// ErrorCode categorises a ValidationError for metrics and logging.
type ErrorCode = errors.ErrorCode

// Sentinel causes. Use errors.Is to match them:
//
//	if errors.Is(err, rssfeed.ErrInvalidURL) { ... }
var (
	ErrInvalidURL      = errors.ErrInvalidURL
	ErrInvalidMimeType = errors.ErrInvalidMimeType
	ErrNegativeValue   = errors.ErrNegativeValue
	ErrOutOfRange      = errors.ErrOutOfRange
	ErrInvalidDate     = errors.ErrInvalidDate
	ErrMissingField    = errors.ErrMissingField
)

// AsValidationError extracts a *ValidationError from err's chain.
//
// Example:
//
//	if ve, ok := rssfeed.AsValidationError(err); ok {
//	    log.Printf("field %s: %s", ve.Field, ve.Message)
//	}
func AsValidationError(err error) (*ValidationError, bool) {
	return errors.AsValidationError(err)
}

// ErrorCodeOf returns the category of err, or "VALIDATION" when err carries
// no known cause.
func ErrorCodeOf(err error) ErrorCode {
	return errors.CodeOf(err)
}
