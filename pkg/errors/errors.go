package errors

import "errors"

// ErrorCode represents a category of validation failure for metrics and logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeInvalidURL      ErrorCode = "INVALID_URL"
	ErrCodeInvalidMimeType ErrorCode = "INVALID_MIME_TYPE"
	ErrCodeNegativeValue   ErrorCode = "NEGATIVE_VALUE"
	ErrCodeOutOfRange      ErrorCode = "OUT_OF_RANGE"
	ErrCodeInvalidDate     ErrorCode = "INVALID_DATE"
	ErrCodeMissingField    ErrorCode = "MISSING_FIELD"
	ErrCodeValidation      ErrorCode = "VALIDATION"
)

// Sentinel causes wrapped by ValidationError.
var (
	ErrInvalidURL      = errors.New("rssfeed: invalid url")
	ErrInvalidMimeType = errors.New("rssfeed: invalid mime type")
	ErrNegativeValue   = errors.New("rssfeed: negative value")
	ErrOutOfRange      = errors.New("rssfeed: value out of range")
	ErrInvalidDate     = errors.New("rssfeed: invalid date")
	ErrMissingField    = errors.New("rssfeed: missing required field")
)

var codes = map[error]ErrorCode{
	ErrInvalidURL:      ErrCodeInvalidURL,
	ErrInvalidMimeType: ErrCodeInvalidMimeType,
	ErrNegativeValue:   ErrCodeNegativeValue,
	ErrOutOfRange:      ErrCodeOutOfRange,
	ErrInvalidDate:     ErrCodeInvalidDate,
	ErrMissingField:    ErrCodeMissingField,
}

// CodeOf returns the ErrorCode of the first sentinel found in err's chain.
// Errors that carry none of the sentinels map to ErrCodeValidation.
func CodeOf(err error) ErrorCode {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ErrCodeValidation
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
