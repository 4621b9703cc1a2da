// Package validate holds the field-level checks shared by the rssfeed
// builders. Each check returns nil or a *errors.ValidationError naming field.
package validate

import (
	"fmt"
	"slices"

	"github.com/jdziat/rssfeed/pkg/errors"
	"github.com/jdziat/rssfeed/pkg/optional"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

// Required validates that a required field is not empty.
func Required(field, value string) error {
	if value == "" {
		return errors.NewValidationErrorWithCause(field, "is required", errors.ErrMissingField)
	}
	return nil
}

// URL validates that value is an absolute URL.
func URL(field, value string) error {
	_, err := stringutil.StrToURL(value)
	return withField(field, err)
}

// OptionalURL validates a URL only when it is present.
func OptionalURL(field string, v optional.Value[string]) error {
	if s, ok := v.Get(); ok {
		return URL(field, s)
	}
	return nil
}

// NonNegative validates that a numeric field is not negative.
func NonNegative(field string, value int64) error {
	if value < 0 {
		return errors.NewValidationErrorWithCause(field, fmt.Sprintf("%d cannot be a negative value", value), errors.ErrNegativeValue)
	}
	return nil
}

// Range validates that a numeric field lies within [min, max]. With a
// non-negative min, negative values are reported as ErrNegativeValue.
func Range(field string, value, min, max int64) error {
	if value < 0 && min >= 0 {
		return NonNegative(field, value)
	}
	if value < min || value > max {
		return errors.NewValidationErrorWithCause(field, fmt.Sprintf("%d must be between %d and %d", value, min, max), errors.ErrOutOfRange)
	}
	return nil
}

// Date validates an RFC 2822 date.
func Date(field, value string) error {
	return withField(field, stringutil.ValidateDate(value))
}

// OptionalDate validates a date only when it is present.
func OptionalDate(field string, v optional.Value[string]) error {
	if s, ok := v.Get(); ok {
		return Date(field, s)
	}
	return nil
}

// MimeType validates a media type such as "audio/mpeg".
func MimeType(field, value string) error {
	return withField(field, stringutil.ValidateMimeType(value))
}

// OneOf validates that value is exactly one of allowed.
func OneOf(field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return errors.NewValidationErrorWithCause(field, fmt.Sprintf("%q is not one of %v", value, allowed), errors.ErrOutOfRange)
	}
	return nil
}

// Nested prefixes the field of a validation error with parent. Any other
// error is wrapped in a validation error for parent. A nil error stays nil.
func Nested(parent string, err error) error {
	return withField(parent, err)
}

func withField(field string, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := errors.AsValidationError(err); ok {
		return ve.WithField(field)
	}
	return errors.NewValidationErrorWithCause(field, err.Error(), err)
}
