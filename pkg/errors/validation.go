package errors

import "fmt"

// ValidationError reports the first constraint a builder found violated.
type ValidationError struct {
	Field   string
	Message string
	Err     error // Underlying cause, one of the sentinel errors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("rssfeed: validation error for field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns the category of the failure.
func (e *ValidationError) Code() ErrorCode {
	if e.Err == nil {
		return ErrCodeValidation
	}
	return CodeOf(e.Err)
}

// WithField returns a copy of e whose field name is prefixed by parent.
// Composite builders use it to report nested failures such as "image.url".
func (e *ValidationError) WithField(parent string) *ValidationError {
	field := parent
	if e.Field != "" {
		field = parent + "." + e.Field
	}
	return &ValidationError{Field: field, Message: e.Message, Err: e.Err}
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewValidationErrorWithCause creates a new validation error with an underlying cause.
func NewValidationErrorWithCause(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     cause,
	}
}
