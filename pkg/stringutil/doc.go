// Package stringutil validates and converts the primitive string
// representations used by RSS: URLs, non-negative integers stored as text,
// RFC 2822 dates and MIME media types.
//
// Every failure is returned as a *errors.ValidationError wrapping one of the
// sentinel causes from pkg/errors, with the field name left empty. Callers
// attach the field they were checking with WithField or by constructing
// their own error.
package stringutil
