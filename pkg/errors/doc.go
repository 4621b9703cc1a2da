// Package errors provides the error types used by the rssfeed builders.
//
// Every builder failure surfaces as a *ValidationError naming the field that
// violated a constraint together with a human readable message:
//
//	rssfeed: validation error for field "link": "not a url" is not a valid URL
//
// The underlying cause is one of the sentinel errors below and can be matched
// with the standard library:
//
//	if stdErrors.Is(err, errors.ErrInvalidURL) {
//	    // fix the link and try again
//	}
//
// # Sentinel Errors
//
//   - ErrInvalidURL: a field requiring URL syntax failed to parse
//   - ErrInvalidMimeType: an enclosure type is not a valid media type
//   - ErrNegativeValue: a non-negative numeric field received a negative value
//   - ErrOutOfRange: a value lies outside its allowed range or enumeration
//   - ErrInvalidDate: a date does not follow the RFC 2822 grammar
//   - ErrMissingField: a required field is empty
//
// Validation is fail-fast: the first violated constraint is returned and no
// aggregation takes place.
package errors
