package stringutil

import (
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jdziat/rssfeed/pkg/errors"
)

// StrToURL parses s as an absolute URL. A scheme and a host are required.
func StrToURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is not a valid URL: %v", s, err), errors.ErrInvalidURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is not an absolute URL", s), errors.ErrInvalidURL)
	}
	return u, nil
}

// Int64ToString returns the decimal form of n. Negative values are rejected
// because every RSS field stored this way is a length, port, count or size.
func Int64ToString(n int64) (string, error) {
	if n < 0 {
		return "", errors.NewValidationErrorWithCause("", fmt.Sprintf("%d cannot be a negative value", n), errors.ErrNegativeValue)
	}
	return strconv.FormatInt(n, 10), nil
}

// ParseInt64 parses the decimal text of a numeric RSS element.
func ParseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is not an integer", s), errors.ErrOutOfRange)
	}
	return n, nil
}

// dateLayouts covers the RFC 2822 date-time grammar: optional day of week,
// one or two digit day, optional seconds, numeric or named zone.
var dateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04 MST",
}

// ParseDate parses an RFC 2822 date as used by pubDate and lastBuildDate.
func ParseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is not an RFC 2822 date", s), errors.ErrInvalidDate)
}

// ValidateDate reports whether s follows the RFC 2822 grammar.
func ValidateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// FormatDate renders t the way RSS expects, e.g. "Sun, 13 Mar 2016 20:02:02 -0700".
func FormatDate(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// ValidateMimeType checks s against the media type grammar. Both a type and a
// subtype are required; parameters are allowed.
func ValidateMimeType(s string) error {
	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		return errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is not a valid MIME type: %v", s, err), errors.ErrInvalidMimeType)
	}
	if !strings.Contains(mediaType, "/") {
		return errors.NewValidationErrorWithCause("", fmt.Sprintf("%q is missing a subtype", s), errors.ErrInvalidMimeType)
	}
	return nil
}
