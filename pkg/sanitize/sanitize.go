// Package sanitize cleans the HTML carried in RSS descriptions before it is
// stored in a channel.
//
// The default policy keeps basic formatting, links and images with absolute
// http(s) URLs, and forces target="_blank" and rel="noopener noreferrer" on
// links. Scripts, styles, frames and event handler attributes are removed.
package sanitize

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer applies a bluemonday policy. A Sanitizer is safe for concurrent
// use once constructed.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a Sanitizer with the default description policy.
func New() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em", "b", "i",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowURLSchemeWithCustomPolicy("https", func(u *url.URL) bool {
		return u.Host != ""
	})

	return &Sanitizer{policy: p}
}

// Strict returns a Sanitizer that removes every tag and keeps only text.
func Strict() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns s with disallowed markup removed and surrounding
// whitespace trimmed. Sanitize is idempotent.
func (s *Sanitizer) Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return strings.TrimSpace(s.policy.Sanitize(html))
}
