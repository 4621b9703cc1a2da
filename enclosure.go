package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

// Enclosure is an immutable <enclosure> element: a media object attached to
// an item.
type Enclosure struct {
	url      string
	length   string
	mimeType string
}

// URL returns where the media object is located.
func (e Enclosure) URL() string {
	return e.url
}

// Length returns the size in bytes, in decimal form.
func (e Enclosure) Length() string {
	return e.length
}

// MimeType returns the media type, e.g. "audio/mpeg".
func (e Enclosure) MimeType() string {
	return e.mimeType
}

// EnclosureBuilder configures an Enclosure.
//
// Example:
//
//	enclosure, err := rssfeed.NewEnclosureBuilder().
//	    URL("http://www.podtrac.com/pts/redirect.ogg/traffic.libsyn.com/jnite/linuxactionshowep408.ogg").
//	    Length(70772893).
//	    MimeType("audio/ogg").
//	    Build()
type EnclosureBuilder struct {
	url      string
	length   int64
	mimeType string
}

// NewEnclosureBuilder returns a builder with every field unset.
func NewEnclosureBuilder() *EnclosureBuilder {
	return &EnclosureBuilder{}
}

// URL sets the enclosure url.
func (b *EnclosureBuilder) URL(url string) *EnclosureBuilder {
	b.url = url
	return b
}

// Length sets the enclosure length in bytes.
func (b *EnclosureBuilder) Length(length int64) *EnclosureBuilder {
	b.length = length
	return b
}

// MimeType sets the enclosure media type.
func (b *EnclosureBuilder) MimeType(mimeType string) *EnclosureBuilder {
	b.mimeType = mimeType
	return b
}

// Validate checks the url, the media type and that the length is not negative.
func (b *EnclosureBuilder) Validate() (*EnclosureBuilder, error) {
	if err := validate.URL("url", b.url); err != nil {
		return nil, err
	}
	if err := validate.MimeType("type", b.mimeType); err != nil {
		return nil, err
	}
	if err := validate.NonNegative("length", b.length); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize converts the length to text and constructs the Enclosure. A
// negative length fails here even when Validate was never called.
func (b *EnclosureBuilder) Finalize() (Enclosure, error) {
	length, err := stringutil.Int64ToString(b.length)
	if err != nil {
		return Enclosure{}, validate.Nested("length", err)
	}

	return Enclosure{
		url:      b.url,
		length:   length,
		mimeType: b.mimeType,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *EnclosureBuilder) Build() (Enclosure, error) {
	if _, err := b.Validate(); err != nil {
		return Enclosure{}, err
	}
	return b.Finalize()
}
