package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// Source is an immutable <source> element naming the channel an item came from.
type Source struct {
	url   string
	title optional.Value[string]
}

// URL returns the address of the originating feed.
func (s Source) URL() string {
	return s.url
}

// Title returns the name of the originating channel, if any.
func (s Source) Title() (string, bool) {
	return s.title.Get()
}

// SourceBuilder configures a Source.
type SourceBuilder struct {
	url   string
	title optional.Value[string]
}

// NewSourceBuilder returns a builder with every field unset.
func NewSourceBuilder() *SourceBuilder {
	return &SourceBuilder{}
}

// URL sets the source url.
func (b *SourceBuilder) URL(url string) *SourceBuilder {
	b.url = url
	return b
}

// Title sets the source title.
func (b *SourceBuilder) Title(title string) *SourceBuilder {
	b.title = optional.Some(title)
	return b
}

// Validate checks that the url is a valid URL.
func (b *SourceBuilder) Validate() (*SourceBuilder, error) {
	if err := validate.URL("url", b.url); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the Source.
func (b *SourceBuilder) Finalize() (Source, error) {
	return Source{
		url:   b.url,
		title: b.title,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *SourceBuilder) Build() (Source, error) {
	if _, err := b.Validate(); err != nil {
		return Source{}, err
	}
	return b.Finalize()
}
