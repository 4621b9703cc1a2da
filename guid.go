package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// Guid is an immutable <guid> element uniquely identifying an item.
type Guid struct {
	value       string
	isPermalink bool
}

// Value returns the identifier.
func (g Guid) Value() string {
	return g.value
}

// IsPermalink reports whether the value is a URL pointing at the item.
func (g Guid) IsPermalink() bool {
	return g.isPermalink
}

// GuidBuilder configures a Guid. IsPermalink defaults to true, as in RSS 2.0.
type GuidBuilder struct {
	value       string
	isPermalink optional.Value[bool]
}

// NewGuidBuilder returns a builder with every field unset.
func NewGuidBuilder() *GuidBuilder {
	return &GuidBuilder{}
}

// Value sets the identifier.
func (b *GuidBuilder) Value(value string) *GuidBuilder {
	b.value = value
	return b
}

// IsPermalink sets whether the identifier is a permanent link.
func (b *GuidBuilder) IsPermalink(isPermalink bool) *GuidBuilder {
	b.isPermalink = optional.Some(isPermalink)
	return b
}

// Validate checks that a value is set.
func (b *GuidBuilder) Validate() (*GuidBuilder, error) {
	if err := validate.Required("guid", b.value); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the Guid.
func (b *GuidBuilder) Finalize() (Guid, error) {
	return Guid{
		value:       b.value,
		isPermalink: b.isPermalink.OrElse(true),
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *GuidBuilder) Build() (Guid, error) {
	if _, err := b.Validate(); err != nil {
		return Guid{}, err
	}
	return b.Finalize()
}
