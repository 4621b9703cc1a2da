package rssfeed

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// Category is an immutable <category> element of a channel or item.
type Category struct {
	name   string
	domain optional.Value[string]
}

// Name returns the category text.
func (c Category) Name() string {
	return c.name
}

// Domain returns the taxonomy the category belongs to, if any.
func (c Category) Domain() (string, bool) {
	return c.domain.Get()
}

// CategoryBuilder configures a Category.
//
// Example:
//
//	category, err := rssfeed.NewCategoryBuilder().
//	    Name("Podcast").
//	    Domain("http://jupiterbroadcasting.com").
//	    Build()
type CategoryBuilder struct {
	name   string
	domain optional.Value[string]
}

// NewCategoryBuilder returns a builder with every field unset.
func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{}
}

// Name sets the category text.
func (b *CategoryBuilder) Name(name string) *CategoryBuilder {
	b.name = name
	return b
}

// Domain sets the category domain.
func (b *CategoryBuilder) Domain(domain string) *CategoryBuilder {
	b.domain = optional.Some(domain)
	return b
}

// Validate checks that the name is set and the domain, when present, is a URL.
func (b *CategoryBuilder) Validate() (*CategoryBuilder, error) {
	if err := validate.Required("name", b.name); err != nil {
		return nil, err
	}
	if err := validate.OptionalURL("domain", b.domain); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the Category.
func (b *CategoryBuilder) Finalize() (Category, error) {
	return Category{
		name:   b.name,
		domain: b.domain,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *CategoryBuilder) Build() (Category, error) {
	if _, err := b.Validate(); err != nil {
		return Category{}, err
	}
	return b.Finalize()
}
