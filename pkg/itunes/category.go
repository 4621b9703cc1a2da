package itunes

import (
	"github.com/jdziat/rssfeed/internal/validate"
)

// Category is an immutable <itunes:category>. It owns at most one
// subcategory, which is itself a full Category.
type Category struct {
	text        string
	subcategory *Category
}

// Text returns the category name.
func (c Category) Text() string {
	return c.text
}

// Subcategory returns the nested category, if any.
func (c Category) Subcategory() (Category, bool) {
	if c.subcategory == nil {
		return Category{}, false
	}
	return *c.subcategory, true
}

// CategoryBuilder configures a Category.
type CategoryBuilder struct {
	text        string
	subcategory *Category
}

// NewCategoryBuilder returns a builder with every field unset.
func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{}
}

// Text sets the category name.
func (b *CategoryBuilder) Text(text string) *CategoryBuilder {
	b.text = text
	return b
}

// Subcategory sets the nested category. The builder keeps its own copy.
func (b *CategoryBuilder) Subcategory(sub Category) *CategoryBuilder {
	b.subcategory = &sub
	return b
}

// Validate checks that the text, and the text of every nested subcategory,
// is non-empty.
func (b *CategoryBuilder) Validate() (*CategoryBuilder, error) {
	if err := validate.Required("text", b.text); err != nil {
		return nil, err
	}
	if b.subcategory != nil {
		if err := validate.Nested("subcategory", checkCategory(*b.subcategory)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Finalize constructs the Category.
func (b *CategoryBuilder) Finalize() (Category, error) {
	c := Category{text: b.text}
	if b.subcategory != nil {
		sub := *b.subcategory
		c.subcategory = &sub
	}
	return c, nil
}

// Build validates the builder and then finalizes it.
func (b *CategoryBuilder) Build() (Category, error) {
	if _, err := b.Validate(); err != nil {
		return Category{}, err
	}
	return b.Finalize()
}

// checkCategory re-checks a finalized category, which may never have been
// validated.
func checkCategory(c Category) error {
	if err := validate.Required("text", c.text); err != nil {
		return err
	}
	if c.subcategory != nil {
		return validate.Nested("subcategory", checkCategory(*c.subcategory))
	}
	return nil
}
