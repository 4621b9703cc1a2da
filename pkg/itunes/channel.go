package itunes

import (
	"fmt"
	"slices"

	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// ChannelExtension is the immutable set of iTunes elements of a channel.
type ChannelExtension struct {
	author      optional.Value[string]
	block       optional.Value[string]
	categories  []Category
	explicit    optional.Value[string]
	keywords    optional.Value[string]
	owner       optional.Value[Owner]
	subtitle    optional.Value[string]
	summary     optional.Value[string]
	image       optional.Value[string]
	complete    optional.Value[string]
	newFeedURL  optional.Value[string]
	podcastType optional.Value[string]
}

// Author returns <itunes:author>, if set.
func (e ChannelExtension) Author() (string, bool) { return e.author.Get() }

// Block returns <itunes:block>, if set.
func (e ChannelExtension) Block() (string, bool) { return e.block.Get() }

// Categories returns the top-level <itunes:category> elements in order.
func (e ChannelExtension) Categories() []Category {
	return cloneCategories(e.categories)
}

// Explicit returns <itunes:explicit>, if set.
func (e ChannelExtension) Explicit() (string, bool) { return e.explicit.Get() }

// Keywords returns <itunes:keywords>, if set.
func (e ChannelExtension) Keywords() (string, bool) { return e.keywords.Get() }

// Owner returns <itunes:owner>, if set.
func (e ChannelExtension) Owner() (Owner, bool) { return e.owner.Get() }

// Subtitle returns <itunes:subtitle>, if set.
func (e ChannelExtension) Subtitle() (string, bool) { return e.subtitle.Get() }

// Summary returns <itunes:summary>, if set.
func (e ChannelExtension) Summary() (string, bool) { return e.summary.Get() }

// Image returns the href of <itunes:image>, if set.
func (e ChannelExtension) Image() (string, bool) { return e.image.Get() }

// Complete returns <itunes:complete>, if set.
func (e ChannelExtension) Complete() (string, bool) { return e.complete.Get() }

// NewFeedURL returns <itunes:new-feed-url>, if set.
func (e ChannelExtension) NewFeedURL() (string, bool) { return e.newFeedURL.Get() }

// Type returns <itunes:type> ("episodic" or "serial"), if set.
func (e ChannelExtension) Type() (string, bool) { return e.podcastType.Get() }

// ChannelExtensionBuilder configures a ChannelExtension.
type ChannelExtensionBuilder struct {
	ext ChannelExtension
}

// NewChannelExtensionBuilder returns a builder with every field unset.
func NewChannelExtensionBuilder() *ChannelExtensionBuilder {
	return &ChannelExtensionBuilder{}
}

// Author sets <itunes:author>.
func (b *ChannelExtensionBuilder) Author(author string) *ChannelExtensionBuilder {
	b.ext.author = optional.Some(author)
	return b
}

// Block sets <itunes:block>.
func (b *ChannelExtensionBuilder) Block(block string) *ChannelExtensionBuilder {
	b.ext.block = optional.Some(block)
	return b
}

// Categories replaces the top-level categories.
func (b *ChannelExtensionBuilder) Categories(categories []Category) *ChannelExtensionBuilder {
	b.ext.categories = slices.Clone(categories)
	return b
}

// AddCategory appends a top-level category.
func (b *ChannelExtensionBuilder) AddCategory(category Category) *ChannelExtensionBuilder {
	b.ext.categories = append(b.ext.categories, category)
	return b
}

// Explicit sets <itunes:explicit>.
func (b *ChannelExtensionBuilder) Explicit(explicit string) *ChannelExtensionBuilder {
	b.ext.explicit = optional.Some(explicit)
	return b
}

// Keywords sets <itunes:keywords>.
func (b *ChannelExtensionBuilder) Keywords(keywords string) *ChannelExtensionBuilder {
	b.ext.keywords = optional.Some(keywords)
	return b
}

// Owner sets <itunes:owner>.
func (b *ChannelExtensionBuilder) Owner(owner Owner) *ChannelExtensionBuilder {
	b.ext.owner = optional.Some(owner)
	return b
}

// Subtitle sets <itunes:subtitle>.
func (b *ChannelExtensionBuilder) Subtitle(subtitle string) *ChannelExtensionBuilder {
	b.ext.subtitle = optional.Some(subtitle)
	return b
}

// Summary sets <itunes:summary>.
func (b *ChannelExtensionBuilder) Summary(summary string) *ChannelExtensionBuilder {
	b.ext.summary = optional.Some(summary)
	return b
}

// Image sets the href of <itunes:image>.
func (b *ChannelExtensionBuilder) Image(href string) *ChannelExtensionBuilder {
	b.ext.image = optional.Some(href)
	return b
}

// Complete sets <itunes:complete>.
func (b *ChannelExtensionBuilder) Complete(complete string) *ChannelExtensionBuilder {
	b.ext.complete = optional.Some(complete)
	return b
}

// NewFeedURL sets <itunes:new-feed-url>.
func (b *ChannelExtensionBuilder) NewFeedURL(url string) *ChannelExtensionBuilder {
	b.ext.newFeedURL = optional.Some(url)
	return b
}

// Type sets <itunes:type>.
func (b *ChannelExtensionBuilder) Type(podcastType string) *ChannelExtensionBuilder {
	b.ext.podcastType = optional.Some(podcastType)
	return b
}

// Validate checks the URL-typed fields and every category tree.
func (b *ChannelExtensionBuilder) Validate() (*ChannelExtensionBuilder, error) {
	if err := validate.OptionalURL("image", b.ext.image); err != nil {
		return nil, err
	}
	if err := validate.OptionalURL("new-feed-url", b.ext.newFeedURL); err != nil {
		return nil, err
	}
	for i, c := range b.ext.categories {
		if err := validate.Nested(fmt.Sprintf("category[%d]", i), checkCategory(c)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Finalize constructs the ChannelExtension.
func (b *ChannelExtensionBuilder) Finalize() (ChannelExtension, error) {
	ext := b.ext
	ext.categories = cloneCategories(b.ext.categories)
	return ext, nil
}

// Build validates the builder and then finalizes it.
func (b *ChannelExtensionBuilder) Build() (ChannelExtension, error) {
	if _, err := b.Validate(); err != nil {
		return ChannelExtension{}, err
	}
	return b.Finalize()
}

func cloneCategories(categories []Category) []Category {
	if categories == nil {
		return []Category{}
	}
	return slices.Clone(categories)
}
