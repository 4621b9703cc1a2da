package itunes

import (
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// ItemExtension is the immutable set of iTunes elements of an item (an episode).
type ItemExtension struct {
	author            optional.Value[string]
	block             optional.Value[string]
	duration          optional.Value[string]
	explicit          optional.Value[string]
	keywords          optional.Value[string]
	subtitle          optional.Value[string]
	summary           optional.Value[string]
	image             optional.Value[string]
	isClosedCaptioned optional.Value[string]
	episode           optional.Value[string]
	season            optional.Value[string]
	order             optional.Value[string]
	episodeType       optional.Value[string]
}

// Author returns <itunes:author>, if set.
func (e ItemExtension) Author() (string, bool) { return e.author.Get() }

// Block returns <itunes:block>, if set.
func (e ItemExtension) Block() (string, bool) { return e.block.Get() }

// Duration returns <itunes:duration>, if set.
func (e ItemExtension) Duration() (string, bool) { return e.duration.Get() }

// Explicit returns <itunes:explicit>, if set.
func (e ItemExtension) Explicit() (string, bool) { return e.explicit.Get() }

// Keywords returns <itunes:keywords>, if set.
func (e ItemExtension) Keywords() (string, bool) { return e.keywords.Get() }

// Subtitle returns <itunes:subtitle>, if set.
func (e ItemExtension) Subtitle() (string, bool) { return e.subtitle.Get() }

// Summary returns <itunes:summary>, if set.
func (e ItemExtension) Summary() (string, bool) { return e.summary.Get() }

// Image returns the href of <itunes:image>, if set.
func (e ItemExtension) Image() (string, bool) { return e.image.Get() }

// IsClosedCaptioned returns <itunes:isClosedCaptioned>, if set.
func (e ItemExtension) IsClosedCaptioned() (string, bool) { return e.isClosedCaptioned.Get() }

// Episode returns <itunes:episode>, if set.
func (e ItemExtension) Episode() (string, bool) { return e.episode.Get() }

// Season returns <itunes:season>, if set.
func (e ItemExtension) Season() (string, bool) { return e.season.Get() }

// Order returns <itunes:order>, if set.
func (e ItemExtension) Order() (string, bool) { return e.order.Get() }

// EpisodeType returns <itunes:episodeType>, if set.
func (e ItemExtension) EpisodeType() (string, bool) { return e.episodeType.Get() }

// ItemExtensionBuilder configures an ItemExtension.
type ItemExtensionBuilder struct {
	ext ItemExtension
}

// NewItemExtensionBuilder returns a builder with every field unset.
func NewItemExtensionBuilder() *ItemExtensionBuilder {
	return &ItemExtensionBuilder{}
}

// Author sets <itunes:author>.
func (b *ItemExtensionBuilder) Author(author string) *ItemExtensionBuilder {
	b.ext.author = optional.Some(author)
	return b
}

// Block sets <itunes:block>.
func (b *ItemExtensionBuilder) Block(block string) *ItemExtensionBuilder {
	b.ext.block = optional.Some(block)
	return b
}

// Duration sets <itunes:duration>.
func (b *ItemExtensionBuilder) Duration(duration string) *ItemExtensionBuilder {
	b.ext.duration = optional.Some(duration)
	return b
}

// Explicit sets <itunes:explicit>.
func (b *ItemExtensionBuilder) Explicit(explicit string) *ItemExtensionBuilder {
	b.ext.explicit = optional.Some(explicit)
	return b
}

// Keywords sets <itunes:keywords>.
func (b *ItemExtensionBuilder) Keywords(keywords string) *ItemExtensionBuilder {
	b.ext.keywords = optional.Some(keywords)
	return b
}

// Subtitle sets <itunes:subtitle>.
func (b *ItemExtensionBuilder) Subtitle(subtitle string) *ItemExtensionBuilder {
	b.ext.subtitle = optional.Some(subtitle)
	return b
}

// Summary sets <itunes:summary>.
func (b *ItemExtensionBuilder) Summary(summary string) *ItemExtensionBuilder {
	b.ext.summary = optional.Some(summary)
	return b
}

// Image sets the href of <itunes:image>.
func (b *ItemExtensionBuilder) Image(href string) *ItemExtensionBuilder {
	b.ext.image = optional.Some(href)
	return b
}

// IsClosedCaptioned sets <itunes:isClosedCaptioned>.
func (b *ItemExtensionBuilder) IsClosedCaptioned(captioned string) *ItemExtensionBuilder {
	b.ext.isClosedCaptioned = optional.Some(captioned)
	return b
}

// Episode sets <itunes:episode>.
func (b *ItemExtensionBuilder) Episode(episode string) *ItemExtensionBuilder {
	b.ext.episode = optional.Some(episode)
	return b
}

// Season sets <itunes:season>.
func (b *ItemExtensionBuilder) Season(season string) *ItemExtensionBuilder {
	b.ext.season = optional.Some(season)
	return b
}

// Order sets <itunes:order>.
func (b *ItemExtensionBuilder) Order(order string) *ItemExtensionBuilder {
	b.ext.order = optional.Some(order)
	return b
}

// EpisodeType sets <itunes:episodeType>.
func (b *ItemExtensionBuilder) EpisodeType(episodeType string) *ItemExtensionBuilder {
	b.ext.episodeType = optional.Some(episodeType)
	return b
}

// Validate checks that the image, when present, is a URL.
func (b *ItemExtensionBuilder) Validate() (*ItemExtensionBuilder, error) {
	if err := validate.OptionalURL("image", b.ext.image); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the ItemExtension.
func (b *ItemExtensionBuilder) Finalize() (ItemExtension, error) {
	return b.ext, nil
}

// Build validates the builder and then finalizes it.
func (b *ItemExtensionBuilder) Build() (ItemExtension, error) {
	if _, err := b.Validate(); err != nil {
		return ItemExtension{}, err
	}
	return b.Finalize()
}
