package rssfeed

import (
	"slices"

	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/errors"
	"github.com/jdziat/rssfeed/pkg/itunes"
	"github.com/jdziat/rssfeed/pkg/optional"
)

// Item is an immutable <item> element of a channel.
type Item struct {
	title       optional.Value[string]
	link        optional.Value[string]
	description optional.Value[string]
	author      optional.Value[string]
	categories  []Category
	comments    optional.Value[string]
	enclosure   optional.Value[Enclosure]
	guid        optional.Value[Guid]
	pubDate     optional.Value[string]
	source      optional.Value[Source]
	itunesExt   optional.Value[itunes.ItemExtension]
}

// Title returns the item title, if set.
func (i Item) Title() (string, bool) {
	return i.title.Get()
}

// Link returns the URL of the item, if set.
func (i Item) Link() (string, bool) {
	return i.link.Get()
}

// Description returns the item synopsis, if set.
func (i Item) Description() (string, bool) {
	return i.description.Get()
}

// Author returns the email address of the author, if set.
func (i Item) Author() (string, bool) {
	return i.author.Get()
}

// Categories returns the item categories in order. The result is never nil.
func (i Item) Categories() []Category {
	return cloneSlice(i.categories)
}

// Comments returns the URL of the comments page, if set.
func (i Item) Comments() (string, bool) {
	return i.comments.Get()
}

// Enclosure returns the attached media object, if any.
func (i Item) Enclosure() (Enclosure, bool) {
	return i.enclosure.Get()
}

// Guid returns the unique identifier of the item, if any.
func (i Item) Guid() (Guid, bool) {
	return i.guid.Get()
}

// PubDate returns the publication date as written, if set.
func (i Item) PubDate() (string, bool) {
	return i.pubDate.Get()
}

// Source returns the channel the item came from, if any.
func (i Item) Source() (Source, bool) {
	return i.source.Get()
}

// ITunesExt returns the iTunes episode elements, if any.
func (i Item) ITunesExt() (itunes.ItemExtension, bool) {
	return i.itunesExt.Get()
}

// ItemBuilder configures an Item. Leaf elements such as the enclosure or guid
// are supplied already finalized.
//
// ItemBuilder is NOT safe for concurrent use.
//
// Example:
//
//	enclosure, _ := rssfeed.NewEnclosureBuilder().
//	    URL("http://example.com/ep1.mp3").
//	    Length(1024).
//	    MimeType("audio/mpeg").
//	    Build()
//
//	item, err := rssfeed.NewItemBuilder().
//	    Title("Episode 1").
//	    Link("http://example.com/ep1").
//	    Enclosure(enclosure).
//	    PubDate("Sun, 13 Mar 2016 20:02:02 -0700").
//	    Build()
type ItemBuilder struct {
	title       optional.Value[string]
	link        optional.Value[string]
	description optional.Value[string]
	author      optional.Value[string]
	categories  []Category
	comments    optional.Value[string]
	enclosure   optional.Value[Enclosure]
	guid        optional.Value[Guid]
	pubDate     optional.Value[string]
	source      optional.Value[Source]
	itunesExt   optional.Value[itunes.ItemExtension]
}

// NewItemBuilder returns a builder with every field unset.
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{}
}

// Title sets the item title.
func (b *ItemBuilder) Title(title string) *ItemBuilder {
	b.title = optional.Some(title)
	return b
}

// Link sets the item link.
func (b *ItemBuilder) Link(link string) *ItemBuilder {
	b.link = optional.Some(link)
	return b
}

// Description sets the item description.
func (b *ItemBuilder) Description(description string) *ItemBuilder {
	b.description = optional.Some(description)
	return b
}

// Author sets the item author.
func (b *ItemBuilder) Author(author string) *ItemBuilder {
	b.author = optional.Some(author)
	return b
}

// Categories replaces the item categories.
func (b *ItemBuilder) Categories(categories []Category) *ItemBuilder {
	b.categories = slices.Clone(categories)
	return b
}

// AddCategory appends a category.
func (b *ItemBuilder) AddCategory(category Category) *ItemBuilder {
	b.categories = append(b.categories, category)
	return b
}

// Comments sets the comments URL.
func (b *ItemBuilder) Comments(comments string) *ItemBuilder {
	b.comments = optional.Some(comments)
	return b
}

// Enclosure sets the attached media object.
func (b *ItemBuilder) Enclosure(enclosure Enclosure) *ItemBuilder {
	b.enclosure = optional.Some(enclosure)
	return b
}

// Guid sets the unique identifier.
func (b *ItemBuilder) Guid(guid Guid) *ItemBuilder {
	b.guid = optional.Some(guid)
	return b
}

// PubDate sets the publication date. It is stored as written and checked
// against RFC 2822 by Validate.
func (b *ItemBuilder) PubDate(pubDate string) *ItemBuilder {
	b.pubDate = optional.Some(pubDate)
	return b
}

// Source sets the originating channel.
func (b *ItemBuilder) Source(source Source) *ItemBuilder {
	b.source = optional.Some(source)
	return b
}

// ITunesExt sets the iTunes episode elements.
func (b *ItemBuilder) ITunesExt(ext itunes.ItemExtension) *ItemBuilder {
	b.itunesExt = optional.Some(ext)
	return b
}

// Validate checks that a non-empty title or description is present, that link
// and comments are URLs and that the publication date is an RFC 2822 date.
func (b *ItemBuilder) Validate() (*ItemBuilder, error) {
	if b.title.OrElse("") == "" && b.description.OrElse("") == "" {
		return nil, errors.NewValidationErrorWithCause("title", "either title or description must be set", errors.ErrMissingField)
	}
	if err := validate.OptionalURL("link", b.link); err != nil {
		return nil, err
	}
	if err := validate.OptionalURL("comments", b.comments); err != nil {
		return nil, err
	}
	if err := validate.OptionalDate("pubDate", b.pubDate); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize constructs the Item. It does not repeat the checks of Validate.
func (b *ItemBuilder) Finalize() (Item, error) {
	return Item{
		title:       b.title,
		link:        b.link,
		description: b.description,
		author:      b.author,
		categories:  cloneSlice(b.categories),
		comments:    b.comments,
		enclosure:   b.enclosure,
		guid:        b.guid,
		pubDate:     b.pubDate,
		source:      b.source,
		itunesExt:   b.itunesExt,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *ItemBuilder) Build() (Item, error) {
	if _, err := b.Validate(); err != nil {
		return Item{}, err
	}
	return b.Finalize()
}

// cloneSlice copies s, returning an empty non-nil slice for nil input.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
