package rssfeed

import (
	"fmt"
	"slices"

	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/itunes"
	"github.com/jdziat/rssfeed/pkg/optional"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

// Bounds of <skipHours> entries.
const (
	MinSkipHour = 0
	MaxSkipHour = 23
)

// Weekdays lists the values accepted in <skipDays>. Matching is exact and
// case-sensitive.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether day is one of Weekdays.
func IsWeekday(day string) bool {
	return slices.Contains(Weekdays, day)
}

// Channel is an immutable RSS <channel>, the root of a feed.
type Channel struct {
	title          string
	link           string
	description    string
	language       optional.Value[string]
	copyright      optional.Value[string]
	managingEditor optional.Value[string]
	webmaster      optional.Value[string]
	pubDate        optional.Value[string]
	lastBuildDate  optional.Value[string]
	categories     []Category
	generator      optional.Value[string]
	docs           optional.Value[string]
	cloud          optional.Value[Cloud]
	ttl            optional.Value[string]
	image          optional.Value[Image]
	rating         optional.Value[string]
	textInput      optional.Value[TextInput]
	skipHours      []string
	skipDays       []string
	items          []Item
	itunesExt      optional.Value[itunes.ChannelExtension]
}

// Title returns the channel name.
func (c Channel) Title() string {
	return c.title
}

// Link returns the URL of the website the channel belongs to.
func (c Channel) Link() string {
	return c.link
}

// Description returns the channel synopsis.
func (c Channel) Description() string {
	return c.description
}

// Language returns the channel language, e.g. "en-us", if set.
func (c Channel) Language() (string, bool) {
	return c.language.Get()
}

// Copyright returns the copyright notice, if set.
func (c Channel) Copyright() (string, bool) {
	return c.copyright.Get()
}

// ManagingEditor returns the editorial contact, if set.
func (c Channel) ManagingEditor() (string, bool) {
	return c.managingEditor.Get()
}

// Webmaster returns the technical contact, if set.
func (c Channel) Webmaster() (string, bool) {
	return c.webmaster.Get()
}

// PubDate returns the publication date as written, if set.
func (c Channel) PubDate() (string, bool) {
	return c.pubDate.Get()
}

// LastBuildDate returns the last content change date as written, if set.
func (c Channel) LastBuildDate() (string, bool) {
	return c.lastBuildDate.Get()
}

// Categories returns the channel categories in order. The result is never nil.
func (c Channel) Categories() []Category {
	return cloneSlice(c.categories)
}

// Generator returns the program that produced the feed, if set.
func (c Channel) Generator() (string, bool) {
	return c.generator.Get()
}

// Docs returns the URL of the format documentation, if set.
func (c Channel) Docs() (string, bool) {
	return c.docs.Get()
}

// Cloud returns the rssCloud registration endpoint, if any.
func (c Channel) Cloud() (Cloud, bool) {
	return c.cloud.Get()
}

// TTL returns the number of minutes the channel may be cached, in decimal
// form, if set.
func (c Channel) TTL() (string, bool) {
	return c.ttl.Get()
}

// Image returns the channel image, if any.
func (c Channel) Image() (Image, bool) {
	return c.image.Get()
}

// Rating returns the PICS rating of the channel, if set.
func (c Channel) Rating() (string, bool) {
	return c.rating.Get()
}

// TextInput returns the channel text input box, if any.
func (c Channel) TextInput() (TextInput, bool) {
	return c.textInput.Get()
}

// SkipHours returns the hours, in decimal form, during which aggregators may
// skip the channel. The result is never nil.
func (c Channel) SkipHours() []string {
	return cloneSlice(c.skipHours)
}

// SkipDays returns the days during which aggregators may skip the channel.
// The result is never nil.
func (c Channel) SkipDays() []string {
	return cloneSlice(c.skipDays)
}

// Items returns the channel items in order. The result is never nil.
func (c Channel) Items() []Item {
	return cloneSlice(c.items)
}

// ITunesExt returns the iTunes podcast elements, if any.
func (c Channel) ITunesExt() (itunes.ChannelExtension, bool) {
	return c.itunesExt.Get()
}

// ChannelBuilder configures a Channel. Items, categories and the other
// composite elements are supplied already finalized.
//
// ChannelBuilder is NOT safe for concurrent use. Each builder instance should
// be created, configured, and finalized within a single goroutine.
//
// Example:
//
//	channel, err := rssfeed.NewChannelBuilder().
//	    Title("The Linux Action Show! OGG").
//	    Link("http://www.jupiterbroadcasting.com/").
//	    Description("Ogg Vorbis audio versions of The Linux Action Show!").
//	    TTL(60).
//	    SkipDays([]string{"Saturday", "Sunday"}).
//	    Items(items).
//	    Build()
type ChannelBuilder struct {
	title          string
	link           string
	description    string
	language       optional.Value[string]
	copyright      optional.Value[string]
	managingEditor optional.Value[string]
	webmaster      optional.Value[string]
	pubDate        optional.Value[string]
	lastBuildDate  optional.Value[string]
	categories     []Category
	generator      optional.Value[string]
	docs           optional.Value[string]
	cloud          optional.Value[Cloud]
	ttl            optional.Value[int64]
	image          optional.Value[Image]
	rating         optional.Value[string]
	textInput      optional.Value[TextInput]
	skipHours      []int64
	skipDays       []string
	items          []Item
	itunesExt      optional.Value[itunes.ChannelExtension]
}

// NewChannelBuilder returns a builder with every field unset.
func NewChannelBuilder() *ChannelBuilder {
	return &ChannelBuilder{}
}

// Title sets the channel title.
func (b *ChannelBuilder) Title(title string) *ChannelBuilder {
	b.title = title
	return b
}

// Link sets the channel link.
func (b *ChannelBuilder) Link(link string) *ChannelBuilder {
	b.link = link
	return b
}

// Description sets the channel description.
func (b *ChannelBuilder) Description(description string) *ChannelBuilder {
	b.description = description
	return b
}

// Language sets the channel language.
func (b *ChannelBuilder) Language(language string) *ChannelBuilder {
	b.language = optional.Some(language)
	return b
}

// Copyright sets the copyright notice.
func (b *ChannelBuilder) Copyright(copyright string) *ChannelBuilder {
	b.copyright = optional.Some(copyright)
	return b
}

// ManagingEditor sets the editorial contact.
func (b *ChannelBuilder) ManagingEditor(managingEditor string) *ChannelBuilder {
	b.managingEditor = optional.Some(managingEditor)
	return b
}

// Webmaster sets the technical contact.
func (b *ChannelBuilder) Webmaster(webmaster string) *ChannelBuilder {
	b.webmaster = optional.Some(webmaster)
	return b
}

// PubDate sets the publication date.
func (b *ChannelBuilder) PubDate(pubDate string) *ChannelBuilder {
	b.pubDate = optional.Some(pubDate)
	return b
}

// LastBuildDate sets the last build date.
func (b *ChannelBuilder) LastBuildDate(lastBuildDate string) *ChannelBuilder {
	b.lastBuildDate = optional.Some(lastBuildDate)
	return b
}

// Categories replaces the channel categories.
func (b *ChannelBuilder) Categories(categories []Category) *ChannelBuilder {
	b.categories = slices.Clone(categories)
	return b
}

// AddCategory appends a category.
func (b *ChannelBuilder) AddCategory(category Category) *ChannelBuilder {
	b.categories = append(b.categories, category)
	return b
}

// Generator sets the generating program.
func (b *ChannelBuilder) Generator(generator string) *ChannelBuilder {
	b.generator = optional.Some(generator)
	return b
}

// Docs sets the documentation URL.
func (b *ChannelBuilder) Docs(docs string) *ChannelBuilder {
	b.docs = optional.Some(docs)
	return b
}

// Cloud sets the rssCloud endpoint.
func (b *ChannelBuilder) Cloud(cloud Cloud) *ChannelBuilder {
	b.cloud = optional.Some(cloud)
	return b
}

// TTL sets the cache lifetime in minutes.
func (b *ChannelBuilder) TTL(ttl int64) *ChannelBuilder {
	b.ttl = optional.Some(ttl)
	return b
}

// Image sets the channel image.
func (b *ChannelBuilder) Image(image Image) *ChannelBuilder {
	b.image = optional.Some(image)
	return b
}

// Rating sets the PICS rating.
func (b *ChannelBuilder) Rating(rating string) *ChannelBuilder {
	b.rating = optional.Some(rating)
	return b
}

// TextInput sets the text input box.
func (b *ChannelBuilder) TextInput(textInput TextInput) *ChannelBuilder {
	b.textInput = optional.Some(textInput)
	return b
}

// SkipHours replaces the hours aggregators may skip. Each must be in [0, 23].
func (b *ChannelBuilder) SkipHours(hours []int64) *ChannelBuilder {
	b.skipHours = slices.Clone(hours)
	return b
}

// SkipDays replaces the days aggregators may skip. Each must be one of Weekdays.
func (b *ChannelBuilder) SkipDays(days []string) *ChannelBuilder {
	b.skipDays = slices.Clone(days)
	return b
}

// Items replaces the channel items.
func (b *ChannelBuilder) Items(items []Item) *ChannelBuilder {
	b.items = slices.Clone(items)
	return b
}

// AddItem appends an item.
func (b *ChannelBuilder) AddItem(item Item) *ChannelBuilder {
	b.items = append(b.items, item)
	return b
}

// ITunesExt sets the iTunes podcast elements.
func (b *ChannelBuilder) ITunesExt(ext itunes.ChannelExtension) *ChannelBuilder {
	b.itunesExt = optional.Some(ext)
	return b
}

// Validate checks the channel-level constraints, stopping at the first
// violation: title, link and description are required, link is a URL, ttl
// is not negative, skip hours are within [0, 23], skip days are weekday names
// and both dates follow RFC 2822.
//
// Composite elements (items, image, cloud, ...) are not re-checked; validate
// them with their own builders.
func (b *ChannelBuilder) Validate() (*ChannelBuilder, error) {
	if err := validate.Required("title", b.title); err != nil {
		return nil, err
	}
	if err := validate.Required("link", b.link); err != nil {
		return nil, err
	}
	if err := validate.URL("link", b.link); err != nil {
		return nil, err
	}
	if err := validate.Required("description", b.description); err != nil {
		return nil, err
	}
	if ttl, ok := b.ttl.Get(); ok {
		if err := validate.NonNegative("ttl", ttl); err != nil {
			return nil, err
		}
	}
	for i, hour := range b.skipHours {
		if err := validate.Range(fmt.Sprintf("skipHours[%d]", i), hour, MinSkipHour, MaxSkipHour); err != nil {
			return nil, err
		}
	}
	for i, day := range b.skipDays {
		if err := validate.OneOf(fmt.Sprintf("skipDays[%d]", i), day, Weekdays); err != nil {
			return nil, err
		}
	}
	if err := validate.OptionalDate("pubDate", b.pubDate); err != nil {
		return nil, err
	}
	if err := validate.OptionalDate("lastBuildDate", b.lastBuildDate); err != nil {
		return nil, err
	}
	return b, nil
}

// Finalize converts ttl and skip hours to text and constructs the Channel.
// Only those conversions can fail; the rest of Validate is not repeated.
func (b *ChannelBuilder) Finalize() (Channel, error) {
	ttl := optional.None[string]()
	if n, ok := b.ttl.Get(); ok {
		s, err := stringutil.Int64ToString(n)
		if err != nil {
			return Channel{}, validate.Nested("ttl", err)
		}
		ttl = optional.Some(s)
	}

	skipHours := make([]string, 0, len(b.skipHours))
	for i, hour := range b.skipHours {
		s, err := stringutil.Int64ToString(hour)
		if err != nil {
			return Channel{}, validate.Nested(fmt.Sprintf("skipHours[%d]", i), err)
		}
		skipHours = append(skipHours, s)
	}

	return Channel{
		title:          b.title,
		link:           b.link,
		description:    b.description,
		language:       b.language,
		copyright:      b.copyright,
		managingEditor: b.managingEditor,
		webmaster:      b.webmaster,
		pubDate:        b.pubDate,
		lastBuildDate:  b.lastBuildDate,
		categories:     cloneSlice(b.categories),
		generator:      b.generator,
		docs:           b.docs,
		cloud:          b.cloud,
		ttl:            ttl,
		image:          b.image,
		rating:         b.rating,
		textInput:      b.textInput,
		skipHours:      skipHours,
		skipDays:       cloneSlice(b.skipDays),
		items:          cloneSlice(b.items),
		itunesExt:      b.itunesExt,
	}, nil
}

// Build validates the builder and then finalizes it.
func (b *ChannelBuilder) Build() (Channel, error) {
	if _, err := b.Validate(); err != nil {
		return Channel{}, err
	}
	return b.Finalize()
}
