package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/internal/validate"
	"github.com/jdziat/rssfeed/pkg/itunes"
	"github.com/jdziat/rssfeed/pkg/optional"
	"github.com/jdziat/rssfeed/pkg/stringutil"
)

func (r *run) channel(f *rss.Feed) (rssfeed.Channel, error) {
	b := rssfeed.NewChannelBuilder().
		Title(strings.TrimSpace(f.Title)).
		Link(strings.TrimSpace(f.Link)).
		Description(r.sanitize(f.Description))

	setIf(f.Language, b.Language)
	setIf(f.Copyright, b.Copyright)
	setIf(f.ManagingEditor, b.ManagingEditor)
	setIf(f.WebMaster, b.Webmaster)
	setIf(f.Generator, b.Generator)
	setIf(f.Docs, b.Docs)
	setIf(f.Rating, b.Rating)

	for _, d := range []struct {
		field string
		value string
		set   func(string) *rssfeed.ChannelBuilder
	}{
		{"pubDate", f.PubDate, b.PubDate},
		{"lastBuildDate", f.LastBuildDate, b.LastBuildDate},
	} {
		v := strings.TrimSpace(d.value)
		if v == "" {
			continue
		}
		ok, err := r.keep(d.field, "", validate.Date(d.field, v))
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			d.set(v)
		}
	}

	if f.TTL != "" {
		ttl, err := parseNonNegative("ttl", f.TTL)
		ok, err := r.keep("ttl", "", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			b.TTL(ttl)
		}
	}

	hours := make([]int64, 0, len(f.SkipHours))
	for idx, raw := range f.SkipHours {
		field := fmt.Sprintf("skipHours[%d]", idx)
		hour, err := stringutil.ParseInt64(raw)
		if err != nil {
			err = validate.Nested(field, err)
		} else {
			err = validate.Range(field, hour, rssfeed.MinSkipHour, rssfeed.MaxSkipHour)
		}
		ok, err := r.keep("skipHours", "", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			hours = append(hours, hour)
		}
	}
	b.SkipHours(hours)

	days := make([]string, 0, len(f.SkipDays))
	for idx, raw := range f.SkipDays {
		day := strings.TrimSpace(raw)
		ok, err := r.keep("skipDays", "", validate.OneOf(fmt.Sprintf("skipDays[%d]", idx), day, rssfeed.Weekdays))
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			days = append(days, day)
		}
	}
	b.SkipDays(days)

	categories, err := r.categories("", f.Categories)
	if err != nil {
		return rssfeed.Channel{}, err
	}
	b.Categories(categories)

	if f.Cloud != nil {
		c, err := cloud(f.Cloud)
		ok, err := r.keep("cloud", "cloud", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			b.Cloud(c)
		}
	}

	if f.Image != nil {
		img, err := image(f.Image)
		ok, err := r.keep("image", "image", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			b.Image(img)
		}
	}

	if f.TextInput != nil {
		ti, err := rssfeed.NewTextInputBuilder().
			Title(f.TextInput.Title).
			Description(f.TextInput.Description).
			Name(f.TextInput.Name).
			Link(strings.TrimSpace(f.TextInput.Link)).
			Build()
		ok, err := r.keep("textInput", "textInput", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			b.TextInput(ti)
		}
	}

	if f.ITunesExt != nil {
		e, err := channelExtension(f.ITunesExt)
		ok, err := r.keep("itunes", "itunes", err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			b.ITunesExt(e)
		}
	}

	items := make([]rssfeed.Item, 0, len(f.Items))
	for idx, raw := range f.Items {
		if raw == nil {
			continue
		}
		at := fmt.Sprintf("item[%d]", idx)
		r.beginItem()
		item, err := r.item(idx, at, raw)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		r.endItem(item.err == nil)
		ok, err := r.keep("item", at, item.err)
		if err != nil {
			return rssfeed.Channel{}, err
		}
		if ok {
			items = append(items, item.value)
			r.stats.ItemsAccepted++
		}
	}
	b.Items(items)

	return b.Build()
}

// builtItem carries the outcome of building an item. err is a validation
// failure of the item as a whole; partial failures have already been handled
// by keep.
type builtItem struct {
	value rssfeed.Item
	err   error
}

func (r *run) item(idx int, at string, it *rss.Item) (builtItem, error) {
	b := rssfeed.NewItemBuilder()

	setIf(strings.TrimSpace(it.Title), b.Title)
	setIf(r.sanitize(it.Description), b.Description)
	setIf(it.Author, b.Author)

	for _, u := range []struct {
		field string
		value string
		set   func(string) *rssfeed.ItemBuilder
	}{
		{"link", it.Link, b.Link},
		{"comments", it.Comments, b.Comments},
	} {
		v := strings.TrimSpace(u.value)
		if v == "" {
			continue
		}
		ok, err := r.keep(u.field, at, validate.URL(u.field, v))
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			u.set(v)
		}
	}

	if v := strings.TrimSpace(it.PubDate); v != "" {
		ok, err := r.keep("pubDate", at, validate.Date("pubDate", v))
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			b.PubDate(v)
		}
	}

	categories, err := r.categories(at, it.Categories)
	if err != nil {
		return builtItem{}, err
	}
	b.Categories(categories)

	if it.Enclosure != nil {
		enc, err := enclosure(it.Enclosure)
		ok, err := r.keep("enclosure", at+".enclosure", err)
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			b.Enclosure(enc)
		}
	}

	if it.Source != nil {
		src, err := source(it.Source)
		ok, err := r.keep("source", at+".source", err)
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			b.Source(src)
		}
	}

	switch {
	case it.GUID != nil && strings.TrimSpace(it.GUID.Value) != "":
		attr := it.GUID.IsPermalink
		if v := r.guidPermaLink(idx); v != "" {
			attr = v
		}
		guid, err := rssfeed.NewGuidBuilder().
			Value(strings.TrimSpace(it.GUID.Value)).
			IsPermalink(isPermalink(attr)).
			Build()
		ok, err := r.keep("guid", at, err)
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			b.Guid(guid)
		}
	case r.generateGUIDs:
		if guid, ok := generatedGUID(it); ok {
			b.Guid(guid)
		}
	}

	if it.ITunesExt != nil {
		e, err := itemExtension(it.ITunesExt)
		ok, err := r.keep("itunes", at+".itunes", err)
		if err != nil {
			return builtItem{}, err
		}
		if ok {
			b.ITunesExt(e)
		}
	}

	item, err := b.Build()
	return builtItem{value: item, err: err}, nil
}

func (r *run) categories(at string, raw []*rss.Category) ([]rssfeed.Category, error) {
	out := make([]rssfeed.Category, 0, len(raw))
	for idx, c := range raw {
		if c == nil {
			continue
		}
		cb := rssfeed.NewCategoryBuilder().Name(strings.TrimSpace(c.Value))
		setIf(strings.TrimSpace(c.Domain), cb.Domain)
		cat, err := cb.Build()

		path := fmt.Sprintf("category[%d]", idx)
		if at != "" {
			path = at + "." + path
		}
		ok, err := r.keep("category", path, err)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, cat)
		}
	}
	return out, nil
}

func cloud(c *rss.Cloud) (rssfeed.Cloud, error) {
	port, err := parseNonNegative("port", c.Port)
	if err != nil {
		return rssfeed.Cloud{}, err
	}
	return rssfeed.NewCloudBuilder().
		Domain(strings.TrimSpace(c.Domain)).
		Port(port).
		Path(c.Path).
		RegisterProcedure(c.RegisterProcedure).
		Protocol(c.Protocol).
		Build()
}

func image(img *rss.Image) (rssfeed.Image, error) {
	b := rssfeed.NewImageBuilder().
		URL(strings.TrimSpace(img.URL)).
		Link(strings.TrimSpace(img.Link)).
		Title(img.Title)
	setIf(img.Description, b.Description)

	if img.Width != "" {
		w, err := parseNonNegative("width", img.Width)
		if err != nil {
			return rssfeed.Image{}, err
		}
		b.Width(w)
	}
	if img.Height != "" {
		h, err := parseNonNegative("height", img.Height)
		if err != nil {
			return rssfeed.Image{}, err
		}
		b.Height(h)
	}
	return b.Build()
}

func enclosure(e *rss.Enclosure) (rssfeed.Enclosure, error) {
	length, err := parseNonNegative("length", e.Length)
	if err != nil {
		return rssfeed.Enclosure{}, err
	}
	return rssfeed.NewEnclosureBuilder().
		URL(strings.TrimSpace(e.URL)).
		Length(length).
		MimeType(strings.TrimSpace(e.Type)).
		Build()
}

func source(s *rss.Source) (rssfeed.Source, error) {
	b := rssfeed.NewSourceBuilder().URL(strings.TrimSpace(s.URL))
	setIf(strings.TrimSpace(s.Title), b.Title)
	return b.Build()
}

func channelExtension(e *ext.ITunesFeedExtension) (itunes.ChannelExtension, error) {
	b := itunes.NewChannelExtensionBuilder()
	setIf(e.Author, b.Author)
	setIf(e.Block, b.Block)
	setIf(e.Explicit, b.Explicit)
	setIf(e.Keywords, b.Keywords)
	setIf(e.Subtitle, b.Subtitle)
	setIf(e.Summary, b.Summary)
	setIf(strings.TrimSpace(e.Image), b.Image)
	setIf(e.Complete, b.Complete)
	setIf(strings.TrimSpace(e.NewFeedURL), b.NewFeedURL)
	setIf(e.Type, b.Type)

	if e.Owner != nil {
		ob := itunes.NewOwnerBuilder()
		setIf(e.Owner.Name, ob.Name)
		setIf(e.Owner.Email, ob.Email)
		owner, err := ob.Build()
		if err != nil {
			return itunes.ChannelExtension{}, validate.Nested("owner", err)
		}
		b.Owner(owner)
	}

	for idx, c := range e.Categories {
		if c == nil {
			continue
		}
		cat, err := itunesCategory(c)
		if err != nil {
			return itunes.ChannelExtension{}, validate.Nested(fmt.Sprintf("category[%d]", idx), err)
		}
		b.AddCategory(cat)
	}
	return b.Build()
}

func itunesCategory(c *ext.ITunesCategory) (itunes.Category, error) {
	b := itunes.NewCategoryBuilder().Text(strings.TrimSpace(c.Text))
	if c.Subcategory != nil {
		sub, err := itunesCategory(c.Subcategory)
		if err != nil {
			return itunes.Category{}, validate.Nested("subcategory", err)
		}
		b.Subcategory(sub)
	}
	return b.Build()
}

func itemExtension(e *ext.ITunesItemExtension) (itunes.ItemExtension, error) {
	b := itunes.NewItemExtensionBuilder()
	setIf(e.Author, b.Author)
	setIf(e.Block, b.Block)
	setIf(e.Duration, b.Duration)
	setIf(e.Explicit, b.Explicit)
	setIf(e.Keywords, b.Keywords)
	setIf(e.Subtitle, b.Subtitle)
	setIf(e.Summary, b.Summary)
	setIf(strings.TrimSpace(e.Image), b.Image)
	setIf(e.IsClosedCaptioned, b.IsClosedCaptioned)
	setIf(e.Episode, b.Episode)
	setIf(e.Season, b.Season)
	setIf(e.Order, b.Order)
	setIf(e.EpisodeType, b.EpisodeType)
	return b.Build()
}

// generatedGUID derives a stable urn:uuid guid from the item's link and
// title. Items with neither get no guid.
func generatedGUID(it *rss.Item) (rssfeed.Guid, bool) {
	link := strings.TrimSpace(it.Link)
	title := strings.TrimSpace(it.Title)
	if link == "" && title == "" {
		return rssfeed.Guid{}, false
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(link+"|"+title))
	guid, err := rssfeed.NewGuidBuilder().
		Value("urn:uuid:" + id.String()).
		IsPermalink(false).
		Build()
	return guid, err == nil
}

// isPermalink interprets the isPermaLink attribute. Anything other than a
// recognised false value keeps the RSS default of true.
func isPermalink(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return true
	}
	return v
}

func parseNonNegative(field, raw string) (int64, error) {
	n, err := stringutil.ParseInt64(raw)
	if err != nil {
		return 0, validate.Nested(field, err)
	}
	if err := validate.NonNegative(field, n); err != nil {
		return 0, err
	}
	return n, nil
}

// setIf calls set with v when v is not empty.
func setIf[B any](v string, set func(string) B) {
	if s, ok := optional.NonEmpty(v).Get(); ok {
		set(s)
	}
}
