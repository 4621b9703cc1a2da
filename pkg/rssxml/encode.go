// Package rssxml renders rssfeed values as RSS 2.0 documents.
//
// Output declares the iTunes namespace when the channel or any item carries
// an iTunes extension, and can be read back by the importer package.
package rssxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/pkg/itunes"
)

// Version is the RSS version written to the root element.
const Version = "2.0"

// DefaultIndent is the indentation used by Marshal.
const DefaultIndent = "  "

type encodeConfig struct {
	indent string
}

// Option configures Encode.
type Option func(*encodeConfig)

// WithIndent sets the indentation of nested elements. An empty string writes
// the document on a single line.
func WithIndent(indent string) Option {
	return func(c *encodeConfig) {
		c.indent = indent
	}
}

// Encode writes ch to w as an RSS 2.0 document, including the XML header.
func Encode(w io.Writer, ch rssfeed.Channel, opts ...Option) error {
	cfg := encodeConfig{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("rssxml: write header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", cfg.indent)
	if err := enc.Encode(newDocument(ch)); err != nil {
		return fmt.Errorf("rssxml: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("rssxml: encode: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns ch as an indented RSS 2.0 document.
func Marshal(ch rssfeed.Channel) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, ch); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newDocument(ch rssfeed.Channel) document {
	c := channel{
		Title:       ch.Title(),
		Link:        ch.Link(),
		Description: ch.Description(),
		Categories:  categories(ch.Categories()),
	}
	if hours := ch.SkipHours(); len(hours) > 0 {
		c.SkipHours = &skipHours{Hours: hours}
	}
	if days := ch.SkipDays(); len(days) > 0 {
		c.SkipDays = &skipDays{Days: days}
	}
	c.Language, _ = ch.Language()
	c.Copyright, _ = ch.Copyright()
	c.ManagingEditor, _ = ch.ManagingEditor()
	c.WebMaster, _ = ch.Webmaster()
	c.PubDate, _ = ch.PubDate()
	c.LastBuildDate, _ = ch.LastBuildDate()
	c.Generator, _ = ch.Generator()
	c.Docs, _ = ch.Docs()
	c.TTL, _ = ch.TTL()
	c.Rating, _ = ch.Rating()

	if v, ok := ch.Cloud(); ok {
		c.Cloud = &cloud{
			Domain:            v.Domain(),
			Port:              v.Port(),
			Path:              v.Path(),
			RegisterProcedure: v.RegisterProcedure(),
			Protocol:          v.Protocol(),
		}
	}
	if v, ok := ch.Image(); ok {
		img := &image{URL: v.URL(), Title: v.Title(), Link: v.Link()}
		img.Width, _ = v.Width()
		img.Height, _ = v.Height()
		img.Description, _ = v.Description()
		c.Image = img
	}
	if v, ok := ch.TextInput(); ok {
		c.TextInput = &textInput{
			Title:       v.Title(),
			Description: v.Description(),
			Name:        v.Name(),
			Link:        v.Link(),
		}
	}

	usesITunes := false
	if e, ok := ch.ITunesExt(); ok {
		usesITunes = true
		setChannelExtension(&c, e)
	}

	items := ch.Items()
	c.Items = make([]item, 0, len(items))
	for _, it := range items {
		x := newItem(it)
		if _, ok := it.ITunesExt(); ok {
			usesITunes = true
		}
		c.Items = append(c.Items, x)
	}

	doc := document{Version: Version, Channel: c}
	if usesITunes {
		doc.ITunesNS = itunes.Namespace
	}
	return doc
}

func newItem(it rssfeed.Item) item {
	x := item{Categories: categories(it.Categories())}
	x.Title, _ = it.Title()
	x.Link, _ = it.Link()
	x.Description, _ = it.Description()
	x.Author, _ = it.Author()
	x.Comments, _ = it.Comments()
	x.PubDate, _ = it.PubDate()

	if v, ok := it.Enclosure(); ok {
		x.Enclosure = &enclosure{URL: v.URL(), Length: v.Length(), Type: v.MimeType()}
	}
	if v, ok := it.Guid(); ok {
		x.GUID = &guid{Value: v.Value()}
		if !v.IsPermalink() {
			x.GUID.IsPermaLink = "false"
		}
	}
	if v, ok := it.Source(); ok {
		x.Source = &source{URL: v.URL()}
		x.Source.Title, _ = v.Title()
	}
	if e, ok := it.ITunesExt(); ok {
		x.ITunesAuthor, _ = e.Author()
		x.ITunesBlock, _ = e.Block()
		x.ITunesDuration, _ = e.Duration()
		x.ITunesExplicit, _ = e.Explicit()
		x.ITunesKeywords, _ = e.Keywords()
		x.ITunesSubtitle, _ = e.Subtitle()
		x.ITunesSummary, _ = e.Summary()
		if href, ok := e.Image(); ok {
			x.ITunesImage = &hrefImage{Href: href}
		}
		x.ITunesCaptioned, _ = e.IsClosedCaptioned()
		x.ITunesEpisode, _ = e.Episode()
		x.ITunesSeason, _ = e.Season()
		x.ITunesOrder, _ = e.Order()
		x.ITunesEpisodeType, _ = e.EpisodeType()
	}
	return x
}

func setChannelExtension(c *channel, e itunes.ChannelExtension) {
	c.ITunesAuthor, _ = e.Author()
	c.ITunesBlock, _ = e.Block()
	c.ITunesExplicit, _ = e.Explicit()
	c.ITunesKeywords, _ = e.Keywords()
	c.ITunesSubtitle, _ = e.Subtitle()
	c.ITunesSummary, _ = e.Summary()
	if href, ok := e.Image(); ok {
		c.ITunesImage = &hrefImage{Href: href}
	}
	c.ITunesComplete, _ = e.Complete()
	c.ITunesNewFeed, _ = e.NewFeedURL()
	c.ITunesType, _ = e.Type()
	if o, ok := e.Owner(); ok {
		ow := &owner{}
		ow.Name, _ = o.Name()
		ow.Email, _ = o.Email()
		c.ITunesOwner = ow
	}
	for _, cat := range e.Categories() {
		c.ITunesCategory = append(c.ITunesCategory, newITunesCategory(cat))
	}
}

func newITunesCategory(cat itunes.Category) itunesCategory {
	x := itunesCategory{Text: cat.Text()}
	if sub, ok := cat.Subcategory(); ok {
		s := newITunesCategory(sub)
		x.Subcategory = &s
	}
	return x
}

func categories(cats []rssfeed.Category) []category {
	out := make([]category, 0, len(cats))
	for _, c := range cats {
		x := category{Value: c.Name()}
		x.Domain, _ = c.Domain()
		out = append(out, x)
	}
	return out
}
