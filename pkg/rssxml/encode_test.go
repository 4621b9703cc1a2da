package rssxml

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/pkg/importer"
	"github.com/jdziat/rssfeed/rssfeedtest"
)

func TestMarshal_RoundTrip(t *testing.T) {
	want := rssfeedtest.SampleChannel(t)

	out, err := Marshal(want)
	require.NoError(t, err)

	got, err := importer.New(importer.WithStrict(true)).Parse(bytes.NewReader(out))
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(want, got), "round trip changed the channel\nwant %+v\ngot  %+v", want, got)
}

func TestMarshal_RoundTripNonPermalinkGuid(t *testing.T) {
	g, err := rssfeed.NewGuidBuilder().Value("tag:example.com,2024:1").IsPermalink(false).Build()
	require.NoError(t, err)
	it, err := rssfeed.NewItemBuilder().Title("One").Guid(g).Build()
	require.NoError(t, err)
	want, err := rssfeed.NewChannelBuilder().
		Title("Tags").
		Link("http://example.com/").
		Description("Tag guids").
		AddItem(it).
		Build()
	require.NoError(t, err)

	out, err := Marshal(want)
	require.NoError(t, err)

	got, err := importer.New(importer.WithStrict(true)).Parse(bytes.NewReader(out))
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(want, got), "round trip changed the channel\nwant %+v\ngot  %+v", want, got)
}

func TestMarshal_ParsesWithGofeed(t *testing.T) {
	out, err := Marshal(rssfeedtest.SampleChannel(t))
	require.NoError(t, err)

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "rss", feed.FeedType)
	assert.Equal(t, Version, feed.FeedVersion)
	assert.Equal(t, rssfeedtest.SampleTitle, feed.Title)
	require.NotNil(t, feed.ITunesExt)
	assert.Equal(t, "Jupiter Broadcasting", feed.ITunesExt.Author)
	require.Len(t, feed.Items, 1)
	require.Len(t, feed.Items[0].Enclosures, 1)
	assert.Equal(t, "65036288", feed.Items[0].Enclosures[0].Length)
}

func TestEncode_Structure(t *testing.T) {
	out, err := Marshal(rssfeedtest.SampleChannel(t))
	require.NoError(t, err)
	doc := string(out)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">`,
		`<cloud domain="http://rpc.sys.com/" port="80" path="/RPC2" registerProcedure="pingMe" protocol="soap"></cloud>`,
		"<skipHours>\n      <hour>6</hour>",
		`<itunes:category text="Technology">`,
		`<itunes:category text="Software How-To"></itunes:category>`,
		`<itunes:image href="http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg"></itunes:image>`,
		`<enclosure url="http://www.podtrac.com/pts/redirect.ogg/traffic.libsyn.com/jnite/linuxactionshowep323.ogg" length="65036288" type="audio/ogg"></enclosure>`,
		`<guid>http://www.jupiterbroadcasting.com/62926/</guid>`,
	} {
		assert.Contains(t, doc, want)
	}
}

func TestEncode_OmitsAbsentElements(t *testing.T) {
	ch, err := rssfeed.NewChannelBuilder().
		Title("Minimal").
		Link("http://example.com/").
		Description("Nothing else").
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ch, WithIndent("")))
	doc := buf.String()

	assert.Contains(t, doc, `<rss version="2.0"><channel><title>Minimal</title>`)
	for _, absent := range []string{"xmlns:itunes", "<ttl>", "<skipHours>", "<skipDays>", "<image>", "<cloud", "<item>", "<category"} {
		assert.NotContains(t, doc, absent)
	}
}

func TestEncode_SkipListsIndependently(t *testing.T) {
	ch, err := rssfeed.NewChannelBuilder().
		Title("Weekdays only").
		Link("http://example.com/").
		Description("No weekend updates").
		SkipDays([]string{"Saturday", "Sunday"}).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ch, WithIndent("")))
	doc := buf.String()

	assert.Contains(t, doc, "<skipDays><day>Saturday</day><day>Sunday</day></skipDays>")
	assert.NotContains(t, doc, "skipHours")
}

func TestEncode_GuidPermalinkAndEscaping(t *testing.T) {
	g, err := rssfeed.NewGuidBuilder().Value("ep-1").IsPermalink(false).Build()
	require.NoError(t, err)
	it, err := rssfeed.NewItemBuilder().Title("Fish & Chips <live>").Guid(g).Build()
	require.NoError(t, err)
	ch, err := rssfeed.NewChannelBuilder().
		Title("t").
		Link("http://example.com/").
		Description("d").
		AddItem(it).
		Build()
	require.NoError(t, err)

	out, err := Marshal(ch)
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, `<guid isPermaLink="false">ep-1</guid>`)
	assert.Contains(t, doc, "Fish &amp; Chips &lt;live&gt;")
	assert.False(t, strings.Contains(doc, "<live>"))
}
