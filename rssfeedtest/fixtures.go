package rssfeedtest

import (
	"fmt"

	"github.com/jdziat/rssfeed"
	"github.com/jdziat/rssfeed/pkg/itunes"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Helper()
}

// Must returns v and panics when err is non-nil. It wraps Build and Finalize
// calls whose input is known to be valid.
//
//	img := rssfeedtest.Must(rssfeed.NewImageBuilder().URL(u).Link(l).Title("x").Build())
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("rssfeedtest: unexpected error: %v", err))
	}
	return v
}

// fatalOnPanic turns a panic raised by Must into a test failure. It must be
// deferred directly.
func fatalOnPanic(t TestingT) {
	if r := recover(); r != nil {
		t.Helper()
		t.Fatalf("%v", r)
	}
}

// Values shared by SampleChannel and SampleRSS.
const (
	SampleTitle       = "The Linux Action Show! OGG"
	SampleLink        = "http://www.jupiterbroadcasting.com/"
	SampleDescription = "Ogg Vorbis audio versions of The Linux Action Show!"
	SamplePubDate     = "Sun, 13 Jul 2014 14:21:23 -0700"
	SampleEpisodeLink = "http://www.jupiterbroadcasting.com/62926/"
	SampleEnclosure   = "http://www.podtrac.com/pts/redirect.ogg/traffic.libsyn.com/jnite/linuxactionshowep323.ogg"
)

// SampleItem returns the first episode of the sample feed.
func SampleItem(t TestingT) rssfeed.Item {
	t.Helper()
	defer fatalOnPanic(t)

	enclosure := Must(rssfeed.NewEnclosureBuilder().
		URL(SampleEnclosure).
		Length(65036288).
		MimeType("audio/ogg").
		Build())

	guid := Must(rssfeed.NewGuidBuilder().
		Value(SampleEpisodeLink).
		Build())

	ext := Must(itunes.NewItemExtensionBuilder().
		Author("Jupiter Broadcasting").
		Duration("1:13:21").
		Explicit("no").
		Episode("323").
		EpisodeType("full").
		Build())

	return Must(rssfeed.NewItemBuilder().
		Title("Linux Action Show 323").
		Link(SampleEpisodeLink).
		Description("We review the latest desktop releases.").
		Author("chris@jupiterbroadcasting.com (Chris Fisher)").
		AddCategory(Must(rssfeed.NewCategoryBuilder().Name("Linux").Build())).
		Comments("http://www.jupiterbroadcasting.com/62926/#comments").
		Enclosure(enclosure).
		Guid(guid).
		PubDate(SamplePubDate).
		ITunesExt(ext).
		Build())
}

// SampleChannel returns a channel with every element populated.
func SampleChannel(t TestingT) rssfeed.Channel {
	t.Helper()
	defer fatalOnPanic(t)

	cloud := Must(rssfeed.NewCloudBuilder().
		Domain("http://rpc.sys.com/").
		Port(80).
		Path("/RPC2").
		RegisterProcedure("pingMe").
		Protocol("soap").
		Build())

	image := Must(rssfeed.NewImageBuilder().
		URL("http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg").
		Link(SampleLink).
		Title(SampleTitle).
		Width(144).
		Height(144).
		Build())

	textInput := Must(rssfeed.NewTextInputBuilder().
		Title("Search").
		Description("Search the archive").
		Name("q").
		Link("http://www.jupiterbroadcasting.com/search").
		Build())

	owner := Must(itunes.NewOwnerBuilder().
		Name("Jupiter Broadcasting").
		Email("chris@jupiterbroadcasting.com").
		Build())

	tech := Must(itunes.NewCategoryBuilder().
		Text("Technology").
		Subcategory(Must(itunes.NewCategoryBuilder().Text("Software How-To").Build())).
		Build())

	ext := Must(itunes.NewChannelExtensionBuilder().
		Author("Jupiter Broadcasting").
		AddCategory(tech).
		Explicit("no").
		Owner(owner).
		Subtitle("The Linux Action Show").
		Summary("Linux news, reviews and interviews.").
		Image("http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg").
		Type("episodic").
		Build())

	return Must(rssfeed.NewChannelBuilder().
		Title(SampleTitle).
		Link(SampleLink).
		Description(SampleDescription).
		Language("en").
		Copyright("Copyright 2014 Jupiter Broadcasting").
		ManagingEditor("chris@jupiterbroadcasting.com (Chris Fisher)").
		Webmaster("webmaster@jupiterbroadcasting.com (Webmaster)").
		PubDate(SamplePubDate).
		LastBuildDate(SamplePubDate).
		AddCategory(Must(rssfeed.NewCategoryBuilder().Name("Technology").Build())).
		Generator("rssfeed").
		Docs("http://www.rssboard.org/rss-specification").
		Cloud(cloud).
		TTL(60).
		Image(image).
		TextInput(textInput).
		SkipHours([]int64{6, 7, 8, 14, 22}).
		SkipDays([]string{"Saturday", "Sunday"}).
		AddItem(SampleItem(t)).
		ITunesExt(ext).
		Build())
}

// SampleRSS is an RSS 2.0 document describing the same feed as
// SampleChannel.
const SampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>The Linux Action Show! OGG</title>
    <link>http://www.jupiterbroadcasting.com/</link>
    <description>Ogg Vorbis audio versions of The Linux Action Show!</description>
    <language>en</language>
    <copyright>Copyright 2014 Jupiter Broadcasting</copyright>
    <managingEditor>chris@jupiterbroadcasting.com (Chris Fisher)</managingEditor>
    <webMaster>webmaster@jupiterbroadcasting.com (Webmaster)</webMaster>
    <pubDate>Sun, 13 Jul 2014 14:21:23 -0700</pubDate>
    <lastBuildDate>Sun, 13 Jul 2014 14:21:23 -0700</lastBuildDate>
    <category>Technology</category>
    <generator>rssfeed</generator>
    <docs>http://www.rssboard.org/rss-specification</docs>
    <cloud domain="http://rpc.sys.com/" port="80" path="/RPC2" registerProcedure="pingMe" protocol="soap"/>
    <ttl>60</ttl>
    <image>
      <url>http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg</url>
      <title>The Linux Action Show! OGG</title>
      <link>http://www.jupiterbroadcasting.com/</link>
      <width>144</width>
      <height>144</height>
    </image>
    <textInput>
      <title>Search</title>
      <description>Search the archive</description>
      <name>q</name>
      <link>http://www.jupiterbroadcasting.com/search</link>
    </textInput>
    <skipHours>
      <hour>6</hour>
      <hour>7</hour>
      <hour>8</hour>
      <hour>14</hour>
      <hour>22</hour>
    </skipHours>
    <skipDays>
      <day>Saturday</day>
      <day>Sunday</day>
    </skipDays>
    <itunes:author>Jupiter Broadcasting</itunes:author>
    <itunes:explicit>no</itunes:explicit>
    <itunes:subtitle>The Linux Action Show</itunes:subtitle>
    <itunes:summary>Linux news, reviews and interviews.</itunes:summary>
    <itunes:image href="http://www.jupiterbroadcasting.com/images/LAS-300-Badge.jpg"/>
    <itunes:type>episodic</itunes:type>
    <itunes:owner>
      <itunes:name>Jupiter Broadcasting</itunes:name>
      <itunes:email>chris@jupiterbroadcasting.com</itunes:email>
    </itunes:owner>
    <itunes:category text="Technology">
      <itunes:category text="Software How-To"/>
    </itunes:category>
    <item>
      <title>Linux Action Show 323</title>
      <link>http://www.jupiterbroadcasting.com/62926/</link>
      <description>We review the latest desktop releases.</description>
      <author>chris@jupiterbroadcasting.com (Chris Fisher)</author>
      <category>Linux</category>
      <comments>http://www.jupiterbroadcasting.com/62926/#comments</comments>
      <enclosure url="http://www.podtrac.com/pts/redirect.ogg/traffic.libsyn.com/jnite/linuxactionshowep323.ogg" length="65036288" type="audio/ogg"/>
      <guid isPermaLink="true">http://www.jupiterbroadcasting.com/62926/</guid>
      <pubDate>Sun, 13 Jul 2014 14:21:23 -0700</pubDate>
      <itunes:author>Jupiter Broadcasting</itunes:author>
      <itunes:duration>1:13:21</itunes:duration>
      <itunes:explicit>no</itunes:explicit>
      <itunes:episode>323</itunes:episode>
      <itunes:episodeType>full</itunes:episodeType>
    </item>
  </channel>
</rss>
`
