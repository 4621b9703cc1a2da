package rssxml

import "encoding/xml"

type document struct {
	XMLName  xml.Name `xml:"rss"`
	Version  string   `xml:"version,attr"`
	ITunesNS string   `xml:"xmlns:itunes,attr,omitempty"`
	Channel  channel  `xml:"channel"`
}

type channel struct {
	Title          string           `xml:"title"`
	Link           string           `xml:"link"`
	Description    string           `xml:"description"`
	Language       string           `xml:"language,omitempty"`
	Copyright      string           `xml:"copyright,omitempty"`
	ManagingEditor string           `xml:"managingEditor,omitempty"`
	WebMaster      string           `xml:"webMaster,omitempty"`
	PubDate        string           `xml:"pubDate,omitempty"`
	LastBuildDate  string           `xml:"lastBuildDate,omitempty"`
	Categories     []category       `xml:"category,omitempty"`
	Generator      string           `xml:"generator,omitempty"`
	Docs           string           `xml:"docs,omitempty"`
	Cloud          *cloud           `xml:"cloud,omitempty"`
	TTL            string           `xml:"ttl,omitempty"`
	Image          *image           `xml:"image,omitempty"`
	Rating         string           `xml:"rating,omitempty"`
	TextInput      *textInput       `xml:"textInput,omitempty"`
	SkipHours      *skipHours       `xml:"skipHours,omitempty"`
	SkipDays       *skipDays        `xml:"skipDays,omitempty"`
	ITunesAuthor   string           `xml:"itunes:author,omitempty"`
	ITunesBlock    string           `xml:"itunes:block,omitempty"`
	ITunesExplicit string           `xml:"itunes:explicit,omitempty"`
	ITunesKeywords string           `xml:"itunes:keywords,omitempty"`
	ITunesSubtitle string           `xml:"itunes:subtitle,omitempty"`
	ITunesSummary  string           `xml:"itunes:summary,omitempty"`
	ITunesImage    *hrefImage       `xml:"itunes:image,omitempty"`
	ITunesComplete string           `xml:"itunes:complete,omitempty"`
	ITunesNewFeed  string           `xml:"itunes:new-feed-url,omitempty"`
	ITunesType     string           `xml:"itunes:type,omitempty"`
	ITunesOwner    *owner           `xml:"itunes:owner,omitempty"`
	ITunesCategory []itunesCategory `xml:"itunes:category,omitempty"`
	Items          []item           `xml:"item"`
}

type item struct {
	Title             string     `xml:"title,omitempty"`
	Link              string     `xml:"link,omitempty"`
	Description       string     `xml:"description,omitempty"`
	Author            string     `xml:"author,omitempty"`
	Categories        []category `xml:"category,omitempty"`
	Comments          string     `xml:"comments,omitempty"`
	Enclosure         *enclosure `xml:"enclosure,omitempty"`
	GUID              *guid      `xml:"guid,omitempty"`
	PubDate           string     `xml:"pubDate,omitempty"`
	Source            *source    `xml:"source,omitempty"`
	ITunesAuthor      string     `xml:"itunes:author,omitempty"`
	ITunesBlock       string     `xml:"itunes:block,omitempty"`
	ITunesDuration    string     `xml:"itunes:duration,omitempty"`
	ITunesExplicit    string     `xml:"itunes:explicit,omitempty"`
	ITunesKeywords    string     `xml:"itunes:keywords,omitempty"`
	ITunesSubtitle    string     `xml:"itunes:subtitle,omitempty"`
	ITunesSummary     string     `xml:"itunes:summary,omitempty"`
	ITunesImage       *hrefImage `xml:"itunes:image,omitempty"`
	ITunesCaptioned   string     `xml:"itunes:isClosedCaptioned,omitempty"`
	ITunesEpisode     string     `xml:"itunes:episode,omitempty"`
	ITunesSeason      string     `xml:"itunes:season,omitempty"`
	ITunesOrder       string     `xml:"itunes:order,omitempty"`
	ITunesEpisodeType string     `xml:"itunes:episodeType,omitempty"`
}

type category struct {
	Domain string `xml:"domain,attr,omitempty"`
	Value  string `xml:",chardata"`
}

type cloud struct {
	Domain            string `xml:"domain,attr"`
	Port              string `xml:"port,attr"`
	Path              string `xml:"path,attr"`
	RegisterProcedure string `xml:"registerProcedure,attr"`
	Protocol          string `xml:"protocol,attr"`
}

type image struct {
	URL         string `xml:"url"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Width       string `xml:"width,omitempty"`
	Height      string `xml:"height,omitempty"`
	Description string `xml:"description,omitempty"`
}

type textInput struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Name        string `xml:"name"`
	Link        string `xml:"link"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr,omitempty"`
	Value       string `xml:",chardata"`
}

type source struct {
	URL   string `xml:"url,attr"`
	Title string `xml:",chardata"`
}

// skipHours and skipDays are pointers on channel so that an empty list
// leaves out the wrapper element.
type skipHours struct {
	Hours []string `xml:"hour"`
}

type skipDays struct {
	Days []string `xml:"day"`
}

type hrefImage struct {
	Href string `xml:"href,attr"`
}

type owner struct {
	Name  string `xml:"itunes:name,omitempty"`
	Email string `xml:"itunes:email,omitempty"`
}

// itunesCategory is an <itunes:category>, which nests at most one subcategory.
type itunesCategory struct {
	Text        string          `xml:"text,attr"`
	Subcategory *itunesCategory `xml:"itunes:category,omitempty"`
}

