package importer

import (
	"bytes"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// Namespaces whose elements gofeed treats as plain RSS rather than as
// extensions.
var rssNamespaces = map[string]bool{
	"http://purl.org/rss/1.0/":                    true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#": true,
	"http://purl.org/rss/1.0/modules/content/":    true,
}

// guidPermaLinks returns the raw isPermaLink attribute of every item's guid
// in the order gofeed's RSS parser reports items: those of the channel
// first, then any outside it. Items without the attribute get "". It returns
// nil when the document cannot be walked.
//
// gofeed reads the attribute as "isPermalink", so the spelling used by the
// RSS 2.0 specification is lost in rss.GUID.
func guidPermaLinks(data []byte) []string {
	p := xpp.NewXMLPullParser(bytes.NewReader(data), false, charset.NewReaderLabel)

	var (
		channelItems []string
		rootItems    []string
		current      *[]string
		inChannel    bool
		itemDepth    int
	)
	for {
		event, err := p.NextToken()
		if err != nil {
			return nil
		}

		switch event {
		case xpp.EndDocument:
			return append(channelItems, rootItems...)
		case xpp.EndTag:
			if p.Depth < itemDepth {
				itemDepth = 0
			}
			if p.Depth < 2 {
				inChannel = false
			}
		case xpp.StartTag:
			if isExtension(p) {
				continue
			}
			name := strings.ToLower(p.Name)
			switch {
			case p.Depth == 2 && name == "channel":
				// A later channel replaces the earlier one, as in gofeed.
				inChannel = true
				channelItems = channelItems[:0]
			case p.Depth == 2 && name == "item":
				rootItems = append(rootItems, "")
				current, itemDepth = &rootItems, p.Depth
			case inChannel && p.Depth == 3 && name == "item":
				channelItems = append(channelItems, "")
				current, itemDepth = &channelItems, p.Depth
			case itemDepth > 0 && p.Depth == itemDepth+1 && name == "guid":
				(*current)[len(*current)-1] = permaLinkAttr(p)
			}
		}
	}
}

func permaLinkAttr(p *xpp.XMLPullParser) string {
	for _, a := range p.Attrs {
		if strings.EqualFold(a.Name.Local, "isPermaLink") {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func isExtension(p *xpp.XMLPullParser) bool {
	space := strings.TrimSpace(p.Space)
	if space == "" || rssNamespaces[space] {
		return false
	}
	prefix, ok := p.Spaces[space]
	if !ok {
		prefix = space
	}
	return prefix != "" && prefix != "rss" && prefix != "rdf" && prefix != "content"
}
