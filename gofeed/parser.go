// Package gofeed implements newshound.FeedParser on top of
// mmcdole/gofeed, covering RSS, Atom and JSON feeds.
package gofeed

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/newshoundlabs/newshound"
)

// Ensure Parser implements newshound.FeedParser at compile time.
var _ newshound.FeedParser = (*Parser)(nil)

// Parser extracts article links from feed markup.
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a new feed parser.
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// ParseFeed returns the item links of the feed in document order,
// deduplicated. Items without a link fall back to their GUID when it
// looks like a URL.
func (p *Parser) ParseFeed(ctx context.Context, markup string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	feed, err := p.parser.ParseString(markup)
	if err != nil {
		return nil, newshound.Errorf(newshound.EUNPARSABLE, "parse feed: %v", err)
	}

	seen := make(map[string]bool, len(feed.Items))
	var links []string
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" && strings.HasPrefix(item.GUID, "http") {
			link = item.GUID
		}
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}

	return links, nil
}
