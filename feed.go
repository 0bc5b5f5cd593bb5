package newshound

import "context"

// FeedParser extracts candidate article URLs from RSS/Atom feed markup.
type FeedParser interface {
	// ParseFeed parses the feed and returns item links in feed order,
	// skipping items without a link. Returns EUNPARSABLE if the input is
	// not a recognizable feed.
	ParseFeed(ctx context.Context, markup string) ([]string, error)
}
