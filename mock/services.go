package mock

import (
	"context"

	"github.com/newshoundlabs/newshound"
)

var _ newshound.FeedParser = (*FeedParser)(nil)

// FeedParser is a mock implementation of newshound.FeedParser.
type FeedParser struct {
	ParseFeedFn func(ctx context.Context, markup string) ([]string, error)
}

func (p *FeedParser) ParseFeed(ctx context.Context, markup string) ([]string, error) {
	return p.ParseFeedFn(ctx, markup)
}

var _ newshound.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of newshound.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *newshound.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *newshound.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ newshound.TemplateEngine = (*TemplateEngine)(nil)

// TemplateEngine is a mock implementation of newshound.TemplateEngine.
type TemplateEngine struct {
	ApplyFn func(template *newshound.Article, doc *newshound.Document) (*newshound.Article, error)
}

func (e *TemplateEngine) Apply(template *newshound.Article, doc *newshound.Document) (*newshound.Article, error) {
	return e.ApplyFn(template, doc)
}

var _ newshound.Converter = (*Converter)(nil)

// Converter is a mock implementation of newshound.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
