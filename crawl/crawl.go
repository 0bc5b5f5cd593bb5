// Package crawl orchestrates article extraction across a whole news site.
// It walks one site through a fixed pipeline: download and parse the
// homepage, detect category pages, discover feeds, generate candidate
// article URLs, group them by structure, and resolve each group through
// heuristics plus template replay.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/bloom"
	"golang.org/x/net/html"
)

// Bloom filter sizing for candidate deduplication.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// Crawler runs the site pipeline. Sitemaps, Converter and RateLimiter are
// optional; the remaining collaborators are required.
type Crawler struct {
	DOM       newshound.DOM
	Fetcher   newshound.Fetcher
	Resolver  newshound.Resolver
	Scorer    newshound.ContentScorer
	Templates newshound.TemplateEngine
	Feeds     newshound.FeedParser

	// Sitemaps supplements candidate generation with sitemap URLs.
	Sitemaps newshound.SitemapService

	// Converter renders winning content nodes to Markdown during the
	// terminal formatting stage.
	Converter newshound.Converter

	// RateLimiter throttles fetches per domain.
	RateLimiter newshound.DomainLimiter

	Config      newshound.Config
	RetryDelays []time.Duration
}

// Process runs the full pipeline for one site and returns the articles
// grouped by normalized host plus first path segment.
//
// A stage failure truncates the pipeline and yields whatever partial
// grouping has accumulated; per-document failures never surface. The only
// returned error is an invalid site URL.
func (c *Crawler) Process(ctx context.Context, siteURL string) (map[string][]*newshound.Article, error) {
	s, err := NewSource(siteURL)
	if err != nil {
		return nil, err
	}
	c.Crawl(ctx, s)
	return s.Articles(), nil
}

// Crawl advances the source through the pipeline until it reaches the
// terminal state or a stage fails. The source is left at the last state
// it completed.
func (c *Crawler) Crawl(ctx context.Context, s *Source) {
	stages := []func(context.Context, *Source) error{
		c.download,
		c.parse,
		c.setCategories,
		c.downloadCategories,
		c.parseCategories,
		c.setFeeds,
		c.downloadFeeds,
		c.generateArticles,
		c.format,
	}
	for _, stage := range stages {
		if err := stage(ctx, s); err != nil {
			return
		}
	}
}

func (c *Crawler) download(ctx context.Context, s *Source) error {
	if err := c.waitForHost(ctx, s.URL); err != nil {
		return err
	}
	markup, err := FetchWithRetryDelays(ctx, s.URL, c.Fetcher.FetchOne, c.retryDelays())
	if err != nil {
		return err
	}
	s.markup = markup
	s.state = StateDownloaded
	return nil
}

func (c *Crawler) parse(_ context.Context, s *Source) error {
	doc, err := c.DOM.Parse(s.markup, s.URL)
	if err != nil {
		return err
	}
	s.doc = doc
	s.state = StateParsed
	return nil
}

// setCategories collects same-host shallow-path links from the homepage.
// The homepage itself is always the first category so that its own
// article links participate in candidate generation.
func (c *Crawler) setCategories(_ context.Context, s *Source) error {
	s.categories = []*page{{url: s.URL, markup: s.markup, doc: s.doc}}
	base, err := url.Parse(s.URL)
	if err != nil {
		return err
	}
	seen := map[string]bool{normalizeURL(s.URL): true}
	for _, link := range anchorHrefs(c.DOM, s.doc, base) {
		if !isCategoryURL(link, base) {
			continue
		}
		key := normalizeURL(link.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		s.categories = append(s.categories, &page{url: link.String()})
	}
	s.state = StateCategoriesSet
	return nil
}

func (c *Crawler) downloadCategories(ctx context.Context, s *Source) error {
	// The homepage is already downloaded; fetch the rest as one batch.
	var urls []string
	for _, cat := range s.categories[1:] {
		urls = append(urls, cat.url)
	}
	results, err := c.fetchBatch(ctx, urls)
	if err != nil {
		return err
	}
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		s.categories[i+1].markup = res.Markup
	}
	s.state = StateCategoriesDownloaded
	return nil
}

func (c *Crawler) parseCategories(_ context.Context, s *Source) error {
	for _, cat := range s.categories {
		if cat.doc != nil || cat.markup == "" {
			continue
		}
		doc, err := c.DOM.Parse(cat.markup, cat.url)
		if err != nil {
			continue
		}
		cat.doc = doc
	}
	s.state = StateCategoriesParsed
	return nil
}

// setFeeds discovers RSS/Atom feeds advertised on category pages plus the
// conventional /feed and /rss locations at the site root.
func (c *Crawler) setFeeds(_ context.Context, s *Source) error {
	base, err := url.Parse(s.URL)
	if err != nil {
		return err
	}
	seen := make(map[string]bool)
	add := func(feedURL string) {
		key := normalizeURL(feedURL)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		s.feeds = append(s.feeds, &page{url: feedURL})
	}

	for _, cat := range s.categories {
		if cat.doc == nil {
			continue
		}
		for _, ref := range c.DOM.Select(cat.doc, `link[type*='rss'], link[type*='atom']`) {
			href := nodeAttr(ref.Element, "href")
			if href == "" {
				continue
			}
			resolved, err := base.Parse(href)
			if err != nil {
				continue
			}
			add(resolved.String())
		}
	}
	for _, path := range []string{"/feed", "/rss"} {
		add(base.Scheme + "://" + base.Host + path)
	}

	s.state = StateFeedsSet
	return nil
}

func (c *Crawler) downloadFeeds(ctx context.Context, s *Source) error {
	var urls []string
	for _, feed := range s.feeds {
		urls = append(urls, feed.url)
	}
	results, err := c.fetchBatch(ctx, urls)
	if err != nil {
		return err
	}
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		s.feeds[i].markup = res.Markup
	}
	s.state = StateFeedsDownloaded
	return nil
}

/// generateArticles is the heavy stage: it gathers candidate article URLs
// from feeds, sitemaps and category anchors, fetches them as one batch,
// groups the parsed documents by structure, and resolves each group with
// full heuristics for the representative and template replay for the
// siblings.
func (c *Crawler) generateArticles(ctx context.Context, s *Source) error {
	if err := c.collectCandidates(ctx, s); err != nil {
		return err
	}

	results, err := c.fetchBatch(ctx, s.candidates)
	if err != nil {
		return err
	}

	type grouped struct {
		key  string
		docs []*newshound.Document
	}
	order := make(map[string]*grouped)
	var groups []*grouped
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		doc, err := c.DOM.Parse(res.Markup, res.URL)
		if err != nil {
			continue
		}
		key := GroupKey(res.URL)
		g, ok := order[key]
		if !ok {
			g = &grouped{key: key}
			order[key] = g
			groups = append(groups, g)
		}
		g.docs = append(g.docs, doc)
	}

	for _, g := range groups {
		// The first parsed document is the group's representative; its
		// extraction becomes the template for every sibling.
		template := c.ResolveArticle(g.docs[0])
		c.addArticle(s, g.key, template)

		for _, doc := range g.docs[1:] {
			article, err := c.Templates.Apply(template, doc)
			if err != nil {
				if newshound.ErrorCode(err) != newshound.EMISMATCH {
					continue
				}
				if c.Config.OnMismatch == newshound.SiblingSkip {
					continue
				}
				article = c.ResolveArticle(doc)
			} else {
				article.ID = uuid.NewString()
				article.LinkHash = LinkHash(doc.URL)
			}
			c.addArticle(s, g.key, article)
		}
	}

	s.state = StateArticlesGenerated
	return nil
}

// format renders each article's winning content node to Markdown. Without
// a Converter the stage is a no-op but still terminal.
func (c *Crawler) format(ctx context.Context, s *Source) error {
	if c.Converter != nil {
		for _, key := range s.groupOrder {
			for _, article := range s.groups[key] {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.formatArticle(article)
			}
		}
	}
	s.state = StateFormatted
	return nil
}

func (c *Crawler) formatArticle(article *newshound.Article) {
	var markup string
	switch {
	case article.Content.Element != nil:
		var b strings.Builder
		if err := html.Render(&b, article.Content.Element); err != nil {
			return
		}
		markup = b.String()
	case article.Content.Text != "":
		// Templated articles carry joined text rather than a live node.
		var b strings.Builder
		for _, line := range strings.Split(article.Content.Text, "\n") {
			b.WriteString("<p>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</p>")
		}
		markup = b.String()
	default:
		return
	}
	if markdown, err := c.Converter.Convert(markup); err == nil {
		article.Markdown = markdown
	}
}

// collectCandidates fills s.candidates from feed items, the sitemap and
// category anchors, deduplicated in first-seen order.
func (c *Crawler) collectCandidates(ctx context.Context, s *Source) error {
	base, err := url.Parse(s.URL)
	if err != nil {
		return err
	}
	seen := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)
	add := func(candidate string) {
		key := normalizeURL(candidate)
		if key == "" || seen.TestAndAdd(key) {
			return
		}
		s.candidates = append(s.candidates, candidate)
	}
	// Category and feed pages are not articles themselves.
	seen.Add(normalizeURL(s.URL))
	for _, cat := range s.categories {
		seen.Add(normalizeURL(cat.url))
	}
	for _, feed := range s.feeds {
		seen.Add(normalizeURL(feed.url))
	}

	for _, feed := range s.feeds {
		if feed.markup == "" {
			continue
		}
		links, err := c.Feeds.ParseFeed(ctx, feed.markup)
		if err != nil {
			continue
		}
		for _, link := range links {
			add(link)
		}
	}

	if c.Sitemaps != nil {
		if urls, err := c.Sitemaps.DiscoverURLs(ctx, s.URL, nil); err == nil {
			for _, u := range urls {
				add(u)
			}
		}
	}

	for _, cat := range s.categories {
		if cat.doc == nil {
			continue
		}
		for _, link := range titledAnchorHrefs(c.DOM, cat.doc, base) {
			if sameHost(link, base) {
				add(link.String())
			}
		}
	}

	return nil
}

// ResolveArticle runs the full heuristic pipeline on one document. It
// never fails: fields no strategy could resolve stay zero.
func (c *Crawler) ResolveArticle(doc *newshound.Document) *newshound.Article {
	article := &newshound.Article{
		ID:       uuid.NewString(),
		URL:      doc.URL,
		LinkHash: LinkHash(doc.URL),
	}
	article.Title = c.Resolver.ResolveTitle(doc)
	article.Authors = c.Resolver.ResolveAuthors(doc)
	article.Language = c.Resolver.ResolveLanguage(doc)
	article.Favicon = c.Resolver.ResolveFavicon(doc)
	article.Description = c.Resolver.ResolveDescription(doc)
	article.Keywords = c.Resolver.ResolveKeywords(doc)
	article.Canonical = c.Resolver.ResolveCanonical(doc)
	article.Tags = c.Resolver.ResolveTags(doc)
	article.Metadata = c.Resolver.ResolveMetadata(doc)
	article.PublishDate = c.Resolver.ResolvePublishDate(doc.URL, doc)

	cleaned := c.DOM.Clean(doc)
	article.Content = c.Scorer.ScoreContent(cleaned)
	article.Videos = c.Resolver.ResolveVideos(cleaned, article.Content)
	return article
}

func (c *Crawler) addArticle(s *Source, key string, article *newshound.Article) {
	if _, ok := s.groups[key]; !ok {
		s.groupOrder = append(s.groupOrder, key)
	}
	s.groups[key] = append(s.groups[key], article)
}

// fetchBatch rate limits per distinct host, then issues the URLs as one
// FetchMany batch. A nil result slice with nil error means no URLs.
//
/// A timeout on any entry fails the whole batch: the site is not keeping
// up, and a stage built from whichever entries happened to finish would
// be a partial per-document result rather than a truncated pipeline.
// Other per-URL failures stay in their entries for the caller to skip.
func (c *Crawler) fetchBatch(ctx context.Context, urls []string) ([]newshound.FetchResult, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	if c.RateLimiter != nil {
		waited := make(map[string]bool)
		for _, u := range urls {
			parsed, err := url.Parse(u)
			if err != nil || waited[parsed.Host] {
				continue
			}
			waited[parsed.Host] = true
			if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
				return nil, err
			}
		}
	}
	results, err := c.Fetcher.FetchMany(ctx, urls)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if newshound.ErrorCode(res.Err) == newshound.ETIMEOUT {
			return nil, res.Err
		}
	}
	return results, nil
}

func (c *Crawler) waitForHost(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return c.RateLimiter.Wait(ctx, parsed.Host)
}

func (c *Crawler) retryDelays() []time.Duration {
	if c.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return c.RetryDelays
}
