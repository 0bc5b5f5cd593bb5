package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/newshoundlabs/newshound"
	"github.com/newshoundlabs/newshound/crawl"
	"github.com/newshoundlabs/newshound/extract"
	"github.com/newshoundlabs/newshound/gofeed"
	"github.com/newshoundlabs/newshound/htmlquery"
	"github.com/newshoundlabs/newshound/mock"
	"github.com/newshoundlabs/newshound/stopwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCrawler wires a crawler against an in-memory site: the mock fetcher
// serves markup from pages and fails every other URL. Extraction runs
// through the real resolver, scorer and template engine so the pipeline
// is exercised end to end without a network.
func newCrawler(pages map[string]string, config newshound.Config) *crawl.Crawler {
	dom := htmlquery.NewDOM()
	return &crawl.Crawler{
		DOM:       dom,
		Fetcher:   newSiteFetcher(pages),
		Resolver:  extract.NewResolver(dom, config),
		Scorer:    extract.NewScorer(dom, stopwords.NewAnalyzer(config.LanguageOrDefault())),
		Templates: extract.NewEngine(dom),
		Feeds:     gofeed.NewParser(),
		Config:    config,
		// No delays so failing fetches do not retry in tests.
		RetryDelays: []time.Duration{},
	}
}

func newSiteFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchOneFn: func(ctx context.Context, url string) (string, error) {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			markup, ok := pages[url]
			if !ok {
				return "", newshound.Errorf(newshound.EUNAVAILABLE, "no page at %s", url)
			}
			return markup, nil
		},
	}
}

const articleBody = `<div class="story">
<p>this is about what we should have been doing with all of them here</p>
<p>and now for something that we can all be very happy about indeed today</p>
<p>they said it was not possible but we did it anyway with them all</p>
</div>`

func articlePage(title string) string {
	return `<html lang="en"><head>
<title>` + title + `</title>
<meta property="og:title" content="` + title + `">
<meta name="description" content="A test story.">
</head><body>
<h1>` + title + `</h1>
` + articleBody + `
</body></html>`
}

// newsSite is a small but complete site: a homepage linking two category
// sections and an RSS feed, categories with titled article anchors, and
// three articles split across two structural groups.
func newsSite() map[string]string {
	return map[string]string{
		"https://example.com/": `<html><head>
<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head><body>
<a href="/world">World</a>
<a href="/sports">Sports</a>
<a href="/about">About us</a>
<a href="https://other.example.org/world">Elsewhere</a>
</body></html>`,
		"https://example.com/world": `<html><body>
<a href="/world/summit-ends" title="Summit ends">Summit ends</a>
</body></html>`,
		"https://example.com/sports": `<html><body>
<a href="/sports/final-score" title="Final score">Final score</a>
</body></html>`,
		"https://example.com/feed.xml": `<rss version="2.0"><channel>
<title>Example News</title>
<item><title>Summit ends</title><link>https://example.com/world/summit-ends</link></item>
<item><title>Talks resume</title><link>https://example.com/world/talks-resume</link></item>
</channel></rss>`,
		"https://example.com/world/summit-ends":  articlePage("Summit Ends Without Deal"),
		"https://example.com/world/talks-resume": articlePage("Talks Resume In Capital"),
		"https://example.com/sports/final-score": articlePage("Final Score Settles Title"),
	}
}

func TestCrawler_Process(t *testing.T) {
	t.Parallel()

	t.Run("groups articles by host and first path segment", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		groups, err := c.Process(context.Background(), "https://example.com/")

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Len(t, groups["example.com/world"], 2)
		require.Len(t, groups["example.com/sports"], 1)
	})

	t.Run("representative is resolved and siblings are templated", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		world := groups["example.com/world"]
		require.Len(t, world, 2)

		rep := world[0]
		assert.False(t, rep.Templated)
		assert.Equal(t, "https://example.com/world/summit-ends", rep.URL)
		assert.NotEmpty(t, rep.ID)
		assert.NotEmpty(t, rep.LinkHash)
		assert.Contains(t, rep.Content.Text, "not possible")

		sibling := world[1]
		assert.True(t, sibling.Templated)
		assert.Equal(t, "https://example.com/world/talks-resume", sibling.URL)
		assert.Equal(t, rep.Title.Path, sibling.Title.Path)
		assert.Contains(t, sibling.Title.Text, "Talks Resume")
	})

	t.Run("duplicate candidates are processed once", func(t *testing.T) {
		t.Parallel()

		// The summit article appears in both the feed and the category
		// anchors; it must yield exactly one article.
		c := newCrawler(newsSite(), newshound.Config{})
		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		var summits int
		for _, article := range groups["example.com/world"] {
			if article.URL == "https://example.com/world/summit-ends" {
				summits++
			}
		}
		assert.Equal(t, 1, summits)
	})

	t.Run("chrome links are not treated as categories", func(t *testing.T) {
		t.Parallel()

		pages := newsSite()
		c := newCrawler(pages, newshound.Config{})

		var requested []string
		inner := c.Fetcher
		c.Fetcher = &mock.Fetcher{
			FetchOneFn: func(ctx context.Context, url string) (string, error) {
				requested = append(requested, url)
				return inner.FetchOne(ctx, url)
			},
		}

		_, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		// /about and the off-site link are on the homepage but must
		// never be fetched as categories.
		assert.NotContains(t, requested, "https://example.com/about")
		assert.NotContains(t, requested, "https://other.example.org/world")
	})

	t.Run("invalid site URL", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(nil, newshound.Config{})
		_, err := c.Process(context.Background(), "not a url")

		require.Error(t, err)
		assert.Equal(t, newshound.EINVALID, newshound.ErrorCode(err))
	})
}

func TestCrawler_SiblingMismatch(t *testing.T) {
	t.Parallel()

	// A sibling whose page shares the group key but not the DOM shape:
	// the representative's locators match nothing in it.
	mismatchSite := func() map[string]string {
		pages := newsSite()
		pages["https://example.com/world/talks-resume"] = `<html><body>
<article><span>Completely different markup with no shared locators at all</span></article>
</body></html>`
		return pages
	}

	t.Run("fallback policy re-resolves the sibling", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(mismatchSite(), newshound.Config{OnMismatch: newshound.SiblingFallback})
		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		world := groups["example.com/world"]
		require.Len(t, world, 2)
		assert.False(t, world[1].Templated)
		assert.Equal(t, "https://example.com/world/talks-resume", world[1].URL)
	})

	t.Run("skip policy drops the sibling", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(mismatchSite(), newshound.Config{OnMismatch: newshound.SiblingSkip})
		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		world := groups["example.com/world"]
		require.Len(t, world, 1)
		assert.Equal(t, "https://example.com/world/summit-ends", world[0].URL)
	})
}

func TestCrawler_StageTruncation(t *testing.T) {
	t.Parallel()

	t.Run("homepage fetch failure leaves the source in Init", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(map[string]string{}, newshound.Config{})
		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)

		c.Crawl(context.Background(), s)

		assert.Equal(t, crawl.StateInit, s.State())
		assert.Empty(t, s.Articles())
	})

	t.Run("a fetch timeout aborts the article stage for the whole site", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		inner := c.Fetcher
		c.Fetcher = &mock.Fetcher{
			FetchOneFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/world/talks-resume" {
					return "", newshound.Errorf(newshound.ETIMEOUT, "fetch %s: deadline exceeded", url)
				}
				return inner.FetchOne(ctx, url)
			},
		}

		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)

		c.Crawl(context.Background(), s)

		// One timed-out candidate truncates the stage rather than
		// yielding the articles that happened to arrive in time.
		assert.Equal(t, crawl.StateFeedsDownloaded, s.State())
		assert.Empty(t, s.Articles())
	})

	t.Run("a plain fetch failure only drops its own candidate", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		inner := c.Fetcher
		c.Fetcher = &mock.Fetcher{
			FetchOneFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/world/talks-resume" {
					return "", newshound.Errorf(newshound.EUNAVAILABLE, "fetch %s: 503", url)
				}
				return inner.FetchOne(ctx, url)
			},
		}

		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)

		c.Crawl(context.Background(), s)

		assert.Equal(t, crawl.StateFormatted, s.State())
		require.Len(t, s.Articles()["example.com/world"], 1)
		require.Len(t, s.Articles()["example.com/sports"], 1)
	})

	t.Run("unparsable feeds still yield category articles", func(t *testing.T) {
		t.Parallel()

		pages := newsSite()
		pages["https://example.com/feed.xml"] = "not a feed"
		c := newCrawler(pages, newshound.Config{})

		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		// The feed-only article is gone; anchor-discovered ones remain.
		require.Len(t, groups["example.com/world"], 1)
		require.Len(t, groups["example.com/sports"], 1)
	})

	t.Run("canceled context truncates without panicking", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newCrawler(newsSite(), newshound.Config{})
		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)

		c.Crawl(ctx, s)

		assert.Less(t, s.State(), crawl.StateFormatted)
		assert.Empty(t, s.Articles())
	})

	t.Run("completed pipeline reaches the terminal state", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)

		c.Crawl(context.Background(), s)

		assert.Equal(t, crawl.StateFormatted, s.State())
	})
}

func TestCrawler_Format(t *testing.T) {
	t.Parallel()

	t.Run("converter output lands on every article", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		c.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				require.NotEmpty(t, html)
				return "converted", nil
			},
		}

		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		for _, articles := range groups {
			for _, article := range articles {
				assert.Equal(t, "converted", article.Markdown)
			}
		}
	})

	t.Run("no converter leaves markdown empty", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(newsSite(), newshound.Config{})
		groups, err := c.Process(context.Background(), "https://example.com/")
		require.NoError(t, err)

		for _, articles := range groups {
			for _, article := range articles {
				assert.Empty(t, article.Markdown)
			}
		}
	})
}

func TestCrawler_SitemapSupplement(t *testing.T) {
	t.Parallel()

	pages := newsSite()
	pages["https://example.com/world/late-addition"] = articlePage("Late Addition Story")

	c := newCrawler(pages, newshound.Config{})
	c.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(_ context.Context, baseURL string, _ *newshound.URLFilter) ([]string, error) {
			assert.Equal(t, "https://example.com/", baseURL)
			return []string{"https://example.com/world/late-addition"}, nil
		},
	}

	groups, err := c.Process(context.Background(), "https://example.com/")
	require.NoError(t, err)
	require.Len(t, groups["example.com/world"], 3)
}

func TestGroupKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/world/summit-ends", "example.com/world"},
		{"https://www.example.com/World/other", "example.com/world"},
		{"https://example.com/", "example.com"},
		{"https://example.com", "example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, crawl.GroupKey(tt.url), tt.url)
	}
}

func TestLinkHash(t *testing.T) {
	t.Parallel()

	a := crawl.LinkHash("https://example.com/world/summit-ends")
	b := crawl.LinkHash("https://example.com/world/talks-resume")

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, crawl.LinkHash("https://example.com/world/summit-ends"))
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	t.Run("valid URL starts in Init", func(t *testing.T) {
		t.Parallel()

		s, err := crawl.NewSource("https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, crawl.StateInit, s.State())
		assert.NotNil(t, s.Articles())
	})

	t.Run("rejects URLs without a host or scheme", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"", "example.com", "ftp://example.com", ":broken"} {
			_, err := crawl.NewSource(bad)
			require.Error(t, err, bad)
			assert.Equal(t, newshound.EINVALID, newshound.ErrorCode(err))
		}
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Init", crawl.StateInit.String())
	assert.Equal(t, "ArticlesGenerated", crawl.StateArticlesGenerated.String())
	assert.Equal(t, "Formatted", crawl.StateFormatted.String())
	assert.Equal(t, "Unknown", crawl.State(99).String())
}
