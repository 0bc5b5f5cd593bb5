// Package http provides an HTTP-based implementation of newshound.Fetcher
// for fetching content from sites that don't require JavaScript rendering.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/newshoundlabs/newshound"
	"golang.org/x/sync/errgroup"
)

// Ensure Fetcher implements newshound.Fetcher at compile time.
var _ newshound.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves markup from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to newshound.DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithConcurrency bounds the number of parallel requests in FetchMany.
// Defaults to newshound.DefaultConcurrency if not specified.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		f.concurrency = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     newshound.DefaultFetchTimeout,
		concurrency: newshound.DefaultConcurrency,
		userAgent:   newshound.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchOne retrieves the markup for a single URL.
func (f *Fetcher) FetchOne(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newshound.Errorf(newshound.EINVALID, "build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", newshound.Errorf(newshound.ETIMEOUT, "fetch %s: %v", url, err)
		}
		return "", newshound.Errorf(newshound.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newshound.Errorf(newshound.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newshound.Errorf(newshound.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// FetchMany retrieves markup for all URLs in parallel, bounded by the
// configured concurrency. Results align index-for-index with urls;
// per-URL failures land in the result entry rather than aborting the
// batch.
func (f *Fetcher) FetchMany(ctx context.Context, urls []string) ([]newshound.FetchResult, error) {
	results := make([]newshound.FetchResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			markup, err := f.FetchOne(ctx, url)
			results[i] = newshound.FetchResult{URL: url, Markup: markup, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
