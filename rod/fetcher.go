// Package rod provides a browser-rendering implementation of
// newshound.Fetcher for news sites that build their article bodies with
// JavaScript.
package rod

import (
	"context"
	"errors"

	"github.com/go-rod/rod/lib/proto"
	"github.com/newshoundlabs/newshound"
)

// Ensure Fetcher implements newshound.Fetcher at compile time.
var _ newshound.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered markup from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines;
// pages run sequentially within one browser to bound memory use.
type Fetcher struct {
	manager *browserManager
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...ManagerOption) (*Fetcher, error) {
	manager, err := newBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager}, nil
}

// FetchOne navigates to the URL and returns the rendered markup.
func (f *Fetcher) FetchOne(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.browserFor().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", newshound.Errorf(newshound.EUNAVAILABLE, "open page for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", wrapNavErr(url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapNavErr(url, err)
	}

	markup, err := page.HTML()
	if err != nil {
		return "", wrapNavErr(url, err)
	}

	f.manager.pageDone()
	return markup, nil
}

// FetchMany renders each URL in turn. Results align index-for-index with
// urls; per-URL failures land in the result entry rather than aborting
// the batch.
func (f *Fetcher) FetchMany(ctx context.Context, urls []string) ([]newshound.FetchResult, error) {
	results := make([]newshound.FetchResult, len(urls))
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		markup, err := f.FetchOne(ctx, url)
		results[i] = newshound.FetchResult{URL: url, Markup: markup, Err: err}
	}
	return results, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

func wrapNavErr(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newshound.Errorf(newshound.ETIMEOUT, "render %s: %v", url, err)
	}
	return newshound.Errorf(newshound.EUNAVAILABLE, "render %s: %v", url, err)
}
