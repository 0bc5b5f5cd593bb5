// Package mock provides function-field mock implementations of the
// service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/newshoundlabs/newshound"
)

var _ newshound.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newshound.Fetcher.
type Fetcher struct {
	FetchOneFn  func(ctx context.Context, url string) (string, error)
	FetchManyFn func(ctx context.Context, urls []string) ([]newshound.FetchResult, error)
	CloseFn     func() error
}

func (f *Fetcher) FetchOne(ctx context.Context, url string) (string, error) {
	return f.FetchOneFn(ctx, url)
}

func (f *Fetcher) FetchMany(ctx context.Context, urls []string) ([]newshound.FetchResult, error) {
	if f.FetchManyFn != nil {
		return f.FetchManyFn(ctx, urls)
	}
	// Default to one FetchOne call per URL, failures recorded per entry.
	results := make([]newshound.FetchResult, len(urls))
	for i, url := range urls {
		markup, err := f.FetchOne(ctx, url)
		results[i] = newshound.FetchResult{URL: url, Markup: markup, Err: err}
	}
	return results, nil
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
