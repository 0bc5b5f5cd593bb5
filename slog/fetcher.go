// Package slog provides logging decorators for the service interfaces,
// built on the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newshoundlabs/newshound"
)

// Ensure LoggingFetcher implements newshound.Fetcher.
var _ newshound.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   newshound.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next newshound.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchOne logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) FetchOne(ctx context.Context, url string) (markup string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchOne(ctx, url)
}

// FetchMany logs the batch outcome and delegates to the wrapped fetcher.
func (f *LoggingFetcher) FetchMany(ctx context.Context, urls []string) (results []newshound.FetchResult, err error) {
	defer func(begin time.Time) {
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		f.logger.Info("fetch batch",
			"urls", len(urls),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchMany(ctx, urls)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
