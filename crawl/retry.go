package crawl

import (
	"context"
	"time"

	"github.com/newshoundlabs/newshound"
)

// FetchFunc fetches the markup for one URL. Fetcher.FetchOne satisfies it.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches a URL, retrying transient failures once per
// backoff delay. Timeouts and invalid URLs are never retried: a timeout
// truncates the pipeline at the stage boundary, and a bad URL does not
// improve with waiting.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		markup, err := fetch(ctx, url)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if attempt >= len(delays) || !retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}

// retryable reports whether a fetch error is worth another attempt.
func retryable(err error) bool {
	switch newshound.ErrorCode(err) {
	case newshound.ETIMEOUT, newshound.EINVALID:
		return false
	}
	return true
}
