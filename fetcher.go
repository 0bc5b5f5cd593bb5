package newshound

import "context"

// Fetcher retrieves raw markup from URLs.
//
// FetchMany issues one pipeline stage's URLs as a batch; implementations
// may parallelize internally but must return responses aligned with the
// input slice, so each response stays paired with its originating URL.
// A per-fetch timeout is the only cancellation signal the core recognizes;
// implementations report it as an ETIMEOUT error.
type Fetcher interface {
	// FetchOne retrieves the markup for a single URL.
	FetchOne(ctx context.Context, url string) (string, error)

	// FetchMany retrieves markup for all URLs. The result slice has the
	// same length and order as urls; entries with a non-nil Err carry no
	// markup. A batch-level error (e.g. context timeout) aborts the
	// whole stage.
	FetchMany(ctx context.Context, urls []string) ([]FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// FetchResult pairs one batched response with its originating URL.
type FetchResult struct {
	URL    string
	Markup string
	Err    error
}

// DomainLimiter rate limits requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
