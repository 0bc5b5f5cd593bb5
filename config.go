package newshound

import "time"

// Default configuration values.
const (
	DefaultLanguage     = "en"
	DefaultFetchTimeout = 10 * time.Second
	DefaultConcurrency  = 10
	DefaultUserAgent    = "newshound/1.0"
)

// SiblingPolicy controls what the orchestrator does with a domain-group
// sibling whose template replay fails.
type SiblingPolicy int

const (
	// SiblingFallback re-runs the full heuristic pipeline on the sibling.
	SiblingFallback SiblingPolicy = iota

	// SiblingSkip drops the sibling from the group's results.
	SiblingSkip
)

// Config carries the explicit configuration value passed into resolver and
// orchestrator constructors. No global state; the zero value is usable via
// the accessor methods.
type Config struct {
	// Language selects the stop-word table, e.g. "en" or "vi".
	Language string

	// OnMismatch selects the sibling fallback policy.
	OnMismatch SiblingPolicy

	// FetchTimeout bounds each individual fetch.
	FetchTimeout time.Duration

	// Concurrency limits parallel fetches within a batch.
	Concurrency int

	// UserAgent identifies the crawler to origin servers.
	UserAgent string
}

// LanguageOrDefault returns the configured language, or DefaultLanguage.
func (c Config) LanguageOrDefault() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// FetchTimeoutOrDefault returns the configured timeout, or DefaultFetchTimeout.
func (c Config) FetchTimeoutOrDefault() time.Duration {
	if c.FetchTimeout <= 0 {
		return DefaultFetchTimeout
	}
	return c.FetchTimeout
}

// ConcurrencyOrDefault returns the configured concurrency, or DefaultConcurrency.
func (c Config) ConcurrencyOrDefault() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}

// UserAgentOrDefault returns the configured user agent, or DefaultUserAgent.
func (c Config) UserAgentOrDefault() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}
