package crawl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// GroupKey derives the domain-group key for a candidate article URL:
// normalized host plus the first path segment. Pages sharing a key are
// assumed to share page structure, which is what makes template replay
// worth attempting; a mismatch error is the safety net when the
// assumption fails.
func GroupKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := normalizeHost(parsed.Host)
	segments := pathSegments(parsed.Path)
	if len(segments) == 0 {
		return host
	}
	return host + "/" + strings.ToLower(segments[0])
}

// normalizeURL canonicalizes a URL for duplicate detection: lowercased
// scheme and host, www. stripped, fragment dropped, trailing slash
// trimmed. Returns "" for unparsable input.
func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	normalized := strings.ToLower(parsed.Scheme) + "://" + normalizeHost(parsed.Host) + strings.TrimSuffix(parsed.Path, "/")
	if parsed.RawQuery != "" {
		normalized += "?" + parsed.RawQuery
	}
	return normalized
}

// LinkHash fingerprints a URL with xxhash for cheap duplicate checks in
// downstream consumers.
func LinkHash(rawURL string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(rawURL))
}
