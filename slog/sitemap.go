package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/newshoundlabs/newshound"
)

// Ensure LoggingSitemapService implements newshound.SitemapService.
var _ newshound.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with discovery logging.
// Sitemap discovery is best-effort in the crawl pipeline, so failures are
// logged at warn level rather than surfaced louder.
type LoggingSitemapService struct {
	next   newshound.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next newshound.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the outcome.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *newshound.URLFilter) ([]string, error) {
	begin := time.Now()
	urls, err := s.next.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		s.logger.Warn("sitemap discovery failed",
			"site", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("sitemap discovery",
		"site", baseURL,
		"urls", len(urls),
		"filtered", filter != nil,
		"duration", time.Since(begin),
	)
	return urls, nil
}
