package slog

import (
	"log/slog"
	"time"

	"github.com/newshoundlabs/newshound"
)

// Ensure LoggingTemplateEngine implements newshound.TemplateEngine.
var _ newshound.TemplateEngine = (*LoggingTemplateEngine)(nil)

// LoggingTemplateEngine wraps a TemplateEngine with debug logging, making
// template mismatches visible during crawl runs.
type LoggingTemplateEngine struct {
	next   newshound.TemplateEngine
	logger *slog.Logger
}

// NewLoggingTemplateEngine creates a new LoggingTemplateEngine.
func NewLoggingTemplateEngine(next newshound.TemplateEngine, logger *slog.Logger) *LoggingTemplateEngine {
	return &LoggingTemplateEngine{next: next, logger: logger}
}

// Apply delegates to the wrapped engine and logs the replay outcome.
func (e *LoggingTemplateEngine) Apply(template *newshound.Article, doc *newshound.Document) (article *newshound.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if template != nil {
			attrs = append(attrs, "template", template.URL)
		}
		if doc != nil {
			attrs = append(attrs, "url", doc.URL)
		}
		if newshound.ErrorCode(err) == newshound.EMISMATCH {
			e.logger.Warn("template mismatch", attrs...)
			return
		}
		e.logger.Debug("template replay", attrs...)
	}(time.Now())
	return e.next.Apply(template, doc)
}
