// Package slog provides logging decorators for docset services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingExtractor implements docset.PageExtractor.
var _ docset.PageExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PageExtractor with logging.
type LoggingExtractor struct {
	next   docset.PageExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docset.PageExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, pagePath string, kind docset.Kind) (entries []*docset.Entry, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"page", pagePath,
			"kind", kind.Label(),
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, pagePath, kind)
}
