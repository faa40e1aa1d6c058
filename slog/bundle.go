package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingBundle implements docset.Bundle.
var _ docset.Bundle = (*LoggingBundle)(nil)

// LoggingBundle wraps a Bundle with logging.
type LoggingBundle struct {
	next   docset.Bundle
	logger *slog.Logger
}

// NewLoggingBundle creates a new LoggingBundle.
func NewLoggingBundle(next docset.Bundle, logger *slog.Logger) *LoggingBundle {
	return &LoggingBundle{next: next, logger: logger}
}

// CreateSkeleton delegates to the wrapped bundle and logs the operation.
func (b *LoggingBundle) CreateSkeleton(layout *docset.Layout) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("create skeleton",
			"root", layout.Root(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.CreateSkeleton(layout)
}

// CopyDocuments delegates to the wrapped bundle and logs every file that
// was not copied.
func (b *LoggingBundle) CopyDocuments(layout *docset.Layout) (report *docset.CopyReport, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", layout.SourceDir,
			"destination", layout.DocumentsDir(),
			"duration", time.Since(begin),
			"err", err,
		}
		if report != nil {
			attrs = append(attrs,
				"copied", report.Copied,
				"skipped", len(report.Skipped),
				"failed", len(report.Failed),
			)
			for _, path := range report.Skipped {
				b.logger.Warn("copy skipped existing file", "path", path)
			}
			for _, f := range report.Failed {
				b.logger.Warn("copy failed", "path", f.Path, "err", f.Err)
			}
		}
		b.logger.Info("copy documents", attrs...)
	}(time.Now())
	return b.next.CopyDocuments(layout)
}

// FindListingPages delegates to the wrapped bundle and logs the page count.
func (b *LoggingBundle) FindListingPages(dir string) (pages []string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("find listing pages",
			"dir", dir,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.FindListingPages(dir)
}
