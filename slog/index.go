package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingIndex implements docset.IndexStore.
var _ docset.IndexStore = (*LoggingIndex)(nil)

// LoggingIndex wraps an IndexStore with logging. Individual inserts are
// logged at debug level.
type LoggingIndex struct {
	next   docset.IndexStore
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next docset.IndexStore, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Create delegates to the wrapped index and logs the operation.
func (s *LoggingIndex) Create(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("index create",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Create(ctx)
}

// Insert delegates to the wrapped index and logs the outcome.
func (s *LoggingIndex) Insert(ctx context.Context, entry *docset.Entry) (result docset.InsertResult, err error) {
	defer func() {
		s.logger.Debug("index insert",
			"name", entry.Name,
			"type", entry.Kind.PersistedType(),
			"path", entry.Path,
			"result", result.String(),
			"err", err,
		)
	}()
	return s.next.Insert(ctx, entry)
}

// Rows delegates to the wrapped index and logs the row count.
func (s *LoggingIndex) Rows(ctx context.Context) (rows []docset.Row, err error) {
	defer func(begin time.Time) {
		s.logger.Info("index rows",
			"count", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rows(ctx)
}

// Close delegates to the wrapped index.
func (s *LoggingIndex) Close() error {
	return s.next.Close()
}
