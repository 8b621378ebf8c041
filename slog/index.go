package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with operation logging.
type LoggingIndex struct {
	next   sslmcp.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next sslmcp.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Upsert delegates to the wrapped index and logs the batch size and duration.
func (ix *LoggingIndex) Upsert(ctx context.Context, chunks []*sslmcp.Chunk) (err error) {
	defer func(begin time.Time) {
		ix.logger.Info("index upsert",
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.Upsert(ctx, chunks)
}

// Search delegates to the wrapped index and logs the query and result count.
func (ix *LoggingIndex) Search(ctx context.Context, query string, opts sslmcp.SearchOptions) (results []sslmcp.SearchResult, err error) {
	defer func(begin time.Time) {
		ix.logger.Info("index search",
			"query", query,
			"k", opts.K,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.Search(ctx, query, opts)
}

// Count delegates to the wrapped index.
func (ix *LoggingIndex) Count(ctx context.Context) (int, error) {
	return ix.next.Count(ctx)
}
