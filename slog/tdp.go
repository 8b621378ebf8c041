package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/smallsizeleague/sslmcp"
)

var _ sslmcp.TDPService = (*LoggingTDPService)(nil)

// LoggingTDPService wraps a TDPService with operation logging.
type LoggingTDPService struct {
	next   sslmcp.TDPService
	logger *slog.Logger
}

// NewLoggingTDPService creates a new LoggingTDPService.
func NewLoggingTDPService(next sslmcp.TDPService, logger *slog.Logger) *LoggingTDPService {
	return &LoggingTDPService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the query outcome.
func (s *LoggingTDPService) Search(ctx context.Context, query string, paragraphs int) (result *sslmcp.TDPResult, err error) {
	defer func(begin time.Time) {
		found := 0
		if result != nil {
			found = len(result.Paragraphs)
		}
		s.logger.Info("tdp search",
			"query", query,
			"paragraphs", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, paragraphs)
}
