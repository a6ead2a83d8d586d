package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/imdbsearch"
)

// Ensure LoggingSearchService implements imdbsearch.SearchService.
var _ imdbsearch.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   imdbsearch.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next imdbsearch.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// SearchTitles delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) SearchTitles(ctx context.Context, query string, q imdbsearch.TitleQuery) (search *imdbsearch.TitleSearch, err error) {
	defer func(begin time.Time) {
		var count int
		if search != nil {
			count = len(search.Items)
		}
		s.logger.Info("title search",
			"query", query,
			"start", q.Start,
			"count", q.Count,
			"items", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchTitles(ctx, query, q)
}

// FindTitles delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) FindTitles(ctx context.Context, query string) (results *imdbsearch.FoundResults, err error) {
	defer func(begin time.Time) {
		var count int
		if results != nil {
			count = len(results.Items)
		}
		s.logger.Info("find",
			"query", query,
			"items", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTitles(ctx, query)
}
