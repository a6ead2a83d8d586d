package mock

import (
	"context"

	"github.com/fwojciec/imdbsearch"
)

var _ imdbsearch.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of imdbsearch.HistoryService.
type HistoryService struct {
	CreateEntryFn  func(ctx context.Context, entry *imdbsearch.HistoryEntry) error
	FindEntriesFn  func(ctx context.Context, filter imdbsearch.HistoryFilter) ([]*imdbsearch.HistoryEntry, error)
	DeleteEntryFn  func(ctx context.Context, id string) error
	ClearEntriesFn func(ctx context.Context) (int, error)
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *imdbsearch.HistoryEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter imdbsearch.HistoryFilter) ([]*imdbsearch.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *HistoryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

func (s *HistoryService) ClearEntries(ctx context.Context) (int, error) {
	return s.ClearEntriesFn(ctx)
}
