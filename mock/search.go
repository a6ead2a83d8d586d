package mock

import (
	"context"

	"github.com/fwojciec/imdbsearch"
)

var _ imdbsearch.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of imdbsearch.SearchService.
type SearchService struct {
	SearchTitlesFn func(ctx context.Context, query string, q imdbsearch.TitleQuery) (*imdbsearch.TitleSearch, error)
	FindTitlesFn   func(ctx context.Context, query string) (*imdbsearch.FoundResults, error)
}

func (s *SearchService) SearchTitles(ctx context.Context, query string, q imdbsearch.TitleQuery) (*imdbsearch.TitleSearch, error) {
	return s.SearchTitlesFn(ctx, query, q)
}

func (s *SearchService) FindTitles(ctx context.Context, query string) (*imdbsearch.FoundResults, error) {
	return s.FindTitlesFn(ctx, query)
}
