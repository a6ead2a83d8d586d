package imdbsearch

import (
	"context"
	"fmt"
	"net/url"
)

// Title listing page bounds accepted by the site.
const (
	MinTitleStart = 1
	MinTitleCount = 1
	MaxTitleCount = 255
)

// TitleQuery parameterizes a title listing search.
type TitleQuery struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// DefaultTitleQuery returns the first page of ten results.
func DefaultTitleQuery() TitleQuery {
	return TitleQuery{Start: 1, Count: 10}
}

// Validate returns an error if start or count is out of range.
func (q TitleQuery) Validate() error {
	if q.Start < MinTitleStart {
		return Errorf(EINVALID, "start must be at least %d", MinTitleStart)
	}
	if q.Count < MinTitleCount || q.Count > MaxTitleCount {
		return Errorf(EINVALID, "count must be between %d and %d", MinTitleCount, MaxTitleCount)
	}
	return nil
}

// URL returns the title listing URL for an already-encoded query.
func (q TitleQuery) URL(base, encodedQuery string) string {
	return fmt.Sprintf("%s/search/title/?title=%s&start=%d&count=%d", base, encodedQuery, q.Start, q.Count)
}

// FindQuery parameterizes a quick-find search. It has no options.
type FindQuery struct{}

// URL returns the quick-find URL for an already-encoded query.
func (FindQuery) URL(base, encodedQuery string) string {
	return fmt.Sprintf("%s/find?s=tt&q=%s", base, encodedQuery)
}

// EncodeQuery escapes free text for use as a query-string value.
func EncodeQuery(query string) string {
	return url.QueryEscape(query)
}

// SearchService fetches and parses search pages.
type SearchService interface {
	// SearchTitles fetches and parses one title listing page.
	// Returns EINVALID if query is empty or q is out of range.
	SearchTitles(ctx context.Context, query string, q TitleQuery) (*TitleSearch, error)

	// FindTitles fetches and parses the quick-find page for query.
	// Returns EINVALID if query is empty.
	FindTitles(ctx context.Context, query string) (*FoundResults, error)
}
