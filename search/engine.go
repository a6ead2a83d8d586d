// Package search dispatches queries to the site: it builds request URLs,
// fetches pages through a Fetcher and hands them to the matching parser.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/imdbsearch"
	"golang.org/x/sync/errgroup"
)

// Ensure Engine implements imdbsearch.SearchService at compile time.
var _ imdbsearch.SearchService = (*Engine)(nil)

// DefaultConcurrency is the number of find queries FindAll runs at once
// when no limit is given.
const DefaultConcurrency = 4

// Engine implements imdbsearch.SearchService on top of a Fetcher and the
// two page parsers.
type Engine struct {
	Fetcher imdbsearch.Fetcher
	Titles  imdbsearch.TitleParser
	Finds   imdbsearch.FindParser

	// BaseURL is the site root without a trailing slash.
	// Defaults to imdbsearch.DefaultBaseURL.
	BaseURL string

	// RetryDelays are the waits between fetch attempts.
	// Nil means a single attempt.
	RetryDelays []time.Duration

	// Observer, if set, is called after every successful fetch and parse.
	Observer imdbsearch.SearchObserver
}

// SearchTitles fetches and parses one title listing page.
func (e *Engine) SearchTitles(ctx context.Context, query string, q imdbsearch.TitleQuery) (*imdbsearch.TitleSearch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, imdbsearch.Errorf(imdbsearch.EINVALID, "query required")
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	url := q.URL(e.baseURL(), imdbsearch.EncodeQuery(query))
	html, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	search, err := e.Titles.ParseTitleListing(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	e.observe(ctx, imdbsearch.SearchObservation{
		Kind:     imdbsearch.KindTitle,
		Query:    query,
		URL:      url,
		Results:  len(search.Items),
		PageHash: PageHash(html),
	})
	return search, nil
}

// FindTitles fetches and parses the quick-find page for query.
func (e *Engine) FindTitles(ctx context.Context, query string) (*imdbsearch.FoundResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, imdbsearch.Errorf(imdbsearch.EINVALID, "query required")
	}

	url := imdbsearch.FindQuery{}.URL(e.baseURL(), imdbsearch.EncodeQuery(query))
	html, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	results, err := e.Finds.ParseFindResults(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	e.observe(ctx, imdbsearch.SearchObservation{
		Kind:     imdbsearch.KindFind,
		Query:    query,
		URL:      url,
		Results:  len(results.Items),
		PageHash: PageHash(html),
	})
	return results, nil
}

// FindAll runs FindTitles for every query, at most concurrency at a time.
// Results are returned in query order. The first failure cancels the
// remaining queries and is returned.
func FindAll(ctx context.Context, svc imdbsearch.SearchService, queries []string, concurrency int) ([]*imdbsearch.FoundResults, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*imdbsearch.FoundResults, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, query := range queries {
		g.Go(func() error {
			found, err := svc.FindTitles(gctx, query)
			if err != nil {
				return fmt.Errorf("find %q: %w", query, err)
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// PageHash returns the hex xxhash of a fetched page.
func PageHash(html string) string {
	return strconv.FormatUint(xxhash.Sum64String(html), 16)
}

func (e *Engine) fetch(ctx context.Context, url string) (string, error) {
	html, err := fetchWithRetry(ctx, url, e.Fetcher.Fetch, e.RetryDelays)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return html, nil
}

func (e *Engine) observe(ctx context.Context, obs imdbsearch.SearchObservation) {
	if e.Observer != nil {
		e.Observer(ctx, obs)
	}
}

func (e *Engine) baseURL() string {
	if e.BaseURL == "" {
		return imdbsearch.DefaultBaseURL
	}
	return strings.TrimSuffix(e.BaseURL, "/")
}
