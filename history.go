package imdbsearch

import (
	"context"
	"time"
)

// SearchKind identifies which search page produced a history entry.
type SearchKind string

// SearchKind constants.
const (
	KindTitle SearchKind = "title"
	KindFind  SearchKind = "find"
)

// HistoryEntry records one search that was run.
type HistoryEntry struct {
	ID         string     `json:"id"`
	Kind       SearchKind `json:"kind"`
	Query      string     `json:"query"`
	Start      int        `json:"start"`
	Count      int        `json:"count"`
	Results    int        `json:"results"`
	PageHash   string     `json:"pageHash"`
	SearchedAt time.Time  `json:"searchedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	if e.Kind != KindTitle && e.Kind != KindFind {
		return Errorf(EINVALID, "unknown search kind %q", e.Kind)
	}
	if e.Query == "" {
		return Errorf(EINVALID, "history query required")
	}
	return nil
}

// HistoryService represents a service for recording searches.
type HistoryService interface {
	// CreateEntry records a search. ID and SearchedAt are assigned.
	CreateEntry(ctx context.Context, entry *HistoryEntry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if entry does not exist.
	DeleteEntry(ctx context.Context, id string) error

	// ClearEntries removes every entry and reports how many were removed.
	ClearEntries(ctx context.Context) (int, error)
}

// HistoryFilter represents a filter for FindEntries.
type HistoryFilter struct {
	Kind  *SearchKind `json:"kind"`
	Query *string     `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchObservation describes a completed fetch and parse.
type SearchObservation struct {
	Kind     SearchKind
	Query    string
	URL      string
	Results  int
	PageHash string
}

// SearchObserver is notified after each successful search.
type SearchObserver func(ctx context.Context, obs SearchObservation)

// RecordSearches returns an observer that stores every observed search in
// svc. Title searches carry their page bounds from q. Recording failures
// are passed to onErr, which may be nil.
func RecordSearches(svc HistoryService, q TitleQuery, onErr func(error)) SearchObserver {
	return func(ctx context.Context, obs SearchObservation) {
		entry := &HistoryEntry{
			Kind:     obs.Kind,
			Query:    obs.Query,
			Results:  obs.Results,
			PageHash: obs.PageHash,
		}
		if obs.Kind == KindTitle {
			entry.Start, entry.Count = q.Start, q.Count
		}
		if err := svc.CreateEntry(ctx, entry); err != nil && onErr != nil {
			onErr(err)
		}
	}
}
