package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/imdbsearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ imdbsearch.HistoryService = (*HistoryService)(nil)

// HistoryService implements imdbsearch.HistoryService using SQLite.
type HistoryService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, Now: time.Now}
}

// CreateEntry records a search with a generated ID and timestamp.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *imdbsearch.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.SearchedAt = s.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, kind, term, start, count, results, page_hash, searched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, string(entry.Kind), entry.Query, entry.Start, entry.Count, entry.Results,
		entry.PageHash, entry.SearchedAt.Format(time.RFC3339))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter imdbsearch.HistoryFilter) ([]*imdbsearch.HistoryEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, term, start, count, results, page_hash, searched_at FROM history WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Query != nil {
		query.WriteString(" AND term = ?")
		args = append(args, *filter.Query)
	}

	// rowid breaks ties between entries recorded within the same second.
	query.WriteString(" ORDER BY searched_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*imdbsearch.HistoryEntry{}
	for rows.Next() {
		var entry imdbsearch.HistoryEntry
		var kind, searchedAt string

		if err := rows.Scan(&entry.ID, &kind, &entry.Query, &entry.Start, &entry.Count,
			&entry.Results, &entry.PageHash, &searchedAt); err != nil {
			return nil, err
		}

		entry.Kind = imdbsearch.SearchKind(kind)
		entry.SearchedAt, err = parseRFC3339(searchedAt, "searched_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *HistoryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return imdbsearch.Errorf(imdbsearch.ENOTFOUND, "history entry not found")
	}

	return nil
}

// ClearEntries removes every entry.
func (s *HistoryService) ClearEntries(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}
