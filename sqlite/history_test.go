package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/imdbsearch"
	"github.com/fwojciec/imdbsearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// clock returns a Now func that advances one minute per call.
func clock() func() time.Time {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestHistoryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()

		entry := &imdbsearch.HistoryEntry{
			Kind:     imdbsearch.KindTitle,
			Query:    "star wars",
			Start:    1,
			Count:    10,
			Results:  7,
			PageHash: "abc123",
		}

		err := svc.CreateEntry(ctx, entry)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.SearchedAt.IsZero())

		entries, err := svc.FindEntries(ctx, imdbsearch.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		got := entries[0]
		assert.Equal(t, entry.ID, got.ID)
		assert.Equal(t, imdbsearch.KindTitle, got.Kind)
		assert.Equal(t, "star wars", got.Query)
		assert.Equal(t, 1, got.Start)
		assert.Equal(t, 10, got.Count)
		assert.Equal(t, 7, got.Results)
		assert.Equal(t, "abc123", got.PageHash)
		assert.True(t, entry.SearchedAt.Equal(got.SearchedAt))
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		err := svc.CreateEntry(context.Background(), &imdbsearch.HistoryEntry{Kind: imdbsearch.KindFind})

		assert.Equal(t, imdbsearch.EINVALID, imdbsearch.ErrorCode(err))
	})
}

func TestHistoryService_FindEntries(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.HistoryService {
		t.Helper()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		svc.Now = clock()
		ctx := context.Background()
		for _, e := range []*imdbsearch.HistoryEntry{
			{Kind: imdbsearch.KindTitle, Query: "alien", Start: 1, Count: 10},
			{Kind: imdbsearch.KindFind, Query: "alien"},
			{Kind: imdbsearch.KindFind, Query: "star wars"},
			{Kind: imdbsearch.KindTitle, Query: "star wars", Start: 11, Count: 10},
		} {
			require.NoError(t, svc.CreateEntry(ctx, e))
		}
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		entries, err := svc.FindEntries(context.Background(), imdbsearch.HistoryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, "star wars", entries[0].Query)
		assert.Equal(t, 11, entries[0].Start)
		assert.Equal(t, imdbsearch.KindTitle, entries[3].Kind)
		assert.Equal(t, "alien", entries[3].Query)
	})

	t.Run("orders entries recorded in the same second by insertion", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		svc.Now = func() time.Time { return fixed }
		ctx := context.Background()

		for _, q := range []string{"first", "second", "third"} {
			require.NoError(t, svc.CreateEntry(ctx, &imdbsearch.HistoryEntry{Kind: imdbsearch.KindFind, Query: q}))
		}

		entries, err := svc.FindEntries(ctx, imdbsearch.HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "third", entries[0].Query)
		assert.Equal(t, "first", entries[2].Query)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		kind := imdbsearch.KindFind

		entries, err := svc.FindEntries(context.Background(), imdbsearch.HistoryFilter{Kind: &kind})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, imdbsearch.KindFind, e.Kind)
		}
	})

	t.Run("filters by query", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		query := "alien"

		entries, err := svc.FindEntries(context.Background(), imdbsearch.HistoryFilter{Query: &query})

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		entries, err := svc.FindEntries(context.Background(), imdbsearch.HistoryFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, imdbsearch.KindFind, entries[0].Kind)
		assert.Equal(t, "star wars", entries[0].Query)
		assert.Equal(t, "alien", entries[1].Query)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		entries, err := svc.FindEntries(context.Background(), imdbsearch.HistoryFilter{})

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestHistoryService_DeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("removes entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))
		ctx := context.Background()
		entry := &imdbsearch.HistoryEntry{Kind: imdbsearch.KindFind, Query: "alien"}
		require.NoError(t, svc.CreateEntry(ctx, entry))

		require.NoError(t, svc.DeleteEntry(ctx, entry.ID))

		entries, err := svc.FindEntries(ctx, imdbsearch.HistoryFilter{})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("returns ENOTFOUND for missing entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(setupTestDB(t))

		err := svc.DeleteEntry(context.Background(), "missing")

		assert.Equal(t, imdbsearch.ENOTFOUND, imdbsearch.ErrorCode(err))
	})
}

func TestHistoryService_ClearEntries(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewHistoryService(setupTestDB(t))
	ctx := context.Background()
	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, svc.CreateEntry(ctx, &imdbsearch.HistoryEntry{Kind: imdbsearch.KindFind, Query: q}))
	}

	n, err := svc.ClearEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.ClearEntries(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistoryService_FindEntries_OffsetWithoutLimit(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewHistoryService(setupTestDB(t))
	svc.Now = clock()
	ctx := context.Background()
	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, svc.CreateEntry(ctx, &imdbsearch.HistoryEntry{Kind: imdbsearch.KindFind, Query: q}))
	}

	entries, err := svc.FindEntries(ctx, imdbsearch.HistoryFilter{Offset: 2})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Query)
}
