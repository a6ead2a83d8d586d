package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/imdbsearch"
	"github.com/fwojciec/imdbsearch/fs"
	"github.com/fwojciec/imdbsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root", "https://www.imdb.com/", "index.html"},
		{"empty path", "https://www.imdb.com", "index.html"},
		{"find page", "https://www.imdb.com/find?s=tt&q=alien", "find@s=tt&q=alien.html"},
		{"title listing", "https://www.imdb.com/search/title/?title=star+wars&start=1&count=10", filepath.Join("search", "title@title=star+wars&start=1&count=10.html")},
		{"escaped query", "https://www.imdb.com/find?s=tt&q=tom+%26+jerry", "find@s=tt&q=tom+%26+jerry.html"},
		{"unsafe query bytes", "https://www.imdb.com/find?q=a/b:c", "find@q=a_b_c.html"},
		{"parent segments", "https://www.imdb.com/../../etc/passwd", filepath.Join("etc", "passwd.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchive_SaveThenFetch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := fs.NewArchive(dir)
	ctx := context.Background()
	url := "https://www.imdb.com/search/title/?title=alien&start=1&count=10"

	err := archive.Save(ctx, url, "<html>alien</html>")
	require.NoError(t, err)

	html, err := archive.Fetch(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "<html>alien</html>", html)

	_, err = os.Stat(filepath.Join(dir, "search", "title@title=alien&start=1&count=10.html.tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed")
}

func TestArchive_SaveOverwrites(t *testing.T) {
	t.Parallel()

	archive := fs.NewArchive(t.TempDir())
	ctx := context.Background()
	url := "https://www.imdb.com/find?s=tt&q=alien"

	require.NoError(t, archive.Save(ctx, url, "old"))
	require.NoError(t, archive.Save(ctx, url, "new"))

	html, err := archive.Fetch(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, "new", html)
}

func TestArchive_FetchMissing(t *testing.T) {
	t.Parallel()

	archive := fs.NewArchive(t.TempDir())

	_, err := archive.Fetch(context.Background(), "https://www.imdb.com/find?s=tt&q=nothing")

	require.Error(t, err)
	assert.Equal(t, imdbsearch.ENOTFOUND, imdbsearch.ErrorCode(err))
}

func TestArchive_FetchCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewArchive(t.TempDir()).Fetch(ctx, "https://www.imdb.com/find?s=tt&q=alien")

	require.ErrorIs(t, err, context.Canceled)
}

func TestArchivingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("saves fetched pages", func(t *testing.T) {
		t.Parallel()

		archive := fs.NewArchive(t.TempDir())
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html>" + url + "</html>", nil
			},
		}
		f := fs.NewArchivingFetcher(next, archive)
		url := "https://www.imdb.com/find?s=tt&q=alien"

		html, err := f.Fetch(context.Background(), url)

		require.NoError(t, err)
		assert.Equal(t, "<html>"+url+"</html>", html)

		saved, err := archive.Fetch(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, html, saved)
	})

	t.Run("does not save failed fetches", func(t *testing.T) {
		t.Parallel()

		archive := fs.NewArchive(t.TempDir())
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("HTTP 503")
			},
		}
		f := fs.NewArchivingFetcher(next, archive)
		url := "https://www.imdb.com/find?s=tt&q=alien"

		_, err := f.Fetch(context.Background(), url)
		require.Error(t, err)

		_, err = archive.Fetch(context.Background(), url)
		assert.Equal(t, imdbsearch.ENOTFOUND, imdbsearch.ErrorCode(err))
	})

	t.Run("closes the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		err := fs.NewArchivingFetcher(next, fs.NewArchive(t.TempDir())).Close()

		require.NoError(t, err)
		assert.True(t, closed)
	})
}
