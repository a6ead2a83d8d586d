// Package fs stores fetched search pages on disk.
package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/imdbsearch"
)

// URLToPath converts a page URL to a relative file path. The query string
// is kept in the file name so each search page gets its own file.
// Example: https://www.imdb.com/find?s=tt&q=alien → find@s=tt&q=alien.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	// Clean against the root so ".." cannot climb out of the archive.
	p := strings.Trim(path.Clean("/"+u.Path), "/")
	if p == "" {
		p = "index"
	}

	if u.RawQuery != "" {
		p += "@" + sanitize(u.RawQuery)
	}

	return filepath.FromSlash(p) + ".html", nil
}

// sanitize replaces bytes that are unsafe in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("._-=+&%", r):
			return r
		}
		return '_'
	}, s)
}

// Ensure Archive implements imdbsearch.Fetcher at compile time.
var _ imdbsearch.Fetcher = (*Archive)(nil)

// Archive keeps raw page HTML in a directory, one file per URL.
// As a Fetcher it replays saved pages without touching the network.
type Archive struct {
	dir string
}

// NewArchive creates an Archive rooted at dir.
func NewArchive(dir string) *Archive {
	return &Archive{dir: dir}
}

// Save writes html for rawURL. The file is written to a temporary name
// and renamed into place, so readers never see a partial page.
func (a *Archive) Save(ctx context.Context, rawURL, html string) error {
	relPath, err := URLToPath(rawURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(a.dir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(html), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Fetch returns the saved page for rawURL.
// Returns ENOTFOUND if the page was never saved.
func (a *Archive) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(rawURL)
	if err != nil {
		return "", imdbsearch.Errorf(imdbsearch.EINVALID, "invalid URL %q", rawURL)
	}

	data, err := os.ReadFile(filepath.Join(a.dir, relPath))
	if errors.Is(err, os.ErrNotExist) {
		return "", imdbsearch.Errorf(imdbsearch.ENOTFOUND, "page not archived: %s", rawURL)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (a *Archive) Close() error {
	return nil
}

// Ensure ArchivingFetcher implements imdbsearch.Fetcher at compile time.
var _ imdbsearch.Fetcher = (*ArchivingFetcher)(nil)

// ArchivingFetcher saves every page fetched through next.
type ArchivingFetcher struct {
	next    imdbsearch.Fetcher
	archive *Archive
}

// NewArchivingFetcher wraps next so successful fetches are saved to archive.
func NewArchivingFetcher(next imdbsearch.Fetcher, archive *Archive) *ArchivingFetcher {
	return &ArchivingFetcher{next: next, archive: archive}
}

// Fetch delegates to the wrapped fetcher and saves the page.
// A failed save fails the fetch.
func (f *ArchivingFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	html, err := f.next.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if err := f.archive.Save(ctx, rawURL, html); err != nil {
		return "", err
	}
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *ArchivingFetcher) Close() error {
	return f.next.Close()
}
