package imdbsearch

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to get past pages that
// require JavaScript.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
