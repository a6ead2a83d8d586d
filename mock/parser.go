package mock

import "github.com/fwojciec/imdbsearch"

var (
	_ imdbsearch.TitleParser = (*TitleParser)(nil)
	_ imdbsearch.FindParser  = (*FindParser)(nil)
)

// TitleParser is a mock implementation of imdbsearch.TitleParser.
type TitleParser struct {
	ParseTitleListingFn func(html string) (*imdbsearch.TitleSearch, error)
}

func (p *TitleParser) ParseTitleListing(html string) (*imdbsearch.TitleSearch, error) {
	return p.ParseTitleListingFn(html)
}

// FindParser is a mock implementation of imdbsearch.FindParser.
type FindParser struct {
	ParseFindResultsFn func(html string) (*imdbsearch.FoundResults, error)
}

func (p *FindParser) ParseFindResults(html string) (*imdbsearch.FoundResults, error) {
	return p.ParseFindResultsFn(html)
}
