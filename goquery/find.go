package goquery

import (
	"github.com/fwojciec/imdbsearch"
)

// Ensure FindParser implements imdbsearch.FindParser at compile time.
var _ imdbsearch.FindParser = (*FindParser)(nil)

// Quick-find selectors.
var (
	findRowSelector   = MustCompile("#main > div > div.findSection > table > tbody > tr")
	findCellSelector  = MustCompile("td")
	findPhotoSelector = MustCompile("a > img")
)

// FindParser parses quick-find result pages ("/find").
// FindParser is stateless and safe for concurrent use.
type FindParser struct{}

// NewFindParser creates a new FindParser.
func NewFindParser() *FindParser {
	return &FindParser{}
}

// ParseFindResults parses a quick-find results table.
// Every row is expected to hold a photo cell and a text cell; rows missing
// either cell, the photo image or its src, or the text link are skipped.
// Empty attributes count as missing.
func (p *FindParser) ParseFindResults(html string) (*imdbsearch.FoundResults, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	results := &imdbsearch.FoundResults{Items: []*imdbsearch.FoundItem{}}
	for _, row := range All(doc, findRowSelector) {
		cells := All(row, findCellSelector)
		if len(cells) < 2 {
			continue
		}
		photo, text := cells[0], cells[1]

		img, ok := First(photo, findPhotoSelector)
		if !ok {
			continue
		}
		src, ok := img.Attr("src")
		if !ok || src == "" {
			continue
		}

		a, ok := First(text, anchorSelector)
		if !ok {
			continue
		}
		anchor, ok := ParseAnchor(a)
		if !ok || anchor.Href == "" || anchor.Text == "" {
			continue
		}

		results.Items = append(results.Items, &imdbsearch.FoundItem{
			Title:    anchor.Text,
			Href:     anchor.Href,
			ImageSrc: src,
		})
	}

	return results, nil
}
