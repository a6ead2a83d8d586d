package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbsearch"
)

// newDocument parses a whole page. The page must be valid UTF-8.
func newDocument(html string) (*goquery.Document, error) {
	if !utf8.ValidString(html) {
		return nil, imdbsearch.Errorf(imdbsearch.EDECODE, "page is not valid UTF-8")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, imdbsearch.Errorf(imdbsearch.EMALFORMED, "failed to parse HTML: %v", err)
	}

	return doc, nil
}
