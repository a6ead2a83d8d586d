package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbsearch"
)

// ParseAnchor extracts the href and inner markup of the first element in s.
// The boolean is false when the element has no href attribute.
func ParseAnchor(s *goquery.Selection) (imdbsearch.Anchor, bool) {
	href, exists := s.Attr("href")
	if !exists {
		return imdbsearch.Anchor{}, false
	}

	text, err := s.Html()
	if err != nil {
		return imdbsearch.Anchor{}, false
	}

	return imdbsearch.Anchor{Text: text, Href: href}, true
}
