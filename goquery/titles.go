package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbsearch"
)

// Ensure TitleParser implements imdbsearch.TitleParser at compile time.
var _ imdbsearch.TitleParser = (*TitleParser)(nil)

// Title listing selectors.
var (
	listerRowSelector     = MustCompile("div.lister-list>div")
	listerContentSelector = MustCompile("div.lister-item-content")
	listerImageSelector   = MustCompile("div.lister-item-image>a>img")
	listerTitleSelector   = MustCompile("h3.lister-item-header>a")
	listerYearSelector    = MustCompile("h3.lister-item-header>span.lister-item-year")
	listerBlockSelector   = MustCompile("p")
	listerSpanSelector    = MustCompile("span")
	listerRatingSelector  = MustCompile("div.ratings-bar>div.ratings-imdb-rating")
)

// TitleParser parses title listing pages ("/search/title/").
// TitleParser is stateless and safe for concurrent use.
type TitleParser struct{}

// NewTitleParser creates a new TitleParser.
func NewTitleParser() *TitleParser {
	return &TitleParser{}
}

// ParseTitleListing parses a title listing page into items in page order.
//
// Within a row's content block the text blocks are positional: the first
// holds the info spans, the second the summary and the third the credits.
// Rows without a content block (ads, separators) or without a title link
// are skipped.
func (p *TitleParser) ParseTitleListing(html string) (*imdbsearch.TitleSearch, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	search := &imdbsearch.TitleSearch{Items: []*imdbsearch.TitleSearchItem{}}
	for _, row := range All(doc, listerRowSelector) {
		item, ok := parseListerRow(row)
		if !ok {
			continue
		}
		search.Items = append(search.Items, item)
	}

	return search, nil
}

func parseListerRow(row *goquery.Selection) (*imdbsearch.TitleSearchItem, bool) {
	content, ok := First(row, listerContentSelector)
	if !ok {
		return nil, false
	}

	titleEl, ok := First(content, listerTitleSelector)
	if !ok {
		return nil, false
	}
	title, ok := ParseAnchor(titleEl)
	if !ok {
		return nil, false
	}

	item := &imdbsearch.TitleSearchItem{
		Title:        title,
		ImageURL:     imageURL(row),
		Rating:       rating(content),
		PeopleByRole: map[string][]imdbsearch.Person{},
	}
	if err := item.Validate(); err != nil {
		return nil, false
	}

	if year, ok := First(content, listerYearSelector); ok {
		item.Years = strings.TrimSpace(year.Text())
	}

	blocks := All(content, listerBlockSelector)
	if len(blocks) > 0 {
		item.Info = info(blocks[0])
	}
	if len(blocks) > 1 {
		summary, _ := blocks[1].Html()
		item.Summary = strings.TrimSpace(summary)
	}
	if len(blocks) > 2 {
		credits := ParsePeople(blocks[2])
		item.PeopleByRole = credits.ByRole
		item.Roles = credits.Roles
	}

	return item, true
}

// imageURL returns the poster src, falling back to the lazy-load attribute.
func imageURL(row *goquery.Selection) string {
	img, ok := First(row, listerImageSelector)
	if !ok {
		return ""
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("loadlate")
	return src
}

func rating(content *goquery.Selection) string {
	bar, ok := First(content, listerRatingSelector)
	if !ok {
		return imdbsearch.NoRating
	}
	value, ok := bar.Attr("data-value")
	if !ok || strings.TrimSpace(value) == "" {
		return imdbsearch.NoRating
	}
	return strings.TrimSpace(value)
}

func info(block *goquery.Selection) string {
	spans := All(block, listerSpanSelector)
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		parts = append(parts, strings.TrimSpace(span.Text()))
	}
	return strings.Join(parts, " ")
}
