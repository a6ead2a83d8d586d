package imdbsearch

import "strings"

// FoundItem is one row of a quick-find results table.
type FoundItem struct {
	Title    string `json:"title"`
	Href     string `json:"href"`
	ImageSrc string `json:"imageSrc"`
}

// TitleID returns the third "/"-delimited segment of the item's href,
// e.g. "tt0076759" for "/title/tt0076759/?ref_=fn_tt_tt_6".
// The href shape is not validated; an unexpected shape yields a wrong or
// empty identifier.
func (i *FoundItem) TitleID() string {
	parts := strings.Split(i.Href, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// FoundResults is the ordered result of parsing a quick-find page.
type FoundResults struct {
	Items []*FoundItem `json:"items"`
}

// FindParser extracts quick-find results from raw HTML.
type FindParser interface {
	// ParseFindResults parses a quick-find results page.
	// Malformed rows are skipped silently.
	// Returns EDECODE if html is not valid UTF-8.
	ParseFindResults(html string) (*FoundResults, error)
}
