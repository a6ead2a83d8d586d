package imdbsearch

// Anchor is a hyperlink's display text plus its target reference.
type Anchor struct {
	// Text is the anchor's inner markup, verbatim.
	Text string `json:"text"`

	// Href is the link target as found on the page, usually site-relative.
	Href string `json:"href"`
}

// Absolute returns base followed by the anchor's href.
// No normalization is performed: callers must ensure Href is relative.
func (a Anchor) Absolute(base string) string {
	return base + a.Href
}
