package imdbsearch

// Converter converts HTML fragments to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a summary's inner
	// markup, into Markdown suitable for terminal display.
	Convert(html string) (string, error)
}
