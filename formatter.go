package imdbsearch

import (
	"strings"
)

// FormatTitleSearch formats listing items for display.
// Markup fields (title, summary) are passed through conv; if conversion
// fails the raw markup is shown. Items are separated by blank lines.
func FormatTitleSearch(search *TitleSearch, conv Converter, baseURL string) string {
	if search == nil || len(search.Items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		var b strings.Builder
		b.WriteString(render(conv, item.Title.Text))
		if item.Years != "" {
			b.WriteString(" " + item.Years)
		}
		b.WriteString("\n  " + item.Title.Absolute(baseURL))
		if item.Info != "" {
			b.WriteString("\n- " + item.Info)
		}
		b.WriteString("\n- Rating: " + item.Rating)
		if item.Summary != "" {
			b.WriteString("\n- " + render(conv, item.Summary))
		}
		if people := item.JoinPeople(
			func(role string) string { return "\n- " + role + ": " },
			"",
			func(p Person) string { return p.Name },
			", ",
		); people != "" {
			b.WriteString(people)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// FormatFoundResults formats quick-find items one per line as
// "<title id>  <title>  <absolute url>".
func FormatFoundResults(results *FoundResults, conv Converter, baseURL string) string {
	if results == nil || len(results.Items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(results.Items))
	for _, item := range results.Items {
		link := Anchor{Text: item.Title, Href: item.Href}
		lines = append(lines, item.TitleID()+"  "+render(conv, item.Title)+"  "+link.Absolute(baseURL))
	}

	return strings.Join(lines, "\n")
}

func render(conv Converter, markup string) string {
	if conv == nil || strings.TrimSpace(markup) == "" {
		return markup
	}
	out, err := conv.Convert(markup)
	if err != nil {
		return markup
	}
	return strings.Join(strings.Fields(out), " ")
}
