// Package goquery implements the HTML extraction engine on top of goquery
// and cascadia: selector compilation, traversal helpers, anchor extraction
// and the title-listing and quick-find parsers.
package goquery

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/imdbsearch"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector. It satisfies goquery.Matcher, so it
// can be passed to Selection.FindMatcher and reused across documents.
type Selector struct {
	text string
	sel  cascadia.Selector
}

// Compile parses a CSS selector.
// Returns ESELECTOR if the selector syntax is invalid.
func Compile(text string) (Selector, error) {
	sel, err := cascadia.Compile(text)
	if err != nil {
		return Selector{}, imdbsearch.Errorf(imdbsearch.ESELECTOR, "invalid selector %q: %v", text, err)
	}
	return Selector{text: text, sel: sel}, nil
}

// MustCompile is like Compile but panics if the selector is invalid.
// It is intended for selectors held in package-level variables.
func MustCompile(text string) Selector {
	s, err := Compile(text)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the selector source text.
func (s Selector) String() string {
	return s.text
}

// Match reports whether n matches the selector.
func (s Selector) Match(n *html.Node) bool {
	return s.sel.Match(n)
}

// MatchAll returns the descendants of n (and n itself) that match.
func (s Selector) MatchAll(n *html.Node) []*html.Node {
	return s.sel.MatchAll(n)
}

// Filter returns the nodes that match the selector.
func (s Selector) Filter(nodes []*html.Node) []*html.Node {
	return s.sel.Filter(nodes)
}

// compiled caches selectors by source text. Only valid selectors are stored,
// so entries never change once written.
var compiled sync.Map // map[string]Selector

// cachedSelector returns the compiled selector for text, compiling it on
// first use.
func cachedSelector(text string) (Selector, error) {
	if s, ok := compiled.Load(text); ok {
		return s.(Selector), nil
	}
	s, err := Compile(text)
	if err != nil {
		return Selector{}, err
	}
	actual, _ := compiled.LoadOrStore(text, s)
	return actual.(Selector), nil
}
