package goquery

import "github.com/PuerkitoBio/goquery"

// Node is anything that can be searched for matching descendants.
// Both *goquery.Document and *goquery.Selection satisfy it.
type Node interface {
	FindMatcher(m goquery.Matcher) *goquery.Selection
}

// First returns the first descendant of n matching s, in document order.
// The boolean is false when nothing matches.
func First(n Node, s Selector) (*goquery.Selection, bool) {
	found := n.FindMatcher(s).First()
	if found.Length() == 0 {
		return nil, false
	}
	return found, true
}

// All returns every descendant of n matching s, in document order.
func All(n Node, s Selector) []*goquery.Selection {
	found := n.FindMatcher(s)
	out := make([]*goquery.Selection, 0, found.Length())
	found.Each(func(_ int, sel *goquery.Selection) {
		out = append(out, sel)
	})
	return out
}

// FindFirst is like First but takes selector source text. Compiled
// selectors are cached by text. It panics if selector is invalid.
func FindFirst(n Node, selector string) (*goquery.Selection, bool) {
	return First(n, mustCached(selector))
}

// FindAll is like All but takes selector source text. Compiled selectors
// are cached by text. It panics if selector is invalid.
func FindAll(n Node, selector string) []*goquery.Selection {
	return All(n, mustCached(selector))
}

func mustCached(text string) Selector {
	s, err := cachedSelector(text)
	if err != nil {
		panic(err)
	}
	return s
}
