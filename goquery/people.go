package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbsearch"
	"golang.org/x/net/html"
)

var anchorSelector = MustCompile("a")

// Credits is the role-keyed grouping of people recovered from a credit
// block. Roles holds the keys of ByRole in page order.
type Credits struct {
	ByRole map[string][]imdbsearch.Person
	Roles  []string
}

// ParsePeople recovers the role to people mapping of a credit block such as
//
//	Director: <a href="/name/nm1/">Alice</a> | Stars: <a href="/name/nm2/">Bob</a>, ...
//
// Labels, separators and names are sibling nodes with no per-name wrapper,
// so the block is read twice: the text nodes give the ordered role to names
// grouping and the anchors give a name to href map. The two are joined by
// exact name text. Names without an anchor, names before the first label,
// and roles left without people are dropped.
func ParsePeople(block *goquery.Selection) Credits {
	var (
		current string
		roles   []string
		names   = make(map[string][]string)
	)
	for _, token := range textTokens(block) {
		switch {
		case strings.HasSuffix(token, ":"):
			current = strings.Trim(strings.TrimSuffix(token, ":"), separators)
			if _, ok := names[current]; !ok {
				roles = append(roles, current)
			}
			names[current] = []string{}
		case current == "":
			continue
		default:
			names[current] = append(names[current], token)
		}
	}

	links := make(map[string]string)
	for _, a := range All(block, anchorSelector) {
		anchor, ok := ParseAnchor(a)
		if !ok {
			continue
		}
		links[strings.Trim(a.Text(), separators)] = anchor.Href
	}

	credits := Credits{ByRole: make(map[string][]imdbsearch.Person)}
	for _, role := range roles {
		var people []imdbsearch.Person
		for _, name := range names[role] {
			href, ok := links[name]
			if !ok {
				continue
			}
			people = append(people, imdbsearch.Person{Name: name, ProfileHref: href, Role: role})
		}
		if len(people) == 0 {
			continue
		}
		credits.ByRole[role] = people
		credits.Roles = append(credits.Roles, role)
	}

	return credits
}

// separators are stripped from both ends of every text node.
const separators = " \t\r\n|,"

// textTokens returns the text nodes under s in document order, with
// surrounding whitespace and separators removed. Nodes holding only
// separators are dropped.
func textTokens(s *goquery.Selection) []string {
	var tokens []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Trim(n.Data, separators); t != "" {
				tokens = append(tokens, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return tokens
}
