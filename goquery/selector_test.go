package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/imdbsearch"
	"github.com/fwojciec/imdbsearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) *gq.Document {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("compiles valid selectors", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"a",
			"div.lister-list>div",
			"#main > div > div.findSection > table > tbody > tr",
			"h3.lister-item-header>span.lister-item-year",
		} {
			s, err := goquery.Compile(text)
			require.NoError(t, err, text)
			assert.Equal(t, text, s.String())
		}
	})

	t.Run("returns ESELECTOR for invalid syntax", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{"div[", "p >", "a:not("} {
			_, err := goquery.Compile(text)
			require.Error(t, err, text)
			assert.Equal(t, imdbsearch.ESELECTOR, imdbsearch.ErrorCode(err), text)
		}
	})
}

func TestMustCompile(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { goquery.MustCompile("p > span") })
	assert.Panics(t, func() { goquery.MustCompile("p >") })
}

func TestSelector_Reuse(t *testing.T) {
	t.Parallel()

	s := goquery.MustCompile("li")
	first := mustDocument(t, `<ul><li>a</li><li>b</li></ul>`)
	second := mustDocument(t, `<ol><li>c</li></ol>`)

	assert.Len(t, goquery.All(first, s), 2)
	assert.Len(t, goquery.All(second, s), 1)
	assert.Len(t, goquery.All(first, s), 2)
}
