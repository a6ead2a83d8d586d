package goquery_test

import (
	"testing"

	"github.com/fwojciec/imdbsearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const traverseHTML = `<html><body>
<div class="row"><span>one</span><div class="row"><span>two</span></div></div>
<div class="row"><span>three</span></div>
</body></html>`

func TestFirst(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, traverseHTML)

	t.Run("returns first match in document order", func(t *testing.T) {
		t.Parallel()

		s, ok := goquery.First(doc, goquery.MustCompile("span"))
		require.True(t, ok)
		assert.Equal(t, "one", s.Text())
	})

	t.Run("reports absence", func(t *testing.T) {
		t.Parallel()

		s, ok := goquery.First(doc, goquery.MustCompile("table"))
		assert.False(t, ok)
		assert.Nil(t, s)
	})

	t.Run("searches descendants of a selection only", func(t *testing.T) {
		t.Parallel()

		rows := goquery.All(doc, goquery.MustCompile("div.row"))
		require.Len(t, rows, 3)

		s, ok := goquery.First(rows[2], goquery.MustCompile("span"))
		require.True(t, ok)
		assert.Equal(t, "three", s.Text())
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, traverseHTML)

	t.Run("returns nested matches in document order", func(t *testing.T) {
		t.Parallel()

		spans := goquery.All(doc, goquery.MustCompile("span"))
		require.Len(t, spans, 3)
		assert.Equal(t, "one", spans[0].Text())
		assert.Equal(t, "two", spans[1].Text())
		assert.Equal(t, "three", spans[2].Text())
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		got := goquery.All(doc, goquery.MustCompile("table"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFindFirstAndFindAll(t *testing.T) {
	t.Parallel()

	doc := mustDocument(t, traverseHTML)

	s, ok := goquery.FindFirst(doc, "div.row>div.row>span")
	require.True(t, ok)
	assert.Equal(t, "two", s.Text())

	assert.Len(t, goquery.FindAll(doc, "div.row>span"), 3)
	assert.Len(t, goquery.FindAll(doc, "div.row>span"), 3)

	assert.Panics(t, func() { goquery.FindAll(doc, "div[") })
}
