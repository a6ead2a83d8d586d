package imdbsearch_test

import (
	"testing"

	"github.com/fwojciec/imdbsearch"
	"github.com/stretchr/testify/assert"
)

func TestFoundItem_TitleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "title path with ref", href: "/title/tt9336300/?ref_=fn_tt_tt_1", want: "tt9336300"},
		{name: "title path without trailing slash", href: "/title/tt0076759", want: "tt0076759"},
		{name: "unexpected shape yields wrong segment", href: "/name/nm1/", want: "nm1"},
		{name: "too few segments", href: "tt1", want: ""},
		{name: "empty href", href: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := &imdbsearch.FoundItem{Href: tt.href}

			assert.Equal(t, tt.want, item.TitleID())
		})
	}
}
