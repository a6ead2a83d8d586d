package mock

import "github.com/fwojciec/imdbsearch"

var _ imdbsearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of imdbsearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
