package main

import (
	"fmt"

	"github.com/fwojciec/imdbsearch"
	"github.com/fwojciec/imdbsearch/search"
)

// findOutput is the JSON shape of one find query.
type findOutput struct {
	Query string                  `json:"query"`
	Items []*imdbsearch.FoundItem `json:"items"`
}

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	results, err := search.FindAll(deps.Ctx, deps.Search, c.Queries, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbsearch.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		out := make([]findOutput, len(c.Queries))
		for i, query := range c.Queries {
			out[i] = findOutput{Query: query, Items: results[i].Items}
		}
		return writeJSON(deps.Stdout, out)
	}

	for i, query := range c.Queries {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if len(c.Queries) > 1 {
			fmt.Fprintf(deps.Stdout, "== %s ==\n", query)
		}
		if len(results[i].Items) == 0 {
			fmt.Fprintf(deps.Stdout, "No titles found for %q.\n", query)
			continue
		}
		fmt.Fprintln(deps.Stdout, imdbsearch.FormatFoundResults(results[i], deps.Converter, deps.BaseURL))
	}

	return nil
}
