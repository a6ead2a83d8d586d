package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/imdbsearch"
)

// Run executes the title command.
func (c *TitleCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	q := imdbsearch.TitleQuery{Start: c.Start, Count: c.Count}

	result, err := deps.Search.SearchTitles(deps.Ctx, query, q)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbsearch.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, result)
	}

	if len(result.Items) == 0 {
		fmt.Fprintf(deps.Stdout, "No titles found for %q.\n", query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, imdbsearch.FormatTitleSearch(result, deps.Converter, deps.BaseURL))
	return nil
}
