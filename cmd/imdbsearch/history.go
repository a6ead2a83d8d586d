package main

import (
	"fmt"

	"github.com/fwojciec/imdbsearch"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		fmt.Fprintln(deps.Stderr, "error: history is disabled")
		return imdbsearch.Errorf(imdbsearch.EINVALID, "history is disabled")
	}

	if c.Clear {
		n, err := deps.History.ClearEntries(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", imdbsearch.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared %d recorded searches.\n", n)
		return nil
	}

	if c.Delete != "" {
		if err := deps.History.DeleteEntry(deps.Ctx, c.Delete); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", imdbsearch.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted entry %s\n", c.Delete)
		return nil
	}

	filter := imdbsearch.HistoryFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := imdbsearch.SearchKind(c.Kind)
		if kind != imdbsearch.KindTitle && kind != imdbsearch.KindFind {
			fmt.Fprintf(deps.Stderr, "error: --kind must be %q or %q\n", imdbsearch.KindTitle, imdbsearch.KindFind)
			return imdbsearch.Errorf(imdbsearch.EINVALID, "unknown search kind %q", c.Kind)
		}
		filter.Kind = &kind
	}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", imdbsearch.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"ID", "Searched", "Kind", "Query", "Page", "Results", "Hash"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID,
			e.SearchedAt.Local().Format("2006-01-02 15:04"),
			e.Kind,
			e.Query,
			page(e),
			e.Results,
			e.PageHash,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}

// page describes the listing window of a title search.
func page(e *imdbsearch.HistoryEntry) string {
	if e.Kind != imdbsearch.KindTitle {
		return ""
	}
	return fmt.Sprintf("%d-%d", e.Start, e.Start+e.Count-1)
}
