package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/imdbsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Search    imdbsearch.SearchService
	History   imdbsearch.HistoryService
	Converter imdbsearch.Converter
	BaseURL   string
	JSON      bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL   string        `name:"base-url" env:"IMDBSEARCH_BASE_URL" default:"https://www.imdb.com" help:"Site root URL"`
	Timeout   time.Duration `default:"10s" help:"Per-request timeout"`
	Retries   int           `default:"0" help:"Retry failed fetches up to N times (max 3)"`
	Browser   bool          `help:"Fetch pages with headless Chrome"`
	Stealth   bool          `help:"Hide browser automation (with --browser)"`
	Archive   string        `type:"path" help:"Save fetched pages under this directory"`
	Offline   bool          `help:"Read pages from --archive instead of the network"`
	DB        string        `name:"db" help:"History database path (default: IMDBSEARCH_DB or ~/.imdbsearch/history.db)"`
	NoHistory bool          `help:"Do not record searches"`
	Verbose   bool          `short:"v" help:"Log fetches and searches to stderr"`
	JSON      bool          `name:"json" help:"Print results as JSON"`

	Title   TitleCmd   `cmd:"" help:"Search the title listing"`
	Find    FindCmd    `cmd:"" help:"Quick-find titles by name"`
	History HistoryCmd `cmd:"" help:"Show or clear recorded searches"`
}

// TitleCmd is the "title" subcommand.
type TitleCmd struct {
	Query []string `arg:"" help:"Title text"`
	Start int      `default:"1" help:"Position of the first result"`
	Count int      `default:"10" help:"Results per page (1-255)"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Queries     []string `arg:"" help:"One or more queries (quote multi-word queries)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent query limit"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Kind   string `help:"Only show title or find searches"`
	Query  string `help:"Only show searches for this exact query"`
	Limit  int    `default:"20" help:"Maximum entries to show"`
	Delete string `help:"Delete the entry with this ID"`
	Clear  bool   `help:"Delete all recorded searches"`
}
