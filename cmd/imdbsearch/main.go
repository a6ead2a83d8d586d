package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/imdbsearch"
	"github.com/fwojciec/imdbsearch/goquery"
	"github.com/fwojciec/imdbsearch/htmltomarkdown"
	"github.com/fwojciec/imdbsearch/fs"
	imdbhttp "github.com/fwojciec/imdbsearch/http"
	"github.com/fwojciec/imdbsearch/rod"
	"github.com/fwojciec/imdbsearch/search"
	imdbslog "github.com/fwojciec/imdbsearch/slog"
	"github.com/fwojciec/imdbsearch/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by the history store.
	DB *sqlite.DB

	// Fetcher, if set, replaces the transport selected by flags.
	Fetcher imdbsearch.Fetcher

	// History, if set, replaces the SQLite history store.
	History imdbsearch.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("imdbsearch"),
		kong.Description("Search IMDb titles from the command line"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'imdbsearch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.JSON = cli.JSON
	deps.BaseURL = strings.TrimSuffix(cli.BaseURL, "/")

	// History store
	if m.History == nil && (cmd == "history" || !cli.NoHistory) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		if dir := filepath.Dir(dbPath); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}

		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set IMDBSEARCH_DB or pass --no-history\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		m.History = sqlite.NewHistoryService(m.DB)
	}
	deps.History = m.History

	if cmd == "title" || cmd == "find" {
		fetcher := m.Fetcher
		if fetcher == nil {
			f, err := newFetcher(cli)
			if err != nil {
				return err
			}
			defer f.Close()
			fetcher = f
		}
		if cli.Archive != "" && !cli.Offline {
			fetcher = fs.NewArchivingFetcher(fetcher, fs.NewArchive(cli.Archive))
		}
		if cli.Verbose {
			fetcher = imdbslog.NewLoggingFetcher(fetcher, logger)
		}

		engine := &search.Engine{
			Fetcher:     fetcher,
			Titles:      goquery.NewTitleParser(),
			Finds:       goquery.NewFindParser(),
			BaseURL:     deps.BaseURL,
			RetryDelays: retryDelays(cli.Retries),
		}
		if deps.History != nil && !cli.NoHistory {
			q := imdbsearch.TitleQuery{Start: cli.Title.Start, Count: cli.Title.Count}
			engine.Observer = imdbsearch.RecordSearches(deps.History, q, func(err error) {
				logger.Warn("failed to record search", "err", err)
			})
		}

		deps.Search = engine
		if cli.Verbose {
			deps.Search = imdbslog.NewLoggingSearchService(engine, logger)
		}
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(deps.BaseURL))
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the transport selected by flags.
func newFetcher(cli *CLI) (imdbsearch.Fetcher, error) {
	if cli.Offline {
		if cli.Archive == "" {
			return nil, imdbsearch.Errorf(imdbsearch.EINVALID, "--offline requires --archive")
		}
		return fs.NewArchive(cli.Archive), nil
	}

	if !cli.Browser {
		return imdbhttp.NewFetcher(imdbhttp.WithTimeout(cli.Timeout)), nil
	}

	opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
	if cli.Stealth {
		opts = append(opts, rod.WithStealth())
	}
	f, err := rod.NewFetcher(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return f, nil
}

// newLogger writes warnings to stderr, or everything with verbose set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// retryDelays returns the first n backoff delays.
func retryDelays(n int) []time.Duration {
	delays := search.DefaultRetryDelays()
	if n <= 0 {
		return nil
	}
	if n < len(delays) {
		return delays[:n]
	}
	return delays
}

func defaultDBPath() string {
	if path := os.Getenv("IMDBSEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "imdbsearch.db"
	}
	return filepath.Join(home, ".imdbsearch", "history.db")
}
