package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/radscrape/radscrape"
	"github.com/radscrape/radscrape/bloom"
	"github.com/radscrape/radscrape/goquery"
	"github.com/radscrape/radscrape/harvest"
	radhttp "github.com/radscrape/radscrape/http"
	radslog "github.com/radscrape/radscrape/slog"
	"github.com/radscrape/radscrape/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CaseService    radscrape.CaseService
	ArticleService radscrape.ArticleService
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
		kong.Name("radscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'radscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command, _, _ := strings.Cut(kongCtx.Command(), " ")

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RADSCRAPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CaseService = sqlite.NewCaseService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Cases = m.CaseService
	deps.Articles = m.ArticleService
	deps.Sitemaps = radhttp.NewSitemapService(nil)

	// Scraping commands share one fetcher and scraper pipeline. The
	// logger level keeps per-page lines off the terminal unless asked for.
	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	fetcher := radhttp.NewFetcher()
	defer fetcher.Close()
	scraper := goquery.NewScraper(radslog.NewLoggingFetcher(fetcher, logger))
	deps.CaseScraper = radslog.NewLoggingCaseScraper(scraper, logger)
	deps.ArticleScraper = radslog.NewLoggingArticleScraper(scraper, logger)

	if command == "harvest" {
		deps.Harvester = &harvest.Harvester{
			Sitemaps:     deps.Sitemaps,
			Cases:        deps.CaseScraper,
			Articles:     deps.ArticleScraper,
			CaseStore:    m.CaseService,
			ArticleStore: m.ArticleService,
			RateLimiter:  harvest.NewDomainLimiter(cli.Harvest.RPS),
			Seen:         bloom.NewSeenSet(seenSetSize, seenSetFPRate),
			Concurrency:  cli.Harvest.Concurrency,
			Limit:        cli.Harvest.Limit,
		}
	}

	return kongCtx.Run(deps)
}

// Seen-set sizing for a full-site harvest.
const (
	seenSetSize   = 100000
	seenSetFPRate = 0.01
)

func defaultDBPath() string {
	if path := os.Getenv("RADSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "radscrape.db"
	}
	dir := filepath.Join(home, ".radscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "radscrape.db")
}
