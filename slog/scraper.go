package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/radscrape/radscrape"
)

// Ensure LoggingCaseScraper implements radscrape.CaseScraper.
var _ radscrape.CaseScraper = (*LoggingCaseScraper)(nil)

// LoggingCaseScraper wraps a CaseScraper with operation logging.
type LoggingCaseScraper struct {
	next   radscrape.CaseScraper
	logger *slog.Logger
}

// NewLoggingCaseScraper creates a new LoggingCaseScraper.
func NewLoggingCaseScraper(next radscrape.CaseScraper, logger *slog.Logger) *LoggingCaseScraper {
	return &LoggingCaseScraper{next: next, logger: logger}
}

// ScrapeCase delegates to the wrapped scraper and logs the operation.
func (s *LoggingCaseScraper) ScrapeCase(ctx context.Context, url string) (c *radscrape.Case, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if c != nil {
			attrs = append(attrs, "source_id", c.SourceID, "images", len(c.Images))
		}
		s.logger.Info("scrape case", attrs...)
	}(time.Now())
	return s.next.ScrapeCase(ctx, url)
}

// Ensure LoggingArticleScraper implements radscrape.ArticleScraper.
var _ radscrape.ArticleScraper = (*LoggingArticleScraper)(nil)

// LoggingArticleScraper wraps an ArticleScraper with operation logging.
type LoggingArticleScraper struct {
	next   radscrape.ArticleScraper
	logger *slog.Logger
}

// NewLoggingArticleScraper creates a new LoggingArticleScraper.
func NewLoggingArticleScraper(next radscrape.ArticleScraper, logger *slog.Logger) *LoggingArticleScraper {
	return &LoggingArticleScraper{next: next, logger: logger}
}

// ScrapeArticle delegates to the wrapped scraper and logs the operation.
func (s *LoggingArticleScraper) ScrapeArticle(ctx context.Context, url string) (a *radscrape.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if a != nil {
			attrs = append(attrs, "source_id", a.SourceID, "sections", len(a.Sections))
		}
		s.logger.Info("scrape article", attrs...)
	}(time.Now())
	return s.next.ScrapeArticle(ctx, url)
}
