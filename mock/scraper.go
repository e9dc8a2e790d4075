package mock

import (
	"context"

	"github.com/radscrape/radscrape"
)

var _ radscrape.CaseScraper = (*CaseScraper)(nil)

// CaseScraper is a mock implementation of radscrape.CaseScraper.
type CaseScraper struct {
	ScrapeCaseFn func(ctx context.Context, url string) (*radscrape.Case, error)
}

func (s *CaseScraper) ScrapeCase(ctx context.Context, url string) (*radscrape.Case, error) {
	return s.ScrapeCaseFn(ctx, url)
}

var _ radscrape.ArticleScraper = (*ArticleScraper)(nil)

// ArticleScraper is a mock implementation of radscrape.ArticleScraper.
type ArticleScraper struct {
	ScrapeArticleFn func(ctx context.Context, url string) (*radscrape.Article, error)
}

func (s *ArticleScraper) ScrapeArticle(ctx context.Context, url string) (*radscrape.Article, error) {
	return s.ScrapeArticleFn(ctx, url)
}

var _ radscrape.ModalityClassifier = (*ModalityClassifier)(nil)

// ModalityClassifier is a mock implementation of radscrape.ModalityClassifier.
type ModalityClassifier struct {
	ClassifyFn func(tags []string) []string
}

func (c *ModalityClassifier) Classify(tags []string) []string {
	return c.ClassifyFn(tags)
}
