package radscrape

import "context"

// CaseScraper extracts a structured Case record from a case page.
//
// Once the document is fetched, extraction always produces a record:
// missing structural anchors degrade to the documented per-field defaults,
// never to an error.
type CaseScraper interface {
	ScrapeCase(ctx context.Context, url string) (*Case, error)
}

// ArticleScraper extracts a structured Article record from an article page.
type ArticleScraper interface {
	ScrapeArticle(ctx context.Context, url string) (*Article, error)
}
