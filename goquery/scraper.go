// Package goquery implements radscrape's extraction pipeline on top of the
// goquery HTML library. A fetched page is parsed once into a queryable
// tree; independent per-field extractors then read from that tree with
// documented defaults when an expected anchor is absent, and the results
// are assembled into an immutable Case or Article record.
package goquery

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/radscrape/radscrape"
)

// Ensure Scraper implements both scraper interfaces at compile time.
var (
	_ radscrape.CaseScraper    = (*Scraper)(nil)
	_ radscrape.ArticleScraper = (*Scraper)(nil)
)

// Scraper extracts Case and Article records from Radiopaedia pages.
// A Scraper is stateless across invocations and safe for concurrent use.
type Scraper struct {
	fetcher    radscrape.Fetcher
	classifier radscrape.ModalityClassifier
	defaults   radscrape.Defaults
	now        func() time.Time
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithDefaults overrides the injected fallback values.
func WithDefaults(d radscrape.Defaults) Option {
	return func(s *Scraper) {
		s.defaults = d
	}
}

// WithClassifier overrides the modality classifier.
func WithClassifier(c radscrape.ModalityClassifier) Option {
	return func(s *Scraper) {
		s.classifier = c
	}
}

// WithClock overrides the capture-time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scraper) {
		s.now = now
	}
}

// NewScraper creates a Scraper that fetches pages with the given fetcher.
func NewScraper(fetcher radscrape.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:    fetcher,
		classifier: radscrape.NewTagModalityClassifier(),
		defaults:   radscrape.NewDefaults(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScrapeCase fetches a case page and extracts its Case record.
// Transport failures are fatal; once the document is fetched a record is
// always produced.
func (s *Scraper) ScrapeCase(ctx context.Context, url string) (*radscrape.Case, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.assembleCase(doc, url), nil
}

// ScrapeArticle fetches an article page and extracts its Article record.
func (s *Scraper) ScrapeArticle(ctx context.Context, url string) (*radscrape.Article, error) {
	doc, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.assembleArticle(doc, url), nil
}

func (s *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	// goquery is lenient: malformed markup yields a best-effort tree, not
	// an error. A reader failure here is the only way this can fail.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, radscrape.Errorf(radscrape.EINTERNAL, "failed to parse HTML for %s: %v", url, err)
	}
	return doc, nil
}

// sourceID extracts the source-local identifier from the given rID anchor,
// normalized to the first digit run in the anchor text. Never returns an
// empty string: the sentinel covers a missing or digit-free anchor.
func (s *Scraper) sourceID(doc *goquery.Document, selector string) string {
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		return s.defaults.UnknownID
	}
	n, ok := radscrape.FirstInt(node.Text())
	if !ok {
		return s.defaults.UnknownID
	}
	return "rID-" + strconv.Itoa(n)
}

func (s *Scraper) title(doc *goquery.Document) string {
	node := doc.Find(selTitle).First()
	if node.Length() == 0 {
		return s.defaults.UntitledTitle
	}
	return radscrape.CleanText(node.Text())
}

func (s *Scraper) bodySystem(doc *goquery.Document) string {
	node := doc.Find(selBodySystem).First()
	if node.Length() == 0 {
		return s.defaults.UnknownTaxonomy
	}
	return radscrape.CleanText(node.Text())
}

// tags returns the page's taxonomy tags in document order.
// Always a list, never nil.
func tags(doc *goquery.Document) []string {
	out := []string{}
	doc.Find(selTags).Each(func(_ int, a *goquery.Selection) {
		out = append(out, radscrape.CleanText(a.Text()))
	})
	return out
}
