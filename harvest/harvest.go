// Package harvest provides scraping orchestration. It coordinates sitemap
// discovery, per-URL scraping of cases and articles, and storage of the
// resulting records.
package harvest

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/radscrape/radscrape"
	"github.com/radscrape/radscrape/bloom"
	"golang.org/x/sync/errgroup"
)

// Harvester orchestrates a scrape of a Radiopaedia-style site.
type Harvester struct {
	Sitemaps     radscrape.SitemapService
	Cases        radscrape.CaseScraper
	Articles     radscrape.ArticleScraper
	CaseStore    radscrape.CaseService
	ArticleStore radscrape.ArticleService
	RateLimiter  radscrape.DomainLimiter
	Seen         *bloom.SeenSet
	Concurrency  int
	Limit        int
	RetryDelays  []time.Duration
}

// Result holds the outcome of a harvest run.
type Result struct {
	Cases    int
	Articles int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during a harvest run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// pageKind classifies a URL by its path.
type pageKind int

const (
	kindUnknown pageKind = iota
	kindCase
	kindArticle
)

func classify(rawURL string) pageKind {
	u, err := url.Parse(rawURL)
	if err != nil {
		return kindUnknown
	}
	switch {
	case strings.Contains(u.Path, "/cases/"):
		return kindCase
	case strings.Contains(u.Path, "/articles/"):
		return kindArticle
	default:
		return kindUnknown
	}
}

// Run discovers URLs under baseURL, scrapes each case and article page,
// and saves the records. URLs that match neither page kind, or that the
// seen set already holds, are skipped. The progress callback, if
// provided, receives events as the run proceeds.
func (h *Harvester) Run(ctx context.Context, baseURL string, filter *radscrape.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := h.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, radscrape.Errorf(radscrape.EUNAVAILABLE, "sitemap discovery: %v", err)
	}
	if h.Limit > 0 && len(urls) > h.Limit {
		urls = urls[:h.Limit]
	}

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var result Result
	var cases, articles, skipped, failed atomic.Int64
	var completed atomic.Int64

	notify := func(typ ProgressType, url string, err error) {
		if progress == nil {
			return
		}
		progress(ProgressEvent{
			Type:      typ,
			Completed: int(completed.Add(1)),
			Total:     total,
			URL:       url,
			Error:     err,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, pageURL := range urls {
		g.Go(func() error {
			kind := classify(pageURL)
			if kind == kindUnknown {
				skipped.Add(1)
				notify(ProgressSkipped, pageURL, nil)
				return nil
			}
			if h.Seen != nil && !h.Seen.MarkIfNew(pageURL) {
				skipped.Add(1)
				notify(ProgressSkipped, pageURL, nil)
				return nil
			}
			if err := h.wait(gctx, pageURL); err != nil {
				return err
			}

			var err error
			switch kind {
			case kindCase:
				err = h.harvestCase(gctx, pageURL)
				if err == nil {
					cases.Add(1)
				}
			case kindArticle:
				err = h.harvestArticle(gctx, pageURL)
				if err == nil {
					articles.Add(1)
				}
			}
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				notify(ProgressFailed, pageURL, err)
				return nil
			}
			notify(ProgressCompleted, pageURL, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Cases = int(cases.Load())
	result.Articles = int(articles.Load())
	result.Skipped = int(skipped.Load())
	result.Failed = int(failed.Load())

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return &result, nil
}

func (h *Harvester) wait(ctx context.Context, pageURL string) error {
	if h.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	return h.RateLimiter.Wait(ctx, u.Host)
}

func (h *Harvester) harvestCase(ctx context.Context, pageURL string) error {
	var c *radscrape.Case
	err := withRetry(ctx, h.delays(), func(ctx context.Context) error {
		var err error
		c, err = h.Cases.ScrapeCase(ctx, pageURL)
		return err
	})
	if err != nil {
		return err
	}
	return h.CaseStore.CreateCase(ctx, c)
}

func (h *Harvester) harvestArticle(ctx context.Context, pageURL string) error {
	var a *radscrape.Article
	err := withRetry(ctx, h.delays(), func(ctx context.Context) error {
		var err error
		a, err = h.Articles.ScrapeArticle(ctx, pageURL)
		return err
	})
	if err != nil {
		return err
	}
	return h.ArticleStore.CreateArticle(ctx, a)
}

func (h *Harvester) delays() []time.Duration {
	if h.RetryDelays != nil {
		return h.RetryDelays
	}
	return DefaultRetryDelays()
}
