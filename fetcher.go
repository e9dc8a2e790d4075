package radscrape

import "context"

// Fetcher retrieves rendered HTML from URLs. The fetch is the only
// blocking boundary of an extraction: transport failures (non-success
// status, network error, timeout) are fatal to the invocation and are
// surfaced before any parsing begins.
type Fetcher interface {
	// Fetch retrieves the document at url. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for bulk fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
