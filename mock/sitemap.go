package mock

import (
	"context"

	"github.com/radscrape/radscrape"
)

var _ radscrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of radscrape.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *radscrape.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *radscrape.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
