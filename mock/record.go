package mock

import (
	"context"

	"github.com/radscrape/radscrape"
)

var _ radscrape.CaseService = (*CaseService)(nil)

// CaseService is a mock implementation of radscrape.CaseService.
type CaseService struct {
	CreateCaseFn         func(ctx context.Context, c *radscrape.Case) error
	FindCaseBySourceIDFn func(ctx context.Context, sourceID string) (*radscrape.Case, error)
	FindCasesFn          func(ctx context.Context, filter radscrape.CaseFilter) ([]*radscrape.Case, error)
	DeleteCaseFn         func(ctx context.Context, sourceID string) error
}

func (s *CaseService) CreateCase(ctx context.Context, c *radscrape.Case) error {
	return s.CreateCaseFn(ctx, c)
}

func (s *CaseService) FindCaseBySourceID(ctx context.Context, sourceID string) (*radscrape.Case, error) {
	return s.FindCaseBySourceIDFn(ctx, sourceID)
}

func (s *CaseService) FindCases(ctx context.Context, filter radscrape.CaseFilter) ([]*radscrape.Case, error) {
	return s.FindCasesFn(ctx, filter)
}

func (s *CaseService) DeleteCase(ctx context.Context, sourceID string) error {
	return s.DeleteCaseFn(ctx, sourceID)
}

var _ radscrape.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of radscrape.ArticleService.
type ArticleService struct {
	CreateArticleFn         func(ctx context.Context, a *radscrape.Article) error
	FindArticleBySourceIDFn func(ctx context.Context, sourceID string) (*radscrape.Article, error)
	FindArticlesFn          func(ctx context.Context, filter radscrape.ArticleFilter) ([]*radscrape.Article, error)
	DeleteArticleFn         func(ctx context.Context, sourceID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, a *radscrape.Article) error {
	return s.CreateArticleFn(ctx, a)
}

func (s *ArticleService) FindArticleBySourceID(ctx context.Context, sourceID string) (*radscrape.Article, error) {
	return s.FindArticleBySourceIDFn(ctx, sourceID)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter radscrape.ArticleFilter) ([]*radscrape.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, sourceID string) error {
	return s.DeleteArticleFn(ctx, sourceID)
}
