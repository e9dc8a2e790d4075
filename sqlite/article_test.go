package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/radscrape/radscrape"
	"github.com/radscrape/radscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredArticle(sourceID string) *radscrape.Article {
	modality := "CT"
	return &radscrape.Article{
		Source:     radscrape.Source,
		SourceID:   sourceID,
		Type:       radscrape.TypeArticle,
		Title:      "Pneumonia",
		BodySystem: "Chest",
		Sections: []radscrape.ArticleSection{
			{Slug: "introduction", Title: "Introduction", Markdown: "Pneumonia is an infection of the lung parenchyma."},
			{Slug: "epidemiology", Title: "Epidemiology", Markdown: "Common at the extremes of age."},
		},
		Images: []radscrape.ArticleImage{
			{ImageID: "58210", Modality: &modality, Caption: "Figure 1", Filepath: "https://images.example.org/58210.jpg"},
		},
		Tags: []string{"infection"},
		Metadata: radscrape.Metadata{
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			URL:       "https://radiopaedia.org/articles/pneumonia",
			License:   "See Radiopaedia ToS",
		},
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("stores and retrieves an article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		a := newStoredArticle("rID-200")
		require.NoError(t, svc.CreateArticle(ctx, a))

		got, err := svc.FindArticleBySourceID(ctx, "rID-200")
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("replaces existing article with same source id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, newStoredArticle("rID-200")))

		updated := newStoredArticle("rID-200")
		updated.Sections = append(updated.Sections, radscrape.ArticleSection{
			Slug: "treatment_and_prognosis", Title: "Treatment and prognosis", Markdown: "Antibiotics.",
		})
		require.NoError(t, svc.CreateArticle(ctx, updated))

		got, err := svc.FindArticleBySourceID(ctx, "rID-200")
		require.NoError(t, err)
		assert.Len(t, got.Sections, 3)

		all, err := svc.FindArticles(ctx, radscrape.ArticleFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("returns error for invalid article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.CreateArticle(context.Background(), &radscrape.Article{})
		require.Error(t, err)
		assert.Equal(t, radscrape.EINVALID, radscrape.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("filters by body system", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		chest := newStoredArticle("rID-1")
		msk := newStoredArticle("rID-2")
		msk.BodySystem = "Musculoskeletal"
		require.NoError(t, svc.CreateArticle(ctx, chest))
		require.NoError(t, svc.CreateArticle(ctx, msk))

		bodySystem := "Musculoskeletal"
		got, err := svc.FindArticles(ctx, radscrape.ArticleFilter{BodySystem: &bodySystem})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "rID-2", got[0].SourceID)
	})

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		_, err := svc.FindArticleBySourceID(context.Background(), "rID-404")
		require.Error(t, err)
		assert.Equal(t, radscrape.ENOTFOUND, radscrape.ErrorCode(err))
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, newStoredArticle("rID-1")))
		require.NoError(t, svc.DeleteArticle(ctx, "rID-1"))

		_, err := svc.FindArticleBySourceID(ctx, "rID-1")
		assert.Equal(t, radscrape.ENOTFOUND, radscrape.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.DeleteArticle(context.Background(), "rID-404")
		require.Error(t, err)
		assert.Equal(t, radscrape.ENOTFOUND, radscrape.ErrorCode(err))
	})
}
