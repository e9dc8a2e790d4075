package goquery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articlePage(viewer string) string {
	return `<html><body>
		<div class="row section-end rid"><div class="col-sm-8">1193</div></div>
		<div class="SidebarStudyViewer">` + viewer + `</div>
	</body></html>`
}

func TestScraper_StudyImages(t *testing.T) {
	t.Parallel()

	t.Run("string identifiers", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(
			`<div class="hidden data">{"inclusions":[{"imageId":"5","caption":"c","thumbnail":"u"}]}</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		require.Len(t, a.Images, 1)
		assert.Equal(t, "5", a.Images[0].ImageID)
		assert.Equal(t, "c", a.Images[0].Caption)
		assert.Equal(t, "u", a.Images[0].Filepath)
		assert.Nil(t, a.Images[0].Modality)
	})

	t.Run("numeric identifiers render without decimals", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(
			`<div class="hidden data">{"inclusions":[{"imageId":58210,"caption":"c","thumbnail":"u"}]}</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		require.Len(t, a.Images, 1)
		assert.Equal(t, "58210", a.Images[0].ImageID)
	})

	t.Run("missing identifier gets the sentinel", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(
			`<div class="hidden data">{"inclusions":[{"caption":"c","thumbnail":"u"}]}</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		require.Len(t, a.Images, 1)
		assert.Equal(t, "unknown", a.Images[0].ImageID)
	})

	t.Run("entries preserve payload order", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(
			`<div class="hidden data">{"inclusions":[{"imageId":"1"},{"imageId":"2"},{"imageId":"3"}]}</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		require.Len(t, a.Images, 3)
		assert.Equal(t, "1", a.Images[0].ImageID)
		assert.Equal(t, "2", a.Images[1].ImageID)
		assert.Equal(t, "3", a.Images[2].ImageID)
	})

	t.Run("malformed payload degrades to empty list", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(`<div class="hidden data">{"inclusions": [truncated</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		assert.NotNil(t, a.Images)
		assert.Empty(t, a.Images)
	})

	t.Run("missing data node degrades to empty list", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(``))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		assert.NotNil(t, a.Images)
		assert.Empty(t, a.Images)
	})

	t.Run("payload without inclusions key degrades to empty list", func(t *testing.T) {
		t.Parallel()
		s := newTestScraper(articlePage(`<div class="hidden data">{"studyId": 9}</div>`))
		a, err := s.ScrapeArticle(context.Background(), "https://radiopaedia.org/articles/x")
		require.NoError(t, err)

		assert.Empty(t, a.Images)
	})
}
