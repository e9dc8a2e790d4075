package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/radscrape/radscrape"
	main "github.com/radscrape/radscrape/cmd/radscrape"
	"github.com/radscrape/radscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists cases with source ID, body system, and title", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			FindCasesFn: func(_ context.Context, _ radscrape.CaseFilter) ([]*radscrape.Case, error) {
				return []*radscrape.Case{
					{SourceID: "rID-1", BodySystem: "Chest", Title: "Pneumothorax"},
					{SourceID: "rID-2", BodySystem: "Central Nervous System", Title: "Glioblastoma"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Cases:  cases,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "rID-1")
		assert.Contains(t, output, "Pneumothorax")
		assert.Contains(t, output, "rID-2")
		assert.Contains(t, output, "Glioblastoma")
	})

	t.Run("passes body system filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter radscrape.CaseFilter
		cases := &mock.CaseService{
			FindCasesFn: func(_ context.Context, filter radscrape.CaseFilter) ([]*radscrape.Case, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Cases:  cases,
		}

		cmd := &main.ListCmd{BodySystem: "Chest", Limit: 5, Offset: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.BodySystem)
		assert.Equal(t, "Chest", *gotFilter.BodySystem)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Equal(t, 10, gotFilter.Offset)
	})

	t.Run("lists articles when --articles is set", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ radscrape.ArticleFilter) ([]*radscrape.Article, error) {
				return []*radscrape.Article{
					{SourceID: "rID-9", BodySystem: "Chest", Title: "Pneumonia"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ListCmd{Articles: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Pneumonia")
	})

	t.Run("prints full payloads with --full", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			FindCasesFn: func(_ context.Context, _ radscrape.CaseFilter) ([]*radscrape.Case, error) {
				return []*radscrape.Case{
					{SourceID: "rID-1", Title: "Pneumothorax", Metadata: radscrape.Metadata{URL: "https://radiopaedia.org/cases/1"}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Cases:  cases,
		}

		cmd := &main.ListCmd{Full: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"source_id":"rID-1"`)
	})

	t.Run("shows helpful message when no cases exist", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			FindCasesFn: func(_ context.Context, _ radscrape.CaseFilter) ([]*radscrape.Case, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Cases:  cases,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No cases found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.DeleteCmd{SourceID: "rID-1"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, radscrape.EINVALID, radscrape.ErrorCode(err))
	})

	t.Run("deletes a case", func(t *testing.T) {
		t.Parallel()

		var deleted string
		cases := &mock.CaseService{
			DeleteCaseFn: func(_ context.Context, sourceID string) error {
				deleted = sourceID
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Cases:  cases,
		}

		cmd := &main.DeleteCmd{SourceID: "rID-1", Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rID-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted rID-1")
	})

	t.Run("deletes an article with --article", func(t *testing.T) {
		t.Parallel()

		var deleted string
		articles := &mock.ArticleService{
			DeleteArticleFn: func(_ context.Context, sourceID string) error {
				deleted = sourceID
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.DeleteCmd{SourceID: "rID-9", Article: true, Force: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rID-9", deleted)
	})

	t.Run("propagates not found error", func(t *testing.T) {
		t.Parallel()

		cases := &mock.CaseService{
			DeleteCaseFn: func(_ context.Context, sourceID string) error {
				return radscrape.Errorf(radscrape.ENOTFOUND, "case not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Cases:  cases,
		}

		cmd := &main.DeleteCmd{SourceID: "rID-404", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, radscrape.ENOTFOUND, radscrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "case not found")
	})
}
