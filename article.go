package radscrape

import (
	"context"
	"encoding/json"
)

// Article represents a reference/educational record organized into titled
// sections with illustrative images. Like Case, articles are immutable
// value objects created fresh per page.
type Article struct {
	Source     string  `json:"source"`
	SourceID   string  `json:"source_id"`
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	BodySystem string  `json:"body_system"`
	BodyPart   *string `json:"body_part"`

	// Sections preserves document order. Content appearing before the
	// first heading is materialized under a reserved introduction title.
	Sections []ArticleSection `json:"sections"`

	Images   []ArticleImage `json:"images"`
	Tags     []string       `json:"tags"`
	Metadata Metadata       `json:"metadata"`
}

// ArticleSection is one titled segment of an article's narrative body.
type ArticleSection struct {
	// Slug is derived from the title by normalization (see Slugify).
	Slug  string `json:"slug"`
	Title string `json:"title"`

	// Markdown holds the section body: cleaned paragraph lines and
	// "- "-prefixed list items, headings stripped.
	Markdown string `json:"markdown"`
}

// ArticleImage is one image referenced by an article's embedded study data.
//
// ImageID carries the "unknown" sentinel when the embedded payload has no
// identifier; it is not guaranteed unique and must not be used as a key.
type ArticleImage struct {
	ImageID     string  `json:"image_id"`
	FigureLabel *string `json:"figure_label"`
	Modality    *string `json:"modality"`
	Plane       *string `json:"plane"`
	Caption     string  `json:"caption"`
	Filepath    string  `json:"filepath"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceID == "" {
		return Errorf(EINVALID, "article source ID required")
	}
	if a.Metadata.URL == "" {
		return Errorf(EINVALID, "article origin URL required")
	}
	return nil
}

// ToJSON serializes the article to its compact structured-text
// representation. Round-tripping reconstructs equivalent field values.
func (a *Article) ToJSON() (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", Errorf(EINTERNAL, "failed to serialize article: %v", err)
	}
	return string(b), nil
}

// ArticleFromJSON reconstructs an Article from its serialized representation.
func ArticleFromJSON(s string) (*Article, error) {
	var a Article
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil, Errorf(EINVALID, "failed to parse article payload: %v", err)
	}
	return &a, nil
}

// ArticleService represents a service for managing stored articles.
type ArticleService interface {
	// CreateArticle stores an article. An existing record with the same
	// source ID is replaced.
	CreateArticle(ctx context.Context, a *Article) error

	// FindArticleBySourceID retrieves an article by its source-local
	// identifier. Returns ENOTFOUND if the article does not exist.
	FindArticleBySourceID(ctx context.Context, sourceID string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, sourceID string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	SourceID   *string `json:"source_id"`
	BodySystem *string `json:"body_system"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
