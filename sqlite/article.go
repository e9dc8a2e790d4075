package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/radscrape/radscrape"
)

// Compile-time interface verification.
var _ radscrape.ArticleService = (*ArticleService)(nil)

// ArticleService implements radscrape.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle stores an article. A record with the same source ID is
// replaced in place, keeping its row ID.
func (s *ArticleService) CreateArticle(ctx context.Context, a *radscrape.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	payload, err := a.ToJSON()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_id, title, body_system, payload, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			title = excluded.title,
			body_system = excluded.body_system,
			payload = excluded.payload,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
	`, uuid.New().String(), a.SourceID, a.Title, a.BodySystem, payload,
		hashContent(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindArticleBySourceID retrieves an article by its source-local identifier.
func (s *ArticleService) FindArticleBySourceID(ctx context.Context, sourceID string) (*radscrape.Article, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM articles WHERE source_id = ?
	`, sourceID).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, radscrape.Errorf(radscrape.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	return radscrape.ArticleFromJSON(payload)
}

// FindArticles retrieves articles matching the filter, most recently
// scraped first.
func (s *ArticleService) FindArticles(ctx context.Context, filter radscrape.ArticleFilter) ([]*radscrape.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT payload FROM articles WHERE 1=1")

	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.BodySystem != nil {
		query.WriteString(" AND body_system = ?")
		args = append(args, *filter.BodySystem)
	}

	query.WriteString(" ORDER BY scraped_at DESC, source_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*radscrape.Article
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		a, err := radscrape.ArticleFromJSON(payload)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, sourceID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE source_id = ?", sourceID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return radscrape.Errorf(radscrape.ENOTFOUND, "article not found")
	}

	return nil
}
