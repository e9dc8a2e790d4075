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
var _ radscrape.CaseService = (*CaseService)(nil)

// CaseService implements radscrape.CaseService using SQLite.
type CaseService struct {
	db *DB
}

// NewCaseService creates a new CaseService.
func NewCaseService(db *DB) *CaseService {
	return &CaseService{db: db}
}

// CreateCase stores a case. A record with the same source ID is replaced
// in place, keeping its row ID.
func (s *CaseService) CreateCase(ctx context.Context, c *radscrape.Case) error {
	if err := c.Validate(); err != nil {
		return err
	}

	payload, err := c.ToJSON()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cases (id, source_id, title, body_system, payload, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			title = excluded.title,
			body_system = excluded.body_system,
			payload = excluded.payload,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
	`, uuid.New().String(), c.SourceID, c.Title, c.BodySystem, payload,
		hashContent(payload), time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindCaseBySourceID retrieves a case by its source-local identifier.
func (s *CaseService) FindCaseBySourceID(ctx context.Context, sourceID string) (*radscrape.Case, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM cases WHERE source_id = ?
	`, sourceID).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, radscrape.Errorf(radscrape.ENOTFOUND, "case not found")
	}
	if err != nil {
		return nil, err
	}

	return radscrape.CaseFromJSON(payload)
}

// FindCases retrieves cases matching the filter, most recently scraped first.
func (s *CaseService) FindCases(ctx context.Context, filter radscrape.CaseFilter) ([]*radscrape.Case, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT payload FROM cases WHERE 1=1")

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

	var cases []*radscrape.Case
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		c, err := radscrape.CaseFromJSON(payload)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// DeleteCase permanently removes a case.
func (s *CaseService) DeleteCase(ctx context.Context, sourceID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cases WHERE source_id = ?", sourceID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return radscrape.Errorf(radscrape.ENOTFOUND, "case not found")
	}

	return nil
}
