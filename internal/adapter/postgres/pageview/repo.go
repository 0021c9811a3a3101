// Package pageview implements the PageView repository using PostgreSQL.
// Rows carry their own expires_at; expired rows are ignored by reads and
// removed by DeleteExpired.
package pageview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Repo provides page view persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new page view repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO page_views (id, page_id, ip, user_agent, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const countUniqueByProjectSQL = `
SELECT count(DISTINCT (v.ip, v.user_agent))
FROM page_views v
JOIN pages p ON p.id = v.page_id
WHERE p.project_id = $1 AND v.expires_at > $2`

const deleteExpiredSQL = `DELETE FROM page_views WHERE expires_at <= $1`

// Create records one visit.
func (r *Repo) Create(ctx context.Context, v domain.PageView) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, v.ID, v.PageID, v.IP, v.UserAgent, v.CreatedAt.UTC(), v.ExpiresAt.UTC())
	if err != nil {
		return postgres.MapError(err, "page_view", v.PageID)
	}

	return nil
}

// CountUniqueByProject returns the number of distinct (ip, user agent) pairs
// among the project's page views still visible at now.
func (r *Repo) CountUniqueByProject(ctx context.Context, projectID uuid.UUID, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := q.QueryRow(ctx, countUniqueByProjectSQL, projectID, now.UTC()).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "project", projectID)
	}

	return n, nil
}

// DeleteExpired removes views that expired at or before now and returns the count.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired page views: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
