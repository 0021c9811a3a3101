// Package session implements the login Session repository using PostgreSQL.
// Only token hashes are stored; raw tokens never reach the database.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, token_hash, user_agent, ip, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO sessions (id, user_id, token_hash, user_agent, ip, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING ` + sessionColumns

// Active means neither revoked nor expired.
const getActiveByHashSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`

const getActiveByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1 AND revoked_at IS NULL AND expires_at > now()`

const revokeSQL = `
UPDATE sessions SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllByUserSQL = `
UPDATE sessions SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions
WHERE expires_at <= now() OR revoked_at IS NOT NULL`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new session and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.TokenHash,
		s.UserAgent,
		s.IP,
		s.ExpiresAt.UTC(),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}

	return created, nil
}

// GetByHash returns an active session by token hash.
// Returns domain.ErrNotFound if the session does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getActiveByHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "session", "by-hash")
	}

	return s, nil
}

// GetByID returns an active session by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getActiveByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return s, nil
}

// Revoke ends one session. Idempotent: revoking an already-revoked session is not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}

	return nil
}

// RevokeAllByUser ends every active session of a user and returns how many were ended.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, revokeAllByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "session", userID)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteExpired removes expired or revoked sessions and returns the count.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session

	err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.UserAgent, &s.IP, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
