// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Repo provides user and preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, name, email, password_hash, avatar_url,
	technical_background, learning_style, reading_frequency, explanation_depth,
	default_level, onboarding_complete, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, name, email, password_hash, avatar_url,
	technical_background, learning_style, reading_frequency, explanation_depth,
	default_level, onboarding_complete, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const updateNameSQL = `
UPDATE users SET name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updateAvatarSQL = `
UPDATE users SET avatar_url = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users SET password_hash = $2, updated_at = now()
WHERE id = $1`

const updatePreferencesSQL = `
UPDATE users SET
	technical_background = $2,
	learning_style       = $3,
	reading_frequency    = $4,
	explanation_depth    = $5,
	default_level        = $6,
	onboarding_complete  = $7,
	updated_at           = now()
WHERE id = $1
RETURNING ` + userColumns

const deleteSQL = `DELETE FROM users WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email address. The email is normalized
// before lookup.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	email = domain.NormalizeEmail(email)
	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
// A duplicate email returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p := u.Preferences
	row := q.QueryRow(ctx, createSQL,
		u.ID,
		u.Name,
		domain.NormalizeEmail(u.Email),
		u.PasswordHash,
		u.AvatarURL,
		string(p.TechnicalBackground),
		string(p.LearningStyle),
		string(p.ReadingFrequency),
		string(p.ExplanationDepth),
		string(p.DefaultLevel),
		p.OnboardingComplete,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	return created, nil
}

// UpdateName sets the display name.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateNameSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// UpdateAvatar sets or clears (nil) the avatar URL.
func (r *Repo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateAvatarSQL, id, avatarURL))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, updatePasswordSQL, id, passwordHash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdatePreferences overwrites the whole preference set.
func (r *Repo) UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updatePreferencesSQL, id,
		string(p.TechnicalBackground),
		string(p.LearningStyle),
		string(p.ReadingFrequency),
		string(p.ExplanationDepth),
		string(p.DefaultLevel),
		p.OnboardingComplete,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// Delete removes the user row. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var background, style, freq, depth, level string

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.AvatarURL,
		&background, &style, &freq, &depth,
		&level, &u.Preferences.OnboardingComplete, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Preferences.TechnicalBackground = domain.TechnicalBackground(background)
	u.Preferences.LearningStyle = domain.LearningStyle(style)
	u.Preferences.ReadingFrequency = domain.ReadingFrequency(freq)
	u.Preferences.ExplanationDepth = domain.ExplanationDepth(depth)
	u.Preferences.DefaultLevel = domain.SimplificationLevel(level)

	return &u, nil
}
