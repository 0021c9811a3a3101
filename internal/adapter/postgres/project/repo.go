// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tableName = "projects"

const projectColumns = `id, owner_id, owner_email, name, slug, description, is_public,
	accent_color, font, section_order, created_at, updated_at`

const createSQL = `
INSERT INTO projects (id, owner_id, owner_email, name, slug, description, is_public,
	accent_color, font, section_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
RETURNING ` + projectColumns

const getByIDSQL = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

const getBySlugSQL = `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`

const listByOwnerSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner_id = $1
ORDER BY created_at DESC, id`

const updateSectionOrderSQL = `
UPDATE projects SET section_order = $2, updated_at = now()
WHERE id = $1
RETURNING ` + projectColumns

const deleteSQL = `DELETE FROM projects WHERE id = $1`

const deleteByOwnerSQL = `DELETE FROM projects WHERE owner_id = $1`

const statsSQL = `
SELECT p.id,
       count(pg.id)::int                               AS page_count,
       count(pg.id) FILTER (WHERE pg.is_published)::int AS published_count,
       coalesce(sum(pg.views), 0)::bigint              AS total_views
FROM projects p
LEFT JOIN pages pg ON pg.project_id = p.id
WHERE p.id = ANY($1)
GROUP BY p.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	return p, nil
}

// GetBySlug returns a project by its globally unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "project", slug)
	}

	return p, nil
}

// ListByOwner returns the owner's projects, newest first. Never nil.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}

	return projects, nil
}

// StatsByIDs returns page counts and view totals for the given projects.
// Projects that do not exist are absent from the result.
func (r *Repo) StatsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ProjectStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, statsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.ProjectStats, 0, len(ids))
	for rows.Next() {
		var s domain.ProjectStats
		if err := rows.Scan(&s.ProjectID, &s.PageCount, &s.PublishedCount, &s.TotalViews); err != nil {
			return nil, fmt.Errorf("scan project stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new project. A taken slug returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.ID,
		p.OwnerID,
		p.OwnerEmail,
		p.Name,
		p.Slug,
		p.Description,
		p.IsPublic,
		p.Theme.AccentColor,
		string(p.Theme.Font),
		domain.NormalizeSectionOrder(p.SectionOrder),
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.Slug)
	}

	return created, nil
}

// Update applies the non-nil fields of params. With nothing to change it
// returns the stored project unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		if *params.Description == "" {
			set["description"] = nil
		} else {
			set["description"] = *params.Description
		}
	}
	if params.IsPublic != nil {
		set["is_public"] = *params.IsPublic
	}
	if params.AccentColor != nil {
		set["accent_color"] = *params.AccentColor
	}
	if params.Font != nil {
		set["font"] = string(*params.Font)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder().
		Update(tableName).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project update: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanProject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	return p, nil
}

// UpdateSectionOrder persists a normalized section order.
func (r *Repo) UpdateSectionOrder(ctx context.Context, id uuid.UUID, order []string) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, updateSectionOrderSQL, id, domain.NormalizeSectionOrder(order)))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}

	return p, nil
}

// Delete removes a project. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByOwner removes every project of a user and returns the count.
func (r *Repo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteByOwnerSQL, ownerID)
	if err != nil {
		return 0, postgres.MapError(err, "project owner", ownerID)
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var font string

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.OwnerEmail, &p.Name, &p.Slug, &p.Description, &p.IsPublic,
		&p.Theme.AccentColor, &font, &p.SectionOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Theme.Font = domain.ThemeFont(font)
	if p.SectionOrder == nil {
		p.SectionOrder = []string{}
	}

	return &p, nil
}
