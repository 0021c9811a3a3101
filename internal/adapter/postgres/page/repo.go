// Package page implements the Page repository using PostgreSQL.
package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/mydocs-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Repo provides page persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new page repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tableName = "pages"

const pageColumns = `id, project_id, title, slug, content, section, is_published,
	sort_order, views, created_at, updated_at`

const createSQL = `
INSERT INTO pages (id, project_id, title, slug, content, section, is_published,
	sort_order, views, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, now(), now())
RETURNING ` + pageColumns

const getByIDSQL = `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`

const getBySlugSQL = `SELECT ` + pageColumns + ` FROM pages WHERE project_id = $1 AND slug = $2`

const slugExistsSQL = `SELECT EXISTS(SELECT 1 FROM pages WHERE project_id = $1 AND slug = $2)`

const maxSortOrderSQL = `SELECT coalesce(max(sort_order), -1) FROM pages WHERE project_id = $1`

const updateContentSQL = `
UPDATE pages SET content = $2, updated_at = now()
WHERE id = $1
RETURNING ` + pageColumns

const updateSectionSQL = `
UPDATE pages SET section = $2, updated_at = now()
WHERE id = $1
RETURNING ` + pageColumns

const setPublishedSQL = `
UPDATE pages SET is_published = $2, updated_at = now()
WHERE id = $1
RETURNING ` + pageColumns

const updateMetaSQL = `
UPDATE pages SET title = $2, slug = $3, updated_at = now()
WHERE id = $1
RETURNING ` + pageColumns

const reorderSQL = `
UPDATE pages SET sort_order = $3, updated_at = now()
WHERE id = $1 AND project_id = $2`

const incrementViewsSQL = `
UPDATE pages SET views = views + 1
WHERE id = $1
RETURNING views`

const topByViewsSQL = `
SELECT id, title, slug, views
FROM pages
WHERE project_id = $1
ORDER BY views DESC, title ASC
LIMIT $2`

const deleteSQL = `DELETE FROM pages WHERE id = $1`

const deleteByProjectIDsSQL = `DELETE FROM pages WHERE project_id = ANY($1)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a page by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPage(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "page", id)
	}

	return p, nil
}

// GetBySlug returns a page of a project by slug.
func (r *Repo) GetBySlug(ctx context.Context, projectID uuid.UUID, slug string) (*domain.Page, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPage(q.QueryRow(ctx, getBySlugSQL, projectID, slug))
	if err != nil {
		return nil, postgres.MapError(err, "page", slug)
	}

	return p, nil
}

// ListByProject returns a project's pages ordered by sort order, then
// creation time. Never nil.
func (r *Repo) ListByProject(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error) {
	qb := postgres.Builder().
		Select(pageColumns).
		From(tableName).
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("sort_order ASC", "created_at ASC", "id ASC")
	if f.PublishedOnly {
		qb = qb.Where(squirrel.Eq{"is_published": true})
	}

	return r.list(ctx, qb)
}

// Search returns published pages of a project whose title or content
// contains query, case-insensitively. Title matches rank first.
func (r *Repo) Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]domain.Page, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	qb := postgres.Builder().
		Select(pageColumns).
		From(tableName).
		Where(squirrel.Eq{"project_id": projectID, "is_published": true}).
		Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		}).
		OrderByClause("(title ILIKE ?) DESC", pattern).
		OrderBy("sort_order ASC", "created_at ASC").
		Limit(uint64(limit))

	return r.list(ctx, qb)
}

// SlugExists reports whether a page in the project already uses slug.
func (r *Repo) SlugExists(ctx context.Context, projectID uuid.UUID, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, slugExistsSQL, projectID, slug).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "page", slug)
	}

	return exists, nil
}

// MaxSortOrder returns the highest sort order in the project, or -1 when
// the project has no pages.
func (r *Repo) MaxSortOrder(ctx context.Context, projectID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, maxSortOrderSQL, projectID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "project", projectID)
	}

	return n, nil
}

// TopByViews returns up to limit pages ranked by views, ties broken by title.
func (r *Repo) TopByViews(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.PageViewCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, topByViewsSQL, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("top pages by views: %w", err)
	}
	defer rows.Close()

	top := []domain.PageViewCount{}
	for rows.Next() {
		var c domain.PageViewCount
		if err := rows.Scan(&c.PageID, &c.Title, &c.Slug, &c.Views); err != nil {
			return nil, fmt.Errorf("scan page view count: %w", err)
		}
		top = append(top, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top pages by views: %w", err)
	}

	return top, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new page. A slug already used in the project returns
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.ID,
		p.ProjectID,
		p.Title,
		p.Slug,
		p.Content,
		p.Section,
		p.IsPublished,
		p.SortOrder,
	)

	created, err := scanPage(row)
	if err != nil {
		return nil, postgres.MapError(err, "page", p.Slug)
	}

	return created, nil
}

// UpdateContent replaces the markdown body. Last write wins.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Page, error) {
	return r.updateOne(ctx, id, updateContentSQL, content)
}

// UpdateSection sets the section label; empty means Uncategorized.
func (r *Repo) UpdateSection(ctx context.Context, id uuid.UUID, section string) (*domain.Page, error) {
	return r.updateOne(ctx, id, updateSectionSQL, section)
}

// SetPublished toggles the published flag.
func (r *Repo) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Page, error) {
	return r.updateOne(ctx, id, setPublishedSQL, published)
}

// UpdateMeta sets title and slug together.
func (r *Repo) UpdateMeta(ctx context.Context, id uuid.UUID, title, slug string) (*domain.Page, error) {
	return r.updateOne(ctx, id, updateMetaSQL, title, slug)
}

// Reorder assigns sort orders 0..n-1 following ids. Pages outside the
// project are ignored; if any id does not match, domain.ErrNotFound is returned.
func (r *Repo) Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(reorderSQL, id, projectID, i)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, id := range ids {
		ct, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "page", id)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
		}
	}

	return nil
}

// IncrementViews adds one to the page's view counter and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var views int64
	if err := q.QueryRow(ctx, incrementViewsSQL, id).Scan(&views); err != nil {
		return 0, postgres.MapError(err, "page", id)
	}

	return views, nil
}

// Delete removes one page. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "page", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByProjectIDs removes all pages of the given projects and returns the count.
func (r *Repo) DeleteByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (int, error) {
	if len(projectIDs) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteByProjectIDsSQL, projectIDs)
	if err != nil {
		return 0, fmt.Errorf("delete pages by projects: %w", err)
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) updateOne(ctx context.Context, id uuid.UUID, sql string, args ...any) (*domain.Page, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPage(q.QueryRow(ctx, sql, append([]any{id}, args...)...))
	if err != nil {
		return nil, postgres.MapError(err, "page", id)
	}

	return p, nil
}

func (r *Repo) list(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Page, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	pages := []domain.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	return pages, nil
}

func scanPage(row pgx.Row) (*domain.Page, error) {
	var p domain.Page

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Title, &p.Slug, &p.Content, &p.Section, &p.IsPublished,
		&p.SortOrder, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
