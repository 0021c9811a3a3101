package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default preferences.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seeded.hash.not.a.real.password.hash.value.000000",
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, default_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Preferences.DefaultLevel), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProject creates a private project owned by owner with a unique slug.
// No pages are created.
func SeedProject(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Project {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	project := domain.Project{
		ID:           uuid.New(),
		OwnerID:      owner.ID,
		OwnerEmail:   owner.Email,
		Name:         "Project " + suffix,
		Slug:         "project-" + suffix,
		Theme:        domain.DefaultTheme(),
		SectionOrder: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, owner_id, owner_email, name, slug, is_public, accent_color, font, section_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		project.ID, project.OwnerID, project.OwnerEmail, project.Name, project.Slug, project.IsPublic,
		project.Theme.AccentColor, string(project.Theme.Font), project.SectionOrder, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert project: %v", err)
	}

	return project
}

// PageOption customizes a seeded page.
type PageOption func(*domain.Page)

// WithSection sets the page's section label.
func WithSection(section string) PageOption {
	return func(p *domain.Page) { p.Section = section }
}

// Published marks the page as published.
func Published() PageOption {
	return func(p *domain.Page) { p.IsPublished = true }
}

// WithViews sets the initial view counter.
func WithViews(n int64) PageOption {
	return func(p *domain.Page) { p.Views = n }
}

// WithContent sets the markdown body.
func WithContent(content string) PageOption {
	return func(p *domain.Page) { p.Content = content }
}

// WithTitle sets the title and derives the slug from it.
func WithTitle(title string) PageOption {
	return func(p *domain.Page) {
		p.Title = title
		p.Slug = domain.Slugify(title)
	}
}

// SeedPage creates a draft page in the project. Options override defaults.
func SeedPage(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, opts ...PageOption) domain.Page {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	page := domain.Page{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     "Page " + suffix,
		Slug:      "page-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&page)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pages (id, project_id, title, slug, content, section, is_published, sort_order, views, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		page.ID, page.ProjectID, page.Title, page.Slug, page.Content, page.Section,
		page.IsPublished, page.SortOrder, page.Views, page.CreatedAt, page.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPage insert page: %v", err)
	}

	return page
}
