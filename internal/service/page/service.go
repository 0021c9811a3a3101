package page

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

type pageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error)
	SlugExists(ctx context.Context, projectID uuid.UUID, slug string) (bool, error)
	MaxSortOrder(ctx context.Context, projectID uuid.UUID) (int, error)
	Create(ctx context.Context, p *domain.Page) (*domain.Page, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Page, error)
	UpdateSection(ctx context.Context, id uuid.UUID, section string) (*domain.Page, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Page, error)
	UpdateMeta(ctx context.Context, id uuid.UUID, title, slug string) (*domain.Page, error)
	Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

type revalidator interface {
	RevalidateProject(ctx context.Context, projectSlug string) error
}

type searchIndex interface {
	IndexPage(p domain.Page)
	DeletePage(id uuid.UUID)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// maxSlugAttempts bounds the -2, -3, ... suffix search on slug collisions.
const maxSlugAttempts = 100

// Service provides page editing operations.
type Service struct {
	pages       pageRepo
	projects    projectRepo
	revalidator revalidator
	index       searchIndex
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Page service.
func NewService(
	log *slog.Logger,
	pages pageRepo,
	projects projectRepo,
	revalidator revalidator,
	index searchIndex,
	tx txManager,
) *Service {
	return &Service{
		pages:       pages,
		projects:    projects,
		revalidator: revalidator,
		index:       index,
		tx:          tx,
		log:         log.With("service", "page"),
	}
}

// ownedProject loads a project owned by userID. Foreign projects are
// reported as domain.ErrNotFound.
func (s *Service) ownedProject(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(userID) {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return p, nil
}

// ownedPage loads a page and its project, checking the project is owned by userID.
func (s *Service) ownedPage(ctx context.Context, userID, pageID uuid.UUID) (*domain.Page, *domain.Project, error) {
	pg, err := s.pages.GetByID(ctx, pageID)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.ownedProject(ctx, userID, pg.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("page %s: %w", pageID, domain.ErrNotFound)
	}
	return pg, p, nil
}

// uniqueSlug returns base, or base-2, base-3, ... whichever is free first.
// Reserved slugs are never free.
func (s *Service) uniqueSlug(ctx context.Context, projectID uuid.UUID, base string) (string, error) {
	slug := base
	for n := 2; n <= maxSlugAttempts+1; n++ {
		if domain.IsReservedPageSlug(slug) {
			slug = fmt.Sprintf("%s-%d", base, n)
			continue
		}
		exists, err := s.pages.SlugExists(ctx, projectID, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return "", fmt.Errorf("slug %q: %w", base, domain.ErrConflict)
}

func (s *Service) revalidate(ctx context.Context, projectSlug string) {
	if err := s.revalidator.RevalidateProject(ctx, projectSlug); err != nil {
		s.log.WarnContext(ctx, "revalidate project",
			slog.String("project_slug", projectSlug),
			slog.String("error", err.Error()),
		)
	}
}

// normalizeSection trims a section label. The Uncategorized bucket is stored
// as the empty label.
func normalizeSection(section string) string {
	section = strings.TrimSpace(section)
	if section == domain.UncategorizedSection {
		return ""
	}
	return section
}
