package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	UpdateSectionOrder(ctx context.Context, id uuid.UUID, order []string) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pageRepo interface {
	Create(ctx context.Context, p *domain.Page) (*domain.Page, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
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

// Service provides project management operations.
type Service struct {
	projects    projectRepo
	pages       pageRepo
	users       userRepo
	revalidator revalidator
	index       searchIndex
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	pages pageRepo,
	users userRepo,
	revalidator revalidator,
	index searchIndex,
	tx txManager,
) *Service {
	return &Service{
		projects:    projects,
		pages:       pages,
		users:       users,
		revalidator: revalidator,
		index:       index,
		tx:          tx,
		log:         log.With("service", "project"),
	}
}

// owned loads a project and checks that userID owns it. A foreign project is
// reported as domain.ErrNotFound so its existence is not leaked.
func (s *Service) owned(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(userID) {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return p, nil
}

// revalidate drops cached renderings of the project. Failures are logged only.
func (s *Service) revalidate(ctx context.Context, projectSlug string) {
	if err := s.revalidator.RevalidateProject(ctx, projectSlug); err != nil {
		s.log.WarnContext(ctx, "revalidate project",
			slog.String("project_slug", projectSlug),
			slog.String("error", err.Error()),
		)
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
