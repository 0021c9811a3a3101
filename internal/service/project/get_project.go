package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// GetProject returns one of the caller's projects.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.owned(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.GetProject: %w", err)
	}

	return p, nil
}

// GetProjectBySlug returns one of the caller's projects by slug.
func (s *Service) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("project.GetProjectBySlug: %w", err)
	}
	if !p.OwnedBy(userID) {
		return nil, fmt.Errorf("project.GetProjectBySlug: project %s: %w", slug, domain.ErrNotFound)
	}

	return p, nil
}

// ListProjects returns the caller's projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project.ListProjects: %w", err)
	}

	return projects, nil
}
