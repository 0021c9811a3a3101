package project

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// ListSections returns the project's pages grouped by section:
// Uncategorized first, then the saved order, then the rest alphabetically.
func (s *Service) ListSections(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.owned(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.ListSections: %w", err)
	}

	pages, err := s.pages.ListByProject(ctx, projectID, domain.PageFilter{})
	if err != nil {
		return nil, fmt.Errorf("project.ListSections: %w", err)
	}

	return domain.GroupPagesBySection(pages, p.SectionOrder), nil
}

// UpdateSectionOrder replaces the saved section order.
func (s *Service) UpdateSectionOrder(ctx context.Context, input UpdateSectionOrderInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.owned(ctx, userID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("project.UpdateSectionOrder: %w", err)
	}

	updated, err := s.projects.UpdateSectionOrder(ctx, input.ProjectID, domain.NormalizeSectionOrder(input.Order))
	if err != nil {
		return nil, fmt.Errorf("project.UpdateSectionOrder: %w", err)
	}

	s.revalidate(ctx, updated.Slug)

	s.log.InfoContext(ctx, "section order updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", updated.ID.String()),
		slog.Int("sections", len(updated.SectionOrder)),
	)

	return updated, nil
}

// MoveSection places one section directly after another (or first) and
// persists the resulting order. Sections that pages use but the saved order
// lacks take part in the move at their displayed position. Unknown names
// leave the order unchanged.
func (s *Service) MoveSection(ctx context.Context, input MoveSectionInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.owned(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("project.MoveSection: %w", err)
	}

	pages, err := s.pages.ListByProject(ctx, input.ProjectID, domain.PageFilter{})
	if err != nil {
		return nil, fmt.Errorf("project.MoveSection: %w", err)
	}

	displayed := domain.SectionNames(domain.GroupPagesBySection(pages, p.SectionOrder))
	for _, name := range domain.NormalizeSectionOrder(p.SectionOrder) {
		if !slices.Contains(displayed, name) {
			displayed = append(displayed, name)
		}
	}

	order := domain.MoveSection(displayed, strings.TrimSpace(input.Section), strings.TrimSpace(input.After))
	if slices.Equal(order, p.SectionOrder) {
		return p, nil
	}

	updated, err := s.projects.UpdateSectionOrder(ctx, input.ProjectID, order)
	if err != nil {
		return nil, fmt.Errorf("project.MoveSection: %w", err)
	}

	s.revalidate(ctx, updated.Slug)

	s.log.InfoContext(ctx, "section moved",
		slog.String("user_id", userID.String()),
		slog.String("project_id", updated.ID.String()),
		slog.String("section", input.Section),
		slog.String("after", input.After),
	)

	return updated, nil
}
