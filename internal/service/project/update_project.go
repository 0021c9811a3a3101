package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// UpdateProject changes project settings and theme.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ProjectUpdateParams{
		IsPublic:    input.IsPublic,
		AccentColor: input.AccentColor,
		Font:        input.Font,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed // "" clears -> NULL in DB
	}

	if _, err := s.owned(ctx, userID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}

	updated, err := s.projects.Update(ctx, input.ProjectID, params)
	if err != nil {
		return nil, fmt.Errorf("project.UpdateProject: %w", err)
	}

	s.revalidate(ctx, updated.Slug)

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", updated.ID.String()),
	)

	return updated, nil
}
