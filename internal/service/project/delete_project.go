package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// DeleteProject removes a project. Its pages and page views go with it.
func (s *Service) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	p, err := s.owned(ctx, userID, projectID)
	if err != nil {
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	pages, err := s.pages.ListByProject(ctx, projectID, domain.PageFilter{})
	if err != nil {
		return fmt.Errorf("project.DeleteProject list pages: %w", err)
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("project.DeleteProject: %w", err)
	}

	for _, pg := range pages {
		s.index.DeletePage(pg.ID)
	}
	s.revalidate(ctx, p.Slug)

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", projectID.String()),
		slog.Int("pages", len(pages)),
	)

	return nil
}
