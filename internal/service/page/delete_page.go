package page

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// DeletePage removes a page of one of the caller's projects.
func (s *Service) DeletePage(ctx context.Context, pageID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	pg, project, err := s.ownedPage(ctx, userID, pageID)
	if err != nil {
		return fmt.Errorf("page.DeletePage: %w", err)
	}

	if err := s.pages.Delete(ctx, pageID); err != nil {
		return fmt.Errorf("page.DeletePage: %w", err)
	}

	s.index.DeletePage(pageID)
	s.revalidate(ctx, project.Slug)

	s.log.InfoContext(ctx, "page deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
		slog.String("page_id", pageID.String()),
		slog.String("slug", pg.Slug),
	)

	return nil
}
