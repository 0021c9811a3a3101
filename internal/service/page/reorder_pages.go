package page

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// ReorderPages assigns sort orders following input.PageIDs. Every id must
// belong to the project; otherwise nothing changes and domain.ErrNotFound
// is returned.
func (s *Service) ReorderPages(ctx context.Context, input ReorderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	project, err := s.ownedProject(ctx, userID, input.ProjectID)
	if err != nil {
		return fmt.Errorf("page.ReorderPages: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.pages.Reorder(txCtx, input.ProjectID, input.PageIDs)
	})
	if err != nil {
		return fmt.Errorf("page.ReorderPages: %w", err)
	}

	s.revalidate(ctx, project.Slug)

	s.log.InfoContext(ctx, "pages reordered",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.Int("count", len(input.PageIDs)),
	)

	return nil
}
