package page

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// GetPage returns a page of one of the caller's projects.
func (s *Service) GetPage(ctx context.Context, pageID uuid.UUID) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	pg, _, err := s.ownedPage(ctx, userID, pageID)
	if err != nil {
		return nil, fmt.Errorf("page.GetPage: %w", err)
	}

	return pg, nil
}

// ListPages returns all pages of the project ordered by sort order, then creation time.
func (s *Service) ListPages(ctx context.Context, projectID uuid.UUID) ([]domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, fmt.Errorf("page.ListPages: %w", err)
	}

	pages, err := s.pages.ListByProject(ctx, projectID, domain.PageFilter{})
	if err != nil {
		return nil, fmt.Errorf("page.ListPages: %w", err)
	}

	return pages, nil
}
