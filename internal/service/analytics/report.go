package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// GetProjectAnalytics returns view totals, the most viewed pages and unique
// visitors over the last 24 hours. Only the project owner may read them.
func (s *Service) GetProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*domain.ProjectAnalytics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProjectAnalytics: %w", err)
	}
	if !p.OwnedBy(userID) {
		return nil, fmt.Errorf("analytics.GetProjectAnalytics: project %s: %w", projectID, domain.ErrNotFound)
	}

	stats, err := s.projects.StatsByIDs(ctx, []uuid.UUID{projectID})
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProjectAnalytics stats: %w", err)
	}

	top, err := s.pages.TopByViews(ctx, projectID, TopPagesLimit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProjectAnalytics top pages: %w", err)
	}

	unique, err := s.views.CountUniqueByProject(ctx, projectID, s.now())
	if err != nil {
		return nil, fmt.Errorf("analytics.GetProjectAnalytics unique views: %w", err)
	}

	result := &domain.ProjectAnalytics{
		ProjectID:      projectID,
		UniqueViews24h: unique,
		TopPages:       top,
	}
	if len(stats) > 0 {
		result.TotalViews = stats[0].TotalViews
		result.PageCount = stats[0].PageCount
		result.PublishedCount = stats[0].PublishedCount
	}
	if result.TopPages == nil {
		result.TopPages = []domain.PageViewCount{}
	}

	return result, nil
}

// CleanupExpiredViews purges page views past their 24 hour window.
func (s *Service) CleanupExpiredViews(ctx context.Context) (int, error) {
	n, err := s.views.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("analytics.CleanupExpiredViews: %w", err)
	}

	s.log.InfoContext(ctx, "expired page views deleted", slog.Int("count", n))

	return n, nil
}
