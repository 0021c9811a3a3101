package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

type pageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	TopByViews(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.PageViewCount, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	StatsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ProjectStats, error)
}

type pageViewRepo interface {
	Create(ctx context.Context, v domain.PageView) error
	CountUniqueByProject(ctx context.Context, projectID uuid.UUID, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TopPagesLimit is how many pages GetProjectAnalytics ranks.
const TopPagesLimit = 5

// Service records page views and reports project analytics.
type Service struct {
	pages    pageRepo
	projects projectRepo
	views    pageViewRepo
	tx       txManager
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new Analytics service.
func NewService(
	log *slog.Logger,
	pages pageRepo,
	projects projectRepo,
	views pageViewRepo,
	tx txManager,
) *Service {
	return &Service{
		pages:    pages,
		projects: projects,
		views:    views,
		tx:       tx,
		now:      time.Now,
		log:      log.With("service", "analytics"),
	}
}
