// Package dataloader provides per-request loaders that batch lookups made
// while rendering lists (for example stats of every project on the
// dashboard) into single SQL calls. Loaders call repositories directly,
// bypassing the service layer, so callers must only pass IDs the caller
// is allowed to see.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type projectStatsRepo interface {
	StatsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ProjectStats, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	ProjectStats projectStatsRepo
}

// Loaders contains the per-request loader instances.
type Loaders struct {
	StatsByProjectID *dataloader.Loader[uuid.UUID, domain.ProjectStats]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		StatsByProjectID: newLoader(newProjectStatsBatchFn(repos.ProjectStats)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// LoadProjectStats resolves stats for every id in one batch. The result is
// aligned with ids.
func (l *Loaders) LoadProjectStats(ctx context.Context, ids []uuid.UUID) ([]domain.ProjectStats, error) {
	stats, errs := l.StatsByProjectID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
