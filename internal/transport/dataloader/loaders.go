package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

func newProjectStatsBatchFn(repo projectStatsRepo) dataloader.BatchFunc[uuid.UUID, domain.ProjectStats] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.ProjectStats] {
		rows, err := repo.StatsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.ProjectStats](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.ProjectStats, len(rows))
		for _, s := range rows {
			byID[s.ProjectID] = s
		}

		results := make([]*dataloader.Result[domain.ProjectStats], len(keys))
		for i, key := range keys {
			s, ok := byID[key]
			if !ok {
				// Projects without pages have no stats row.
				s = domain.ProjectStats{ProjectID: key}
			}
			results[i] = &dataloader.Result[domain.ProjectStats]{Data: s}
		}
		return results
	}
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
