package analytics

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"sync"
)

var _ pageRepo = &pageRepoMock{}

type pageRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	IncrementViewsFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	TopByViewsFunc     func(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.PageViewCount, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementViews []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		TopByViews []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Limit     int
		}
	}
	lockGetByID        sync.RWMutex
	lockIncrementViews sync.RWMutex
	lockTopByViews     sync.RWMutex
}

func (mock *pageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
	if mock.GetByIDFunc == nil {
		panic("pageRepoMock.GetByIDFunc: method is nil but pageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *pageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *pageRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if mock.IncrementViewsFunc == nil {
		panic("pageRepoMock.IncrementViewsFunc: method is nil but pageRepo.IncrementViews was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementViews.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, callInfo)
	mock.lockIncrementViews.Unlock()
	return mock.IncrementViewsFunc(ctx, id)
}

func (mock *pageRepoMock) IncrementViewsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementViews.RLock()
	calls := mock.calls.IncrementViews
	mock.lockIncrementViews.RUnlock()
	return calls
}

func (mock *pageRepoMock) TopByViews(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.PageViewCount, error) {
	if mock.TopByViewsFunc == nil {
		panic("pageRepoMock.TopByViewsFunc: method is nil but pageRepo.TopByViews was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Limit     int
	}{Ctx: ctx, ProjectID: projectID, Limit: limit}
	mock.lockTopByViews.Lock()
	mock.calls.TopByViews = append(mock.calls.TopByViews, callInfo)
	mock.lockTopByViews.Unlock()
	return mock.TopByViewsFunc(ctx, projectID, limit)
}

func (mock *pageRepoMock) TopByViewsCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Limit     int
} {
	mock.lockTopByViews.RLock()
	calls := mock.calls.TopByViews
	mock.lockTopByViews.RUnlock()
	return calls
}
