package project

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"sync"
)

var _ pageRepo = &pageRepoMock{}

type pageRepoMock struct {
	CreateFunc        func(ctx context.Context, p *domain.Page) (*domain.Page, error)
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Page
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			F         domain.PageFilter
		}
	}
	lockCreate        sync.RWMutex
	lockListByProject sync.RWMutex
}

func (mock *pageRepoMock) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	if mock.CreateFunc == nil {
		panic("pageRepoMock.CreateFunc: method is nil but pageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Page
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *pageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Page
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *pageRepoMock) ListByProject(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error) {
	if mock.ListByProjectFunc == nil {
		panic("pageRepoMock.ListByProjectFunc: method is nil but pageRepo.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		F         domain.PageFilter
	}{Ctx: ctx, ProjectID: projectID, F: f}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, projectID, f)
}

func (mock *pageRepoMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	F         domain.PageFilter
} {
	mock.lockListByProject.RLock()
	calls := mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}
