package project

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"sync"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetBySlugFunc          func(ctx context.Context, slug string) (*domain.Project, error)
	ListByOwnerFunc        func(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	CreateFunc             func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error)
	UpdateSectionOrderFunc func(ctx context.Context, id uuid.UUID, order []string) (*domain.Project, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Project
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ProjectUpdateParams
		}
		UpdateSectionOrder []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Order []string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID            sync.RWMutex
	lockGetBySlug          sync.RWMutex
	lockListByOwner        sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockUpdateSectionOrder sync.RWMutex
	lockDelete             sync.RWMutex
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
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

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if mock.GetBySlugFunc == nil {
		panic("projectRepoMock.GetBySlugFunc: method is nil but projectRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *projectRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *projectRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error) {
	if mock.ListByOwnerFunc == nil {
		panic("projectRepoMock.ListByOwnerFunc: method is nil but projectRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *projectRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Project
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ProjectUpdateParams) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ProjectUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ProjectUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) UpdateSectionOrder(ctx context.Context, id uuid.UUID, order []string) (*domain.Project, error) {
	if mock.UpdateSectionOrderFunc == nil {
		panic("projectRepoMock.UpdateSectionOrderFunc: method is nil but projectRepo.UpdateSectionOrder was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Order []string
	}{Ctx: ctx, ID: id, Order: order}
	mock.lockUpdateSectionOrder.Lock()
	mock.calls.UpdateSectionOrder = append(mock.calls.UpdateSectionOrder, callInfo)
	mock.lockUpdateSectionOrder.Unlock()
	return mock.UpdateSectionOrderFunc(ctx, id, order)
}

func (mock *projectRepoMock) UpdateSectionOrderCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Order []string
} {
	mock.lockUpdateSectionOrder.RLock()
	calls := mock.calls.UpdateSectionOrder
	mock.lockUpdateSectionOrder.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
