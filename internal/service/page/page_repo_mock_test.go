package page

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"sync"
)

var _ pageRepo = &pageRepoMock{}

type pageRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error)
	SlugExistsFunc    func(ctx context.Context, projectID uuid.UUID, slug string) (bool, error)
	MaxSortOrderFunc  func(ctx context.Context, projectID uuid.UUID) (int, error)
	CreateFunc        func(ctx context.Context, p *domain.Page) (*domain.Page, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, content string) (*domain.Page, error)
	UpdateSectionFunc func(ctx context.Context, id uuid.UUID, section string) (*domain.Page, error)
	SetPublishedFunc  func(ctx context.Context, id uuid.UUID, published bool) (*domain.Page, error)
	UpdateMetaFunc    func(ctx context.Context, id uuid.UUID, title string, slug string) (*domain.Page, error)
	ReorderFunc       func(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			F         domain.PageFilter
		}
		SlugExists []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Slug      string
		}
		MaxSortOrder []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Page
		}
		UpdateContent []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Content string
		}
		UpdateSection []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Section string
		}
		SetPublished []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Published bool
		}
		UpdateMeta []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Title string
			Slug  string
		}
		Reorder []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Ids       []uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockListByProject sync.RWMutex
	lockSlugExists    sync.RWMutex
	lockMaxSortOrder  sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdateContent sync.RWMutex
	lockUpdateSection sync.RWMutex
	lockSetPublished  sync.RWMutex
	lockUpdateMeta    sync.RWMutex
	lockReorder       sync.RWMutex
	lockDelete        sync.RWMutex
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

func (mock *pageRepoMock) SlugExists(ctx context.Context, projectID uuid.UUID, slug string) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("pageRepoMock.SlugExistsFunc: method is nil but pageRepo.SlugExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Slug      string
	}{Ctx: ctx, ProjectID: projectID, Slug: slug}
	mock.lockSlugExists.Lock()
	mock.calls.SlugExists = append(mock.calls.SlugExists, callInfo)
	mock.lockSlugExists.Unlock()
	return mock.SlugExistsFunc(ctx, projectID, slug)
}

func (mock *pageRepoMock) SlugExistsCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Slug      string
} {
	mock.lockSlugExists.RLock()
	calls := mock.calls.SlugExists
	mock.lockSlugExists.RUnlock()
	return calls
}

func (mock *pageRepoMock) MaxSortOrder(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.MaxSortOrderFunc == nil {
		panic("pageRepoMock.MaxSortOrderFunc: method is nil but pageRepo.MaxSortOrder was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockMaxSortOrder.Lock()
	mock.calls.MaxSortOrder = append(mock.calls.MaxSortOrder, callInfo)
	mock.lockMaxSortOrder.Unlock()
	return mock.MaxSortOrderFunc(ctx, projectID)
}

func (mock *pageRepoMock) MaxSortOrderCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockMaxSortOrder.RLock()
	calls := mock.calls.MaxSortOrder
	mock.lockMaxSortOrder.RUnlock()
	return calls
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

func (mock *pageRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Page, error) {
	if mock.UpdateContentFunc == nil {
		panic("pageRepoMock.UpdateContentFunc: method is nil but pageRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Content string
	}{Ctx: ctx, ID: id, Content: content}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, content)
}

func (mock *pageRepoMock) UpdateContentCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Content string
} {
	mock.lockUpdateContent.RLock()
	calls := mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}

func (mock *pageRepoMock) UpdateSection(ctx context.Context, id uuid.UUID, section string) (*domain.Page, error) {
	if mock.UpdateSectionFunc == nil {
		panic("pageRepoMock.UpdateSectionFunc: method is nil but pageRepo.UpdateSection was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Section string
	}{Ctx: ctx, ID: id, Section: section}
	mock.lockUpdateSection.Lock()
	mock.calls.UpdateSection = append(mock.calls.UpdateSection, callInfo)
	mock.lockUpdateSection.Unlock()
	return mock.UpdateSectionFunc(ctx, id, section)
}

func (mock *pageRepoMock) UpdateSectionCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Section string
} {
	mock.lockUpdateSection.RLock()
	calls := mock.calls.UpdateSection
	mock.lockUpdateSection.RUnlock()
	return calls
}

func (mock *pageRepoMock) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Page, error) {
	if mock.SetPublishedFunc == nil {
		panic("pageRepoMock.SetPublishedFunc: method is nil but pageRepo.SetPublished was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Published bool
	}{Ctx: ctx, ID: id, Published: published}
	mock.lockSetPublished.Lock()
	mock.calls.SetPublished = append(mock.calls.SetPublished, callInfo)
	mock.lockSetPublished.Unlock()
	return mock.SetPublishedFunc(ctx, id, published)
}

func (mock *pageRepoMock) SetPublishedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Published bool
} {
	mock.lockSetPublished.RLock()
	calls := mock.calls.SetPublished
	mock.lockSetPublished.RUnlock()
	return calls
}

func (mock *pageRepoMock) UpdateMeta(ctx context.Context, id uuid.UUID, title string, slug string) (*domain.Page, error) {
	if mock.UpdateMetaFunc == nil {
		panic("pageRepoMock.UpdateMetaFunc: method is nil but pageRepo.UpdateMeta was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Title string
		Slug  string
	}{Ctx: ctx, ID: id, Title: title, Slug: slug}
	mock.lockUpdateMeta.Lock()
	mock.calls.UpdateMeta = append(mock.calls.UpdateMeta, callInfo)
	mock.lockUpdateMeta.Unlock()
	return mock.UpdateMetaFunc(ctx, id, title, slug)
}

func (mock *pageRepoMock) UpdateMetaCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Title string
	Slug  string
} {
	mock.lockUpdateMeta.RLock()
	calls := mock.calls.UpdateMeta
	mock.lockUpdateMeta.RUnlock()
	return calls
}

func (mock *pageRepoMock) Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error {
	if mock.ReorderFunc == nil {
		panic("pageRepoMock.ReorderFunc: method is nil but pageRepo.Reorder was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Ids       []uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, Ids: ids}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, callInfo)
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, projectID, ids)
}

func (mock *pageRepoMock) ReorderCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Ids       []uuid.UUID
} {
	mock.lockReorder.RLock()
	calls := mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}

func (mock *pageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("pageRepoMock.DeleteFunc: method is nil but pageRepo.Delete was just called")
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

func (mock *pageRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
