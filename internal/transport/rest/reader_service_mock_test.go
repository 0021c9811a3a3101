package rest

import (
	"context"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"github.com/heartmarshall/mydocs-backend/internal/service/reader"
	"sync"
)

var _ readerService = &readerServiceMock{}

type readerServiceMock struct {
	GetPageFunc func(ctx context.Context, projectSlug string, pageSlug string) (*reader.View, error)
	SearchFunc  func(ctx context.Context, projectSlug string, query string) ([]search.Hit, error)

	calls struct {
		GetPage []struct {
			Ctx         context.Context
			ProjectSlug string
			PageSlug    string
		}
		Search []struct {
			Ctx         context.Context
			ProjectSlug string
			Query       string
		}
	}
	lockGetPage sync.RWMutex
	lockSearch  sync.RWMutex
}

func (mock *readerServiceMock) GetPage(ctx context.Context, projectSlug string, pageSlug string) (*reader.View, error) {
	if mock.GetPageFunc == nil {
		panic("readerServiceMock.GetPageFunc: method is nil but readerService.GetPage was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProjectSlug string
		PageSlug    string
	}{Ctx: ctx, ProjectSlug: projectSlug, PageSlug: pageSlug}
	mock.lockGetPage.Lock()
	mock.calls.GetPage = append(mock.calls.GetPage, callInfo)
	mock.lockGetPage.Unlock()
	return mock.GetPageFunc(ctx, projectSlug, pageSlug)
}

func (mock *readerServiceMock) GetPageCalls() []struct {
	Ctx         context.Context
	ProjectSlug string
	PageSlug    string
} {
	mock.lockGetPage.RLock()
	calls := mock.calls.GetPage
	mock.lockGetPage.RUnlock()
	return calls
}

func (mock *readerServiceMock) Search(ctx context.Context, projectSlug string, query string) ([]search.Hit, error) {
	if mock.SearchFunc == nil {
		panic("readerServiceMock.SearchFunc: method is nil but readerService.Search was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProjectSlug string
		Query       string
	}{Ctx: ctx, ProjectSlug: projectSlug, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, projectSlug, query)
}

func (mock *readerServiceMock) SearchCalls() []struct {
	Ctx         context.Context
	ProjectSlug string
	Query       string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
