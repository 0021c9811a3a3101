package page

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"sync"
)

var _ searchIndex = &searchIndexMock{}

type searchIndexMock struct {
	IndexPageFunc  func(p domain.Page)
	DeletePageFunc func(id uuid.UUID)

	calls struct {
		IndexPage []struct {
			P domain.Page
		}
		DeletePage []struct {
			ID uuid.UUID
		}
	}
	lockIndexPage  sync.RWMutex
	lockDeletePage sync.RWMutex
}

func (mock *searchIndexMock) IndexPage(p domain.Page) {
	if mock.IndexPageFunc == nil {
		panic("searchIndexMock.IndexPageFunc: method is nil but searchIndex.IndexPage was just called")
	}
	callInfo := struct{ P domain.Page }{P: p}
	mock.lockIndexPage.Lock()
	mock.calls.IndexPage = append(mock.calls.IndexPage, callInfo)
	mock.lockIndexPage.Unlock()
	mock.IndexPageFunc(p)
}

func (mock *searchIndexMock) IndexPageCalls() []struct{ P domain.Page } {
	mock.lockIndexPage.RLock()
	calls := mock.calls.IndexPage
	mock.lockIndexPage.RUnlock()
	return calls
}

func (mock *searchIndexMock) DeletePage(id uuid.UUID) {
	if mock.DeletePageFunc == nil {
		panic("searchIndexMock.DeletePageFunc: method is nil but searchIndex.DeletePage was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDeletePage.Lock()
	mock.calls.DeletePage = append(mock.calls.DeletePage, callInfo)
	mock.lockDeletePage.Unlock()
	mock.DeletePageFunc(id)
}

func (mock *searchIndexMock) DeletePageCalls() []struct{ ID uuid.UUID } {
	mock.lockDeletePage.RLock()
	calls := mock.calls.DeletePage
	mock.lockDeletePage.RUnlock()
	return calls
}
