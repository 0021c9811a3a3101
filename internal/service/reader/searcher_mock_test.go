package reader

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"sync"
)

var _ searcher = &searcherMock{}

type searcherMock struct {
	SearchFunc func(ctx context.Context, projectID uuid.UUID, text string, limit int) ([]search.Hit, error)

	calls struct {
		Search []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Text      string
			Limit     int
		}
	}
	lockSearch sync.RWMutex
}

func (mock *searcherMock) Search(ctx context.Context, projectID uuid.UUID, text string, limit int) ([]search.Hit, error) {
	if mock.SearchFunc == nil {
		panic("searcherMock.SearchFunc: method is nil but searcher.Search was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Text      string
		Limit     int
	}{Ctx: ctx, ProjectID: projectID, Text: text, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, projectID, text, limit)
}

func (mock *searcherMock) SearchCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Text      string
	Limit     int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
