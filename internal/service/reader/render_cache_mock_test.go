package reader

import (
	"context"
	"sync"
)

var _ renderCache = &renderCacheMock{}

type renderCacheMock struct {
	GetFunc func(ctx context.Context, projectSlug string, key string) ([]byte, bool, error)
	SetFunc func(ctx context.Context, projectSlug string, key string, value []byte) error

	calls struct {
		Get []struct {
			Ctx         context.Context
			ProjectSlug string
			Key         string
		}
		Set []struct {
			Ctx         context.Context
			ProjectSlug string
			Key         string
			Value       []byte
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *renderCacheMock) Get(ctx context.Context, projectSlug string, key string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("renderCacheMock.GetFunc: method is nil but renderCache.Get was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProjectSlug string
		Key         string
	}{Ctx: ctx, ProjectSlug: projectSlug, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, projectSlug, key)
}

func (mock *renderCacheMock) GetCalls() []struct {
	Ctx         context.Context
	ProjectSlug string
	Key         string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *renderCacheMock) Set(ctx context.Context, projectSlug string, key string, value []byte) error {
	if mock.SetFunc == nil {
		panic("renderCacheMock.SetFunc: method is nil but renderCache.Set was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProjectSlug string
		Key         string
		Value       []byte
	}{Ctx: ctx, ProjectSlug: projectSlug, Key: key, Value: value}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, projectSlug, key, value)
}

func (mock *renderCacheMock) SetCalls() []struct {
	Ctx         context.Context
	ProjectSlug string
	Key         string
	Value       []byte
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
