package auth

import (
	"context"
	"sync"
)

var _ revalidator = &revalidatorMock{}

type revalidatorMock struct {
	RevalidateProjectFunc func(ctx context.Context, projectSlug string) error

	calls struct {
		RevalidateProject []struct {
			Ctx         context.Context
			ProjectSlug string
		}
	}
	lockRevalidateProject sync.RWMutex
}

func (mock *revalidatorMock) RevalidateProject(ctx context.Context, projectSlug string) error {
	if mock.RevalidateProjectFunc == nil {
		panic("revalidatorMock.RevalidateProjectFunc: method is nil but revalidator.RevalidateProject was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProjectSlug string
	}{Ctx: ctx, ProjectSlug: projectSlug}
	mock.lockRevalidateProject.Lock()
	mock.calls.RevalidateProject = append(mock.calls.RevalidateProject, callInfo)
	mock.lockRevalidateProject.Unlock()
	return mock.RevalidateProjectFunc(ctx, projectSlug)
}

func (mock *revalidatorMock) RevalidateProjectCalls() []struct {
	Ctx         context.Context
	ProjectSlug string
} {
	mock.lockRevalidateProject.RLock()
	calls := mock.calls.RevalidateProject
	mock.lockRevalidateProject.RUnlock()
	return calls
}
