package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/analytics"
	"sync"
)

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	TrackPageViewFunc       func(ctx context.Context, input analytics.TrackPageViewInput) (int64, error)
	GetProjectAnalyticsFunc func(ctx context.Context, projectID uuid.UUID) (*domain.ProjectAnalytics, error)

	calls struct {
		TrackPageView []struct {
			Ctx   context.Context
			Input analytics.TrackPageViewInput
		}
		GetProjectAnalytics []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockTrackPageView       sync.RWMutex
	lockGetProjectAnalytics sync.RWMutex
}

func (mock *analyticsServiceMock) TrackPageView(ctx context.Context, input analytics.TrackPageViewInput) (int64, error) {
	if mock.TrackPageViewFunc == nil {
		panic("analyticsServiceMock.TrackPageViewFunc: method is nil but analyticsService.TrackPageView was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input analytics.TrackPageViewInput
	}{Ctx: ctx, Input: input}
	mock.lockTrackPageView.Lock()
	mock.calls.TrackPageView = append(mock.calls.TrackPageView, callInfo)
	mock.lockTrackPageView.Unlock()
	return mock.TrackPageViewFunc(ctx, input)
}

func (mock *analyticsServiceMock) TrackPageViewCalls() []struct {
	Ctx   context.Context
	Input analytics.TrackPageViewInput
} {
	mock.lockTrackPageView.RLock()
	calls := mock.calls.TrackPageView
	mock.lockTrackPageView.RUnlock()
	return calls
}

func (mock *analyticsServiceMock) GetProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*domain.ProjectAnalytics, error) {
	if mock.GetProjectAnalyticsFunc == nil {
		panic("analyticsServiceMock.GetProjectAnalyticsFunc: method is nil but analyticsService.GetProjectAnalytics was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockGetProjectAnalytics.Lock()
	mock.calls.GetProjectAnalytics = append(mock.calls.GetProjectAnalytics, callInfo)
	mock.lockGetProjectAnalytics.Unlock()
	return mock.GetProjectAnalyticsFunc(ctx, projectID)
}

func (mock *analyticsServiceMock) GetProjectAnalyticsCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockGetProjectAnalytics.RLock()
	calls := mock.calls.GetProjectAnalytics
	mock.lockGetProjectAnalytics.RUnlock()
	return calls
}
