package rewrite

import (
	"context"
	"sync"
)

var _ streamer = &streamerMock{}

type streamerMock struct {
	StreamFunc func(ctx context.Context, prompt string, onDelta func(string) error) error

	calls struct {
		Stream []struct {
			Ctx     context.Context
			Prompt  string
			OnDelta func(string) error
		}
	}
	lockStream sync.RWMutex
}

func (mock *streamerMock) Stream(ctx context.Context, prompt string, onDelta func(string) error) error {
	if mock.StreamFunc == nil {
		panic("streamerMock.StreamFunc: method is nil but streamer.Stream was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Prompt  string
		OnDelta func(string) error
	}{Ctx: ctx, Prompt: prompt, OnDelta: onDelta}
	mock.lockStream.Lock()
	mock.calls.Stream = append(mock.calls.Stream, callInfo)
	mock.lockStream.Unlock()
	return mock.StreamFunc(ctx, prompt, onDelta)
}

func (mock *streamerMock) StreamCalls() []struct {
	Ctx     context.Context
	Prompt  string
	OnDelta func(string) error
} {
	mock.lockStream.RLock()
	calls := mock.calls.Stream
	mock.lockStream.RUnlock()
	return calls
}
