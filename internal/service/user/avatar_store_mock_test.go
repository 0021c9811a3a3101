package user

import (
	"context"
	"github.com/google/uuid"
	"io"
	"sync"
)

var _ avatarStore = &avatarStoreMock{}

type avatarStoreMock struct {
	PutAvatarFunc    func(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error)
	DeleteAvatarFunc func(ctx context.Context, avatarURL string) error

	calls struct {
		PutAvatar []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			R           io.Reader
			Size        int64
			ContentType string
		}
		DeleteAvatar []struct {
			Ctx       context.Context
			AvatarURL string
		}
	}
	lockPutAvatar    sync.RWMutex
	lockDeleteAvatar sync.RWMutex
}

func (mock *avatarStoreMock) PutAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error) {
	if mock.PutAvatarFunc == nil {
		panic("avatarStoreMock.PutAvatarFunc: method is nil but avatarStore.PutAvatar was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		R           io.Reader
		Size        int64
		ContentType string
	}{Ctx: ctx, UserID: userID, R: r, Size: size, ContentType: contentType}
	mock.lockPutAvatar.Lock()
	mock.calls.PutAvatar = append(mock.calls.PutAvatar, callInfo)
	mock.lockPutAvatar.Unlock()
	return mock.PutAvatarFunc(ctx, userID, r, size, contentType)
}

func (mock *avatarStoreMock) PutAvatarCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	R           io.Reader
	Size        int64
	ContentType string
} {
	mock.lockPutAvatar.RLock()
	calls := mock.calls.PutAvatar
	mock.lockPutAvatar.RUnlock()
	return calls
}

func (mock *avatarStoreMock) DeleteAvatar(ctx context.Context, avatarURL string) error {
	if mock.DeleteAvatarFunc == nil {
		panic("avatarStoreMock.DeleteAvatarFunc: method is nil but avatarStore.DeleteAvatar was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AvatarURL string
	}{Ctx: ctx, AvatarURL: avatarURL}
	mock.lockDeleteAvatar.Lock()
	mock.calls.DeleteAvatar = append(mock.calls.DeleteAvatar, callInfo)
	mock.lockDeleteAvatar.Unlock()
	return mock.DeleteAvatarFunc(ctx, avatarURL)
}

func (mock *avatarStoreMock) DeleteAvatarCalls() []struct {
	Ctx       context.Context
	AvatarURL string
} {
	mock.lockDeleteAvatar.RLock()
	calls := mock.calls.DeleteAvatar
	mock.lockDeleteAvatar.RUnlock()
	return calls
}
