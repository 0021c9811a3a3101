package rest

import (
	"context"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc         func(ctx context.Context) (*domain.User, error)
	UpdateProfileFunc      func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	UploadAvatarFunc       func(ctx context.Context, input user.UploadAvatarInput) (*domain.User, error)
	GetPreferencesFunc     func(ctx context.Context) (*domain.Preferences, error)
	UpdatePreferencesFunc  func(ctx context.Context, input user.UpdatePreferencesInput) (*domain.Preferences, error)
	CompleteOnboardingFunc func(ctx context.Context, input user.OnboardingInput) (*domain.Preferences, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		UploadAvatar []struct {
			Ctx   context.Context
			Input user.UploadAvatarInput
		}
		GetPreferences []struct {
			Ctx context.Context
		}
		UpdatePreferences []struct {
			Ctx   context.Context
			Input user.UpdatePreferencesInput
		}
		CompleteOnboarding []struct {
			Ctx   context.Context
			Input user.OnboardingInput
		}
	}
	lockGetProfile         sync.RWMutex
	lockUpdateProfile      sync.RWMutex
	lockUploadAvatar       sync.RWMutex
	lockGetPreferences     sync.RWMutex
	lockUpdatePreferences  sync.RWMutex
	lockCompleteOnboarding sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct{ Ctx context.Context } {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *userServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UploadAvatar(ctx context.Context, input user.UploadAvatarInput) (*domain.User, error) {
	if mock.UploadAvatarFunc == nil {
		panic("userServiceMock.UploadAvatarFunc: method is nil but userService.UploadAvatar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UploadAvatarInput
	}{Ctx: ctx, Input: input}
	mock.lockUploadAvatar.Lock()
	mock.calls.UploadAvatar = append(mock.calls.UploadAvatar, callInfo)
	mock.lockUploadAvatar.Unlock()
	return mock.UploadAvatarFunc(ctx, input)
}

func (mock *userServiceMock) UploadAvatarCalls() []struct {
	Ctx   context.Context
	Input user.UploadAvatarInput
} {
	mock.lockUploadAvatar.RLock()
	calls := mock.calls.UploadAvatar
	mock.lockUploadAvatar.RUnlock()
	return calls
}

func (mock *userServiceMock) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	if mock.GetPreferencesFunc == nil {
		panic("userServiceMock.GetPreferencesFunc: method is nil but userService.GetPreferences was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetPreferences.Lock()
	mock.calls.GetPreferences = append(mock.calls.GetPreferences, callInfo)
	mock.lockGetPreferences.Unlock()
	return mock.GetPreferencesFunc(ctx)
}

func (mock *userServiceMock) GetPreferencesCalls() []struct{ Ctx context.Context } {
	mock.lockGetPreferences.RLock()
	calls := mock.calls.GetPreferences
	mock.lockGetPreferences.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdatePreferences(ctx context.Context, input user.UpdatePreferencesInput) (*domain.Preferences, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("userServiceMock.UpdatePreferencesFunc: method is nil but userService.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdatePreferencesInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, input)
}

func (mock *userServiceMock) UpdatePreferencesCalls() []struct {
	Ctx   context.Context
	Input user.UpdatePreferencesInput
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}

func (mock *userServiceMock) CompleteOnboarding(ctx context.Context, input user.OnboardingInput) (*domain.Preferences, error) {
	if mock.CompleteOnboardingFunc == nil {
		panic("userServiceMock.CompleteOnboardingFunc: method is nil but userService.CompleteOnboarding was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.OnboardingInput
	}{Ctx: ctx, Input: input}
	mock.lockCompleteOnboarding.Lock()
	mock.calls.CompleteOnboarding = append(mock.calls.CompleteOnboarding, callInfo)
	mock.lockCompleteOnboarding.Unlock()
	return mock.CompleteOnboardingFunc(ctx, input)
}

func (mock *userServiceMock) CompleteOnboardingCalls() []struct {
	Ctx   context.Context
	Input user.OnboardingInput
} {
	mock.lockCompleteOnboarding.RLock()
	calls := mock.calls.CompleteOnboarding
	mock.lockCompleteOnboarding.RUnlock()
	return calls
}
