package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/user"
)

// multipartOverhead is the slack allowed above the avatar limit for form
// boundaries and headers.
const multipartOverhead = 64 << 10

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	UploadAvatar(ctx context.Context, input user.UploadAvatarInput) (*domain.User, error)
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, input user.UpdatePreferencesInput) (*domain.Preferences, error)
	CompleteOnboarding(ctx context.Context, input user.OnboardingInput) (*domain.Preferences, error)
}

// UserHandler serves the signed in user's profile and preferences.
type UserHandler struct {
	responder
	svc            userService
	maxAvatarBytes int64
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, maxAvatarBytes int64, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		responder:      responder{log: logger.With("handler", "user")},
		svc:            svc,
		maxAvatarBytes: maxAvatarBytes,
	}
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type preferencesRequest struct {
	TechnicalBackground *domain.TechnicalBackground `json:"technicalBackground"`
	LearningStyle       *domain.LearningStyle       `json:"learningStyle"`
	ReadingFrequency    *domain.ReadingFrequency    `json:"readingFrequency"`
	ExplanationDepth    *domain.ExplanationDepth    `json:"explanationDepth"`
	DefaultLevel        *domain.SimplificationLevel `json:"defaultLevel"`
}

type onboardingRequest struct {
	TechnicalBackground domain.TechnicalBackground `json:"technicalBackground"`
	LearningStyle       domain.LearningStyle       `json:"learningStyle"`
	ReadingFrequency    domain.ReadingFrequency    `json:"readingFrequency"`
	ExplanationDepth    domain.ExplanationDepth    `json:"explanationDepth"`
	DefaultLevel        domain.SimplificationLevel `json:"defaultLevel"`
}

// GetProfile handles GET /api/me.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PATCH /api/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{Name: req.Name})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}
	writeData(w, http.StatusOK, toUserResponse(u))
}

// UploadAvatar handles POST /api/me/avatar with a multipart "avatar" file.
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes+multipartOverhead)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Avatar is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "avatar required")
		return
	}
	defer file.Close()

	u, err := h.svc.UploadAvatar(r.Context(), user.UploadAvatarInput{
		File:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}
	writeData(w, http.StatusOK, toUserResponse(u))
}

// GetPreferences handles GET /api/me/preferences.
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toPreferencesResponse(p))
}

// UpdatePreferences handles PATCH /api/me/preferences.
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdatePreferences(r.Context(), user.UpdatePreferencesInput{
		TechnicalBackground: req.TechnicalBackground,
		LearningStyle:       req.LearningStyle,
		ReadingFrequency:    req.ReadingFrequency,
		ExplanationDepth:    req.ExplanationDepth,
		DefaultLevel:        req.DefaultLevel,
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}
	writeData(w, http.StatusOK, toPreferencesResponse(p))
}

// CompleteOnboarding handles POST /api/me/onboarding.
func (h *UserHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CompleteOnboarding(r.Context(), user.OnboardingInput{
		TechnicalBackground: req.TechnicalBackground,
		LearningStyle:       req.LearningStyle,
		ReadingFrequency:    req.ReadingFrequency,
		ExplanationDepth:    req.ExplanationDepth,
		DefaultLevel:        req.DefaultLevel,
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}
	writeData(w, http.StatusOK, toPreferencesResponse(p))
}
