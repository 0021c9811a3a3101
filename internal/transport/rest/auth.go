package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mydocs-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
	DeleteAccount(ctx context.Context) error
}

// SessionCookie configures the cookie carrying the raw session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	responder
	svc    authService
	cookie SessionCookie
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookie SessionCookie, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		responder: responder{log: logger.With("handler", "auth")},
		svc:       svc,
		cookie:    cookie,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	SessionToken string `json:"sessionToken"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"sessionExpiresAt"`
	User        userResponse `json:"user"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}

	h.setSession(w, result)
	writeData(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}

	h.setSession(w, result)
	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh. The session token comes from the
// cookie, or from the body for clients that cannot hold cookies.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var token string
	if c, err := r.Cookie(h.cookie.Name); err == nil {
		token = c.Value
	}
	if token == "" && r.ContentLength != 0 {
		var req refreshRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		token = req.SessionToken
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{SessionToken: token})
	if err != nil {
		h.fail(w, r, err, "session")
		return
	}

	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		h.fail(w, r, err, "session")
		return
	}

	h.clearSession(w)
	writeOK(w)
}

// ChangePassword handles PUT /api/me/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.fail(w, r, err, "user")
		return
	}

	writeOK(w)
}

// DeleteAccount handles DELETE /api/me.
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		h.fail(w, r, err, "user")
		return
	}

	h.clearSession(w)
	writeOK(w)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, result *auth.AuthResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.SessionToken,
		Path:     "/",
		Expires:  result.SessionExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.SessionExpiresAt,
		User:        toUserResponse(result.User),
	}
}
