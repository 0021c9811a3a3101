package rest

import (
	"net/http"

	"github.com/heartmarshall/mydocs-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	User      *UserHandler
	Project   *ProjectHandler
	Page      *PageHandler
	Analytics *AnalyticsHandler
	Reader    *ReaderHandler
	Reimagine *ReimagineHandler
}

// Limits are per-route middlewares applied to abuse-prone endpoints.
type Limits struct {
	Auth      middleware.Middleware
	Reimagine middleware.Middleware
}

// NewRouter registers all routes. static, when non-nil, serves everything
// not matched by an API route (the web UI).
func NewRouter(h Handlers, limits Limits, static http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	authLimit := middleware.Chain(limits.Auth)
	reimagineLimit := middleware.Chain(limits.Reimagine)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/me", h.User.GetProfile)
	mux.HandleFunc("PATCH /api/me", h.User.UpdateProfile)
	mux.HandleFunc("DELETE /api/me", h.Auth.DeleteAccount)
	mux.HandleFunc("POST /api/me/avatar", h.User.UploadAvatar)
	mux.HandleFunc("PUT /api/me/password", h.Auth.ChangePassword)
	mux.HandleFunc("GET /api/me/preferences", h.User.GetPreferences)
	mux.HandleFunc("PATCH /api/me/preferences", h.User.UpdatePreferences)
	mux.HandleFunc("POST /api/me/onboarding", h.User.CompleteOnboarding)

	mux.HandleFunc("GET /api/projects", h.Project.List)
	mux.HandleFunc("POST /api/projects", h.Project.Create)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.Get)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Project.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Project.Delete)
	mux.HandleFunc("GET /api/projects/{id}/sections", h.Project.Sections)
	mux.HandleFunc("PUT /api/projects/{id}/sections/order", h.Project.UpdateSectionOrder)
	mux.HandleFunc("POST /api/projects/{id}/sections/move", h.Project.MoveSection)
	mux.HandleFunc("GET /api/projects/{id}/analytics", h.Analytics.ProjectReport)
	mux.HandleFunc("GET /api/projects/{id}/pages", h.Page.List)
	mux.HandleFunc("POST /api/projects/{id}/pages", h.Page.Create)
	mux.HandleFunc("PUT /api/projects/{id}/pages/order", h.Page.Reorder)

	mux.HandleFunc("GET /api/pages/{id}", h.Page.Get)
	mux.HandleFunc("DELETE /api/pages/{id}", h.Page.Delete)
	mux.HandleFunc("PUT /api/pages/{id}/content", h.Page.UpdateContent)
	mux.HandleFunc("PUT /api/pages/{id}/section", h.Page.UpdateSection)
	mux.HandleFunc("PUT /api/pages/{id}/publish", h.Page.SetPublished)
	mux.HandleFunc("PUT /api/pages/{id}/meta", h.Page.UpdateMeta)
	mux.HandleFunc("POST /api/pages/{id}/views", h.Analytics.TrackView)

	mux.Handle("POST /api/reimagine", reimagineLimit(http.HandlerFunc(h.Reimagine.Reimagine)))

	mux.HandleFunc("GET /docs/{project}", h.Reader.Page)
	mux.HandleFunc("GET /docs/{project}/search", h.Reader.Search)
	mux.HandleFunc("GET /docs/{project}/{page}", h.Reader.Page)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	if static != nil {
		mux.Handle("/", static)
	}

	return mux
}
