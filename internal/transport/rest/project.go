package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/project"
	"github.com/heartmarshall/mydocs-backend/internal/transport/dataloader"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	ListSections(ctx context.Context, projectID uuid.UUID) ([]domain.Section, error)
	UpdateSectionOrder(ctx context.Context, input project.UpdateSectionOrderInput) (*domain.Project, error)
	MoveSection(ctx context.Context, input project.MoveSectionInput) (*domain.Project, error)
}

// ProjectHandler serves project CRUD and section ordering.
type ProjectHandler struct {
	responder
	svc projectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		responder: responder{log: logger.With("handler", "project")},
		svc:       svc,
	}
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"isPublic"`
}

type updateProjectRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	IsPublic    *bool             `json:"isPublic"`
	AccentColor *string           `json:"accentColor"`
	Font        *domain.ThemeFont `json:"font"`
}

type sectionOrderRequest struct {
	Order []string `json:"order"`
}

type moveSectionRequest struct {
	Section string `json:"section"`
	After   string `json:"after"`
}

// List handles GET /api/projects. Stats of all listed projects are fetched
// in one batch.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		h.failRead(w, r, err, []projectResponse{})
		return
	}

	out := make([]projectResponse, len(projects))
	ids := make([]uuid.UUID, len(projects))
	for i := range projects {
		out[i] = toProjectResponse(&projects[i])
		ids[i] = projects[i].ID
	}

	if loaders := dataloader.FromContext(r.Context()); loaders != nil && len(ids) > 0 {
		stats, err := loaders.LoadProjectStats(r.Context(), ids)
		if err != nil {
			h.fail(w, r, err, "project")
			return
		}
		for i, s := range stats {
			out[i].Stats = &projectStatsResponse{
				PageCount:      s.PageCount,
				PublishedCount: s.PublishedCount,
				TotalViews:     s.TotalViews,
			}
		}
	}

	writeData(w, http.StatusOK, out)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeData(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}

// Update handles PATCH /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		AccentColor: req.AccentColor,
		Font:        req.Font,
	})
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeOK(w)
}

// Sections handles GET /api/projects/{id}/sections.
func (h *ProjectHandler) Sections(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sections, err := h.svc.ListSections(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err, []sectionResponse{})
		return
	}
	writeData(w, http.StatusOK, toSectionResponses(sections))
}

// UpdateSectionOrder handles PUT /api/projects/{id}/sections/order.
func (h *ProjectHandler) UpdateSectionOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req sectionOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateSectionOrder(r.Context(), project.UpdateSectionOrderInput{ProjectID: id, Order: req.Order})
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}

// MoveSection handles POST /api/projects/{id}/sections/move.
func (h *ProjectHandler) MoveSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req moveSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.MoveSection(r.Context(), project.MoveSectionInput{
		ProjectID: id,
		Section:   req.Section,
		After:     req.After,
	})
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}
