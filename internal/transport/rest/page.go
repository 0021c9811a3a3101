package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/page"
)

type pageService interface {
	CreatePage(ctx context.Context, input page.CreatePageInput) (*domain.Page, error)
	GetPage(ctx context.Context, pageID uuid.UUID) (*domain.Page, error)
	ListPages(ctx context.Context, projectID uuid.UUID) ([]domain.Page, error)
	UpdatePageContent(ctx context.Context, input page.UpdateContentInput) (*domain.Page, error)
	UpdatePageSection(ctx context.Context, input page.UpdateSectionInput) (*domain.Page, error)
	SetPagePublished(ctx context.Context, pageID uuid.UUID, published bool) (*domain.Page, error)
	UpdatePageMeta(ctx context.Context, input page.UpdateMetaInput) (*domain.Page, error)
	ReorderPages(ctx context.Context, input page.ReorderInput) error
	DeletePage(ctx context.Context, pageID uuid.UUID) error
}

// PageHandler serves page editing endpoints.
type PageHandler struct {
	responder
	svc pageService
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(svc pageService, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		responder: responder{log: logger.With("handler", "page")},
		svc:       svc,
	}
}

type createPageRequest struct {
	Title   string `json:"title"`
	Section string `json:"section"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type sectionRequest struct {
	Section string `json:"section"`
}

type publishRequest struct {
	Published bool `json:"published"`
}

type metaRequest struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
}

type reorderRequest struct {
	PageIDs []uuid.UUID `json:"pageIds"`
}

// List handles GET /api/projects/{id}/pages.
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	pages, err := h.svc.ListPages(r.Context(), projectID)
	if err != nil {
		h.failRead(w, r, err, []pageResponse{})
		return
	}
	writeData(w, http.StatusOK, toPageResponses(pages))
}

// Create handles POST /api/projects/{id}/pages.
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createPageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePage(r.Context(), page.CreatePageInput{
		ProjectID: projectID,
		Title:     req.Title,
		Section:   req.Section,
	})
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeData(w, http.StatusCreated, toPageResponse(p))
}

// Reorder handles PUT /api/projects/{id}/pages/order.
func (h *PageHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.ReorderPages(r.Context(), page.ReorderInput{ProjectID: projectID, PageIDs: req.PageIDs}); err != nil {
		h.fail(w, r, err, "project")
		return
	}
	writeOK(w)
}

// Get handles GET /api/pages/{id}.
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPage(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toPageResponse(p))
}

// UpdateContent handles PUT /api/pages/{id}/content.
func (h *PageHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(id uuid.UUID) (*domain.Page, error) {
		var req contentRequest
		if !decodeJSON(w, r, &req) {
			return nil, errBodyWritten
		}
		return h.svc.UpdatePageContent(r.Context(), page.UpdateContentInput{PageID: id, Content: req.Content})
	})
}

// UpdateSection handles PUT /api/pages/{id}/section.
func (h *PageHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(id uuid.UUID) (*domain.Page, error) {
		var req sectionRequest
		if !decodeJSON(w, r, &req) {
			return nil, errBodyWritten
		}
		return h.svc.UpdatePageSection(r.Context(), page.UpdateSectionInput{PageID: id, Section: req.Section})
	})
}

// SetPublished handles PUT /api/pages/{id}/publish.
func (h *PageHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(id uuid.UUID) (*domain.Page, error) {
		var req publishRequest
		if !decodeJSON(w, r, &req) {
			return nil, errBodyWritten
		}
		return h.svc.SetPagePublished(r.Context(), id, req.Published)
	})
}

// UpdateMeta handles PUT /api/pages/{id}/meta.
func (h *PageHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, func(id uuid.UUID) (*domain.Page, error) {
		var req metaRequest
		if !decodeJSON(w, r, &req) {
			return nil, errBodyWritten
		}
		return h.svc.UpdatePageMeta(r.Context(), page.UpdateMetaInput{PageID: id, Title: req.Title, Slug: req.Slug})
	})
}

// Delete handles DELETE /api/pages/{id}.
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeletePage(r.Context(), id); err != nil {
		h.fail(w, r, err, "page")
		return
	}
	writeOK(w)
}

// update runs a single-page mutation and writes the updated page.
func (h *PageHandler) update(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*domain.Page, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := fn(id)
	switch {
	case errors.Is(err, errBodyWritten):
		return
	case err != nil:
		h.fail(w, r, err, "page")
		return
	}
	writeData(w, http.StatusOK, toPageResponse(p))
}
