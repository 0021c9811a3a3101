package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"github.com/heartmarshall/mydocs-backend/internal/service/reader"
)

type readerService interface {
	GetPage(ctx context.Context, projectSlug, pageSlug string) (*reader.View, error)
	Search(ctx context.Context, projectSlug, query string) ([]search.Hit, error)
}

// ReaderHandler serves published documentation.
type ReaderHandler struct {
	responder
	svc readerService
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(svc readerService, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{
		responder: responder{log: logger.With("handler", "reader")},
		svc:       svc,
	}
}

type readerProjectResponse struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description *string       `json:"description"`
	Theme       themeResponse `json:"theme"`
}

type readerNavPage struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type readerSection struct {
	Name  string          `json:"name"`
	Pages []readerNavPage `json:"pages"`
}

type readerPageResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Section   string    `json:"section"`
	Content   string    `json:"content"`
	Views     int64     `json:"views"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type readerViewResponse struct {
	Project  readerProjectResponse `json:"project"`
	Page     *readerPageResponse   `json:"page"`
	HTML     string                `json:"html"`
	Sections []readerSection       `json:"sections"`
}

// Page handles GET /docs/{project} and GET /docs/{project}/{page}.
func (h *ReaderHandler) Page(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetPage(r.Context(), r.PathValue("project"), r.PathValue("page"))
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toReaderView(view))
}

// Search handles GET /docs/{project}/search?q=.
func (h *ReaderHandler) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := h.svc.Search(r.Context(), r.PathValue("project"), r.URL.Query().Get("q"))
	if err != nil {
		h.failRead(w, r, err, []search.Hit{})
		return
	}
	writeData(w, http.StatusOK, hits)
}

func toReaderView(v *reader.View) readerViewResponse {
	out := readerViewResponse{
		Project: readerProjectResponse{
			Name:        v.Project.Name,
			Slug:        v.Project.Slug,
			Description: v.Project.Description,
			Theme:       themeResponse{AccentColor: v.Project.Theme.AccentColor, Font: v.Project.Theme.Font.String()},
		},
		HTML:     v.HTML,
		Sections: make([]readerSection, len(v.Sections)),
	}

	for i, s := range v.Sections {
		pages := make([]readerNavPage, len(s.Pages))
		for j, p := range s.Pages {
			pages[j] = readerNavPage{Title: p.Title, Slug: p.Slug}
		}
		out.Sections[i] = readerSection{Name: s.Name, Pages: pages}
	}

	if p := v.Page; p != nil {
		out.Page = &readerPageResponse{
			ID:        p.ID.String(),
			Title:     p.Title,
			Slug:      p.Slug,
			Section:   p.SectionName(),
			Content:   p.Content,
			Views:     p.Views,
			UpdatedAt: p.UpdatedAt,
		}
	}

	return out
}
