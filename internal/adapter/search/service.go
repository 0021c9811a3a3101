// Package search provides project-scoped page search. Meilisearch is used
// while it is healthy; PostgreSQL ILIKE matching is the fallback.
package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

const snippetRadius = 80

// Hit is one search result.
type Hit struct {
	PageID  string `json:"pageId"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Section string `json:"section"`
	Snippet string `json:"snippet"`
}

type engine interface {
	Healthy() bool
	Search(projectID, text string, limit int) ([]Hit, error)
	IndexPage(doc PageDocument) error
	DeletePage(id string) error
}

type pageSearcher interface {
	Search(ctx context.Context, projectID uuid.UUID, query string, limit int) ([]domain.Page, error)
}

// Service is the facade that tries Meilisearch first and falls back to PostgreSQL.
type Service struct {
	engine   engine
	fallback pageSearcher
	log      *slog.Logger
}

// NewService creates a search service. m may be nil if Meilisearch is not configured.
func NewService(m *Meili, fallback pageSearcher, logger *slog.Logger) *Service {
	var e engine
	if m != nil {
		e = m
	}
	return newService(e, fallback, logger)
}

func newService(e engine, fallback pageSearcher, logger *slog.Logger) *Service {
	return &Service{
		engine:   e,
		fallback: fallback,
		log:      logger.With("service", "search"),
	}
}

// Search returns published pages of the project matching text. Never nil.
func (s *Service) Search(ctx context.Context, projectID uuid.UUID, text string, limit int) ([]Hit, error) {
	if s.engine != nil && s.engine.Healthy() {
		hits, err := s.engine.Search(projectID.String(), text, limit)
		if err == nil {
			return hits, nil
		}
		s.log.WarnContext(ctx, "meilisearch error, falling back to postgres", slog.String("error", err.Error()))
	}

	pages, err := s.fallback.Search(ctx, projectID, text, limit)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(pages))
	for _, p := range pages {
		hits = append(hits, Hit{
			PageID:  p.ID.String(),
			Title:   p.Title,
			Slug:    p.Slug,
			Section: p.Section,
			Snippet: Snippet(p.Content, text),
		})
	}
	return hits, nil
}

// IndexPage pushes the page to the index (fire-and-forget).
func (s *Service) IndexPage(p domain.Page) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	doc := PageDocument{
		ID:        p.ID.String(),
		ProjectID: p.ProjectID.String(),
		Title:     p.Title,
		Slug:      p.Slug,
		Section:   p.Section,
		Content:   p.Content,
		Published: p.IsPublished,
	}
	go func() {
		if err := s.engine.IndexPage(doc); err != nil {
			s.log.Warn("index page", slog.String("page_id", doc.ID), slog.String("error", err.Error()))
		}
	}()
}

// DeletePage removes the page from the index (fire-and-forget).
func (s *Service) DeletePage(id uuid.UUID) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	go func() {
		if err := s.engine.DeletePage(id.String()); err != nil {
			s.log.Warn("delete page from index", slog.String("page_id", id.String()), slog.String("error", err.Error()))
		}
	}()
}

// Snippet returns a short single-line excerpt of content around the first
// case-insensitive match of query, or its beginning when nothing matches.
func Snippet(content, query string) string {
	text := strings.Join(strings.Fields(content), " ")
	if text == "" {
		return ""
	}

	start := 0
	if q := strings.TrimSpace(query); q != "" {
		lower := strings.ToLower(text)
		if i := strings.Index(lower, strings.ToLower(q)); i >= 0 && len(lower) == len(text) {
			start = i - snippetRadius
		}
	}
	if start < 0 {
		start = 0
	}
	end := start + 2*snippetRadius
	if end > len(text) {
		end = len(text)
	}

	// Keep the cut on rune boundaries.
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	out := text[start:end]
	if start > 0 {
		out = "…" + out
	}
	if end < len(text) {
		out += "…"
	}
	return out
}
