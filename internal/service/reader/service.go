// Package reader serves published documentation: project navigation,
// rendered pages and in-project search.
package reader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/adapter/search"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// SearchLimit caps the number of search hits returned.
const SearchLimit = 20

const maxQueryLength = 200

type projectRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
}

type pageRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID, f domain.PageFilter) ([]domain.Page, error)
}

type renderCache interface {
	Get(ctx context.Context, projectSlug, key string) ([]byte, bool, error)
	Set(ctx context.Context, projectSlug, key string, value []byte) error
}

type searcher interface {
	Search(ctx context.Context, projectID uuid.UUID, text string, limit int) ([]search.Hit, error)
}

// View is what a reader sees for one page of a project. Page is nil when
// the project has nothing to show yet.
type View struct {
	Project  *domain.Project
	Page     *domain.Page
	HTML     string
	Sections []domain.Section
}

// Service renders published pages for readers.
type Service struct {
	projects projectRepo
	pages    pageRepo
	cache    renderCache
	search   searcher
	log      *slog.Logger
}

// NewService creates a reader service.
func NewService(
	logger *slog.Logger,
	projects projectRepo,
	pages pageRepo,
	cache renderCache,
	search searcher,
) *Service {
	return &Service{
		projects: projects,
		pages:    pages,
		cache:    cache,
		search:   search,
		log:      logger.With("service", "reader"),
	}
}

// GetPage returns the project navigation and the rendered page. An empty
// pageSlug selects the first page in reading order. Private projects and
// drafts are visible to the owner only; everyone else gets domain.ErrNotFound.
func (s *Service) GetPage(ctx context.Context, projectSlug, pageSlug string) (*View, error) {
	project, owner, err := s.visibleProject(ctx, projectSlug)
	if err != nil {
		return nil, fmt.Errorf("reader.GetPage: %w", err)
	}

	pages, err := s.pages.ListByProject(ctx, project.ID, domain.PageFilter{PublishedOnly: !owner})
	if err != nil {
		return nil, fmt.Errorf("reader.GetPage: %w", err)
	}

	sections := domain.GroupPagesBySection(pages, project.SectionOrder)
	view := &View{Project: project, Sections: sections}

	page := findPage(sections, pageSlug)
	if page == nil {
		if pageSlug != "" {
			return nil, fmt.Errorf("reader.GetPage: page %s/%s: %w", projectSlug, pageSlug, domain.ErrNotFound)
		}
		return view, nil
	}

	html, err := s.render(ctx, project.Slug, page)
	if err != nil {
		return nil, fmt.Errorf("reader.GetPage: %w", err)
	}

	view.Page = page
	view.HTML = html
	return view, nil
}

// Search finds published pages of a visible project. A blank query returns
// no hits.
func (s *Service) Search(ctx context.Context, projectSlug, query string) ([]search.Hit, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) > maxQueryLength {
		return nil, domain.NewValidationError("q", "max 200 characters")
	}

	project, _, err := s.visibleProject(ctx, projectSlug)
	if err != nil {
		return nil, fmt.Errorf("reader.Search: %w", err)
	}

	if query == "" {
		return []search.Hit{}, nil
	}

	hits, err := s.search.Search(ctx, project.ID, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("reader.Search: %w", err)
	}

	return hits, nil
}

// visibleProject loads a project and reports whether the caller owns it.
func (s *Service) visibleProject(ctx context.Context, slug string) (*domain.Project, bool, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, false, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	owner := ok && project.OwnedBy(userID)
	if !project.IsPublic && !owner {
		return nil, false, fmt.Errorf("project %s: %w", slug, domain.ErrNotFound)
	}

	return project, owner, nil
}

// render returns the page HTML, from the cache when possible. Cache
// failures are logged and fall through to rendering.
func (s *Service) render(ctx context.Context, projectSlug string, page *domain.Page) (string, error) {
	key := cacheKey(page)

	cached, ok, err := s.cache.Get(ctx, projectSlug, key)
	if err != nil {
		s.log.WarnContext(ctx, "render cache get", slog.String("error", err.Error()))
	}
	if ok {
		return string(cached), nil
	}

	html, err := RenderMarkdown(page.Content)
	if err != nil {
		return "", fmt.Errorf("render page %s: %w", page.ID, err)
	}

	if err := s.cache.Set(ctx, projectSlug, key, []byte(html)); err != nil {
		s.log.WarnContext(ctx, "render cache set", slog.String("error", err.Error()))
	}

	return html, nil
}

// cacheKey identifies one rendering of a page. The update time guards
// against serving a rendering older than the content.
func cacheKey(page *domain.Page) string {
	return fmt.Sprintf("page:%s:%d", page.ID, page.UpdatedAt.UnixNano())
}

// findPage returns the page with slug, or the first page in reading order
// when slug is empty.
func findPage(sections []domain.Section, slug string) *domain.Page {
	for _, sec := range sections {
		for i := range sec.Pages {
			if slug == "" || sec.Pages[i].Slug == slug {
				p := sec.Pages[i]
				return &p
			}
		}
	}
	return nil
}
