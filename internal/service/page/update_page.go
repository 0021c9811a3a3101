package page

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// UpdatePageContent replaces the markdown body. Last write wins.
func (s *Service) UpdatePageContent(ctx context.Context, input UpdateContentInput) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, input.PageID, "content updated", func(pg *domain.Page) (*domain.Page, error) {
		return s.pages.UpdateContent(ctx, pg.ID, input.Content)
	})
}

// UpdatePageSection moves a page to another section.
func (s *Service) UpdatePageSection(ctx context.Context, input UpdateSectionInput) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, input.PageID, "section updated", func(pg *domain.Page) (*domain.Page, error) {
		return s.pages.UpdateSection(ctx, pg.ID, normalizeSection(input.Section))
	})
}

// SetPagePublished publishes or unpublishes a page.
func (s *Service) SetPagePublished(ctx context.Context, pageID uuid.UUID, published bool) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	msg := "page unpublished"
	if published {
		msg = "page published"
	}

	return s.mutate(ctx, userID, pageID, msg, func(pg *domain.Page) (*domain.Page, error) {
		return s.pages.SetPublished(ctx, pg.ID, published)
	})
}

// UpdatePageMeta edits the title and/or slug. The slug is normalized; one
// already used by another page of the project returns domain.ErrAlreadyExists.
func (s *Service) UpdatePageMeta(ctx context.Context, input UpdateMetaInput) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, input.PageID, "meta updated", func(pg *domain.Page) (*domain.Page, error) {
		title, slug := pg.Title, pg.Slug
		if input.Title != nil {
			title = strings.TrimSpace(*input.Title)
		}
		if input.Slug != nil {
			slug = domain.Slugify(*input.Slug)
		}

		if slug != pg.Slug {
			exists, err := s.pages.SlugExists(ctx, pg.ProjectID, slug)
			if err != nil {
				return nil, fmt.Errorf("check slug: %w", err)
			}
			if exists {
				return nil, fmt.Errorf("page slug %q: %w", slug, domain.ErrAlreadyExists)
			}
		}

		return s.pages.UpdateMeta(ctx, pg.ID, title, slug)
	})
}

// mutate runs one ownership-checked page update, then refreshes the search
// index and the project's cached renderings.
func (s *Service) mutate(
	ctx context.Context,
	userID, pageID uuid.UUID,
	msg string,
	update func(pg *domain.Page) (*domain.Page, error),
) (*domain.Page, error) {
	pg, project, err := s.ownedPage(ctx, userID, pageID)
	if err != nil {
		return nil, fmt.Errorf("page.Update: %w", err)
	}

	updated, err := update(pg)
	if err != nil {
		return nil, fmt.Errorf("page.Update: %w", err)
	}

	s.index.IndexPage(*updated)
	s.revalidate(ctx, project.Slug)

	s.log.InfoContext(ctx, msg,
		slog.String("user_id", userID.String()),
		slog.String("page_id", pageID.String()),
	)

	return updated, nil
}
