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

// fallbackSlug is used when a title has no slug-able characters.
const fallbackSlug = "page"

// CreatePage adds an empty draft page at the end of the project.
// Colliding slugs get a numeric suffix: intro, intro-2, intro-3, ...
func (s *Service) CreatePage(ctx context.Context, input CreatePageInput) (*domain.Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedProject(ctx, userID, input.ProjectID); err != nil {
		return nil, fmt.Errorf("page.CreatePage: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	base := domain.Slugify(title)
	if base == "" {
		base = fallbackSlug
	}

	var created *domain.Page
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		slug, err := s.uniqueSlug(txCtx, input.ProjectID, base)
		if err != nil {
			return fmt.Errorf("pick slug: %w", err)
		}

		maxOrder, err := s.pages.MaxSortOrder(txCtx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("max sort order: %w", err)
		}

		created, err = s.pages.Create(txCtx, &domain.Page{
			ID:        uuid.New(),
			ProjectID: input.ProjectID,
			Title:     title,
			Slug:      slug,
			Section:   normalizeSection(input.Section),
			SortOrder: maxOrder + 1,
		})
		if err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("page.CreatePage: %w", err)
	}

	s.index.IndexPage(*created)

	s.log.InfoContext(ctx, "page created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.String("page_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}
