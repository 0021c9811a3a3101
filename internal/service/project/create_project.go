package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// CreateProject creates a project for the authenticated user together with
// its Introduction page. A taken slug returns domain.ErrAlreadyExists.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project.CreateProject get owner: %w", err)
	}

	name := strings.TrimSpace(input.Name)
	slug := domain.Slugify(name)

	var created *domain.Project
	var intro *domain.Page
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.projects.Create(txCtx, &domain.Project{
			ID:           uuid.New(),
			OwnerID:      userID,
			OwnerEmail:   owner.Email,
			Name:         name,
			Slug:         slug,
			Description:  trimOrNil(input.Description),
			IsPublic:     input.IsPublic,
			Theme:        domain.DefaultTheme(),
			SectionOrder: []string{},
		})
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		intro, createErr = s.pages.Create(txCtx, &domain.Page{
			ID:        uuid.New(),
			ProjectID: created.ID,
			Title:     domain.IntroductionPageTitle,
			Slug:      domain.Slugify(domain.IntroductionPageTitle),
			SortOrder: 0,
		})
		if createErr != nil {
			return fmt.Errorf("create introduction page: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.CreateProject: %w", err)
	}

	s.index.IndexPage(*intro)

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}
