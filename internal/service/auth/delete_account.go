package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteAccount removes the caller and everything they own: pages of all
// owned projects, then the projects, then the user, then every session.
// The steps are not wrapped in a transaction; the first failing step stops
// the cascade and its error is returned.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, err := sessionOwner(ctx)
	if err != nil {
		return err
	}

	// Step 1: Collect owned projects
	projects, err := s.projects.ListByOwner(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.DeleteAccount list projects: %w", err)
	}
	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}

	// Step 2: Delete their pages
	pageCount, err := s.pages.DeleteByProjectIDs(ctx, projectIDs)
	if err != nil {
		return fmt.Errorf("auth.DeleteAccount delete pages: %w", err)
	}

	// Step 3: Delete the projects
	if _, err := s.projects.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("auth.DeleteAccount delete projects: %w", err)
	}

	// Step 4: Delete the user
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("auth.DeleteAccount delete user: %w", err)
	}

	// Step 5: End every session
	if _, err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.DeleteAccount revoke sessions: %w", err)
	}

	for _, p := range projects {
		if err := s.revalidator.RevalidateProject(ctx, p.Slug); err != nil {
			s.log.WarnContext(ctx, "revalidate deleted project",
				slog.String("project_slug", p.Slug), slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()),
		slog.Int("projects", len(projects)),
		slog.Int("pages", pageCount))

	return nil
}
