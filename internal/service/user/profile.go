package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile renames the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Update profile
	user, err := s.users.UpdateName(ctx, userID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

// UploadAvatar stores a new avatar image and points the profile at it.
// The previous avatar object is removed on a best-effort basis.
func (s *Service) UploadAvatar(ctx context.Context, input UploadAvatarInput) (*domain.User, error) {
	// Step 1: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.avatars == nil {
		return nil, domain.NewValidationError("avatar", "uploads are disabled")
	}

	// Step 2: Validate input
	if err := input.validate(s.maxAvatarBytes); err != nil {
		return nil, err
	}

	// Step 3: Load current profile for the old avatar URL
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UploadAvatar get user: %w", err)
	}

	// Step 4: Upload and point the profile at the new object
	url, err := s.avatars.PutAvatar(ctx, userID, input.File, input.Size, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("user.UploadAvatar put: %w", err)
	}

	user, err := s.users.UpdateAvatar(ctx, userID, &url)
	if err != nil {
		return nil, fmt.Errorf("user.UploadAvatar update: %w", err)
	}

	if current.AvatarURL != nil {
		if err := s.avatars.DeleteAvatar(ctx, *current.AvatarURL); err != nil {
			s.log.WarnContext(ctx, "delete previous avatar",
				slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "avatar uploaded",
		slog.String("user_id", userID.String()),
		slog.Int64("size", input.Size))

	return user, nil
}
