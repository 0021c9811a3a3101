package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// ErrWrongPassword is returned when the current password does not match.
var ErrWrongPassword = domain.NewValidationError("current_password", "is incorrect")

// ChangePassword replaces the caller's password after re-verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, err := sessionOwner(ctx)
	if err != nil {
		return err
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Load the stored hash
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	// Step 3: Verify the current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	// Step 4: Store the new hash
	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return nil
}
