package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// GetPreferences returns the authenticated user's simplification preferences.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	user, err := s.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.GetPreferences: %w", err)
	}

	prefs := user.Preferences
	return &prefs, nil
}

// UpdatePreferences applies a partial preferences update.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (*domain.Preferences, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated domain.Preferences

	// Step 3: Read-modify-write in a transaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current preferences: %w", err)
		}

		user, err := s.users.UpdatePreferences(txCtx, userID, applyPreferenceChanges(current.Preferences, input))
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		updated = user.Preferences
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences updated",
		slog.String("user_id", userID.String()))

	return &updated, nil
}

// CompleteOnboarding stores every onboarding answer and marks onboarding done.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) CompleteOnboarding(ctx context.Context, input OnboardingInput) (*domain.Preferences, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Replace all answers
	user, err := s.users.UpdatePreferences(ctx, userID, domain.Preferences{
		TechnicalBackground: input.TechnicalBackground,
		LearningStyle:       input.LearningStyle,
		ReadingFrequency:    input.ReadingFrequency,
		ExplanationDepth:    input.ExplanationDepth,
		DefaultLevel:        input.DefaultLevel,
		OnboardingComplete:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CompleteOnboarding: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("user_id", userID.String()),
		slog.String("default_level", input.DefaultLevel.String()))

	prefs := user.Preferences
	return &prefs, nil
}

// applyPreferenceChanges returns current with every non-nil field of input applied.
func applyPreferenceChanges(current domain.Preferences, input UpdatePreferencesInput) domain.Preferences {
	if input.TechnicalBackground != nil {
		current.TechnicalBackground = *input.TechnicalBackground
	}
	if input.LearningStyle != nil {
		current.LearningStyle = *input.LearningStyle
	}
	if input.ReadingFrequency != nil {
		current.ReadingFrequency = *input.ReadingFrequency
	}
	if input.ExplanationDepth != nil {
		current.ExplanationDepth = *input.ExplanationDepth
	}
	if input.DefaultLevel != nil {
		current.DefaultLevel = *input.DefaultLevel
	}
	return current
}
