package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mydocs-backend/internal/auth"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// Refresh exchanges a live session token for a new access token.
// The session itself is kept; only the access token is reissued.
// Returns ErrUnauthorized if the session is unknown, ended or expired, or the user is deleted.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Look the session up by token hash
	session, err := s.sessions.GetByHash(ctx, auth.HashToken(input.SessionToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get session: %w", err)
	}

	// Step 3: Check expiry
	if session.IsRevoked() || session.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Get user
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", session.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 5: Issue access token bound to the same session
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken:      accessToken,
		SessionToken:     input.SessionToken,
		SessionExpiresAt: session.ExpiresAt,
		User:             user,
	}, nil
}
