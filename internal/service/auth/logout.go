package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/auth"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// Logout ends the caller's current session. Without a session ID in context
// every session of the user is ended.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if sessionID, ok := ctxutil.SessionIDFromCtx(ctx); ok {
		if err := s.sessions.Revoke(ctx, sessionID); err != nil {
			return fmt.Errorf("auth.Logout: %w", err)
		}
	} else if _, err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves the caller from either a JWT access token or a raw
// session token (cookie). Access tokens are only honoured while the session
// they were issued from is still active.
// Returns ErrUnauthorized if the token is invalid, expired or its session ended.
func (s *Service) ValidateToken(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, domain.ErrUnauthorized
	}

	var (
		session *domain.Session
		err     error
	)
	if userID, sessionID, jwtErr := s.jwt.ValidateAccessToken(token); jwtErr == nil {
		session, err = s.sessions.GetByID(ctx, sessionID)
		if err == nil && session.UserID != userID {
			return Identity{}, domain.ErrUnauthorized
		}
	} else {
		session, err = s.sessions.GetByHash(ctx, auth.HashToken(token))
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Identity{}, domain.ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if session.IsRevoked() || session.IsExpired(time.Now()) {
		return Identity{}, domain.ErrUnauthorized
	}

	return Identity{UserID: session.UserID, SessionID: session.ID}, nil
}

// CleanupExpiredSessions removes expired and ended sessions from the database.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", count))
	}

	return count, nil
}

// sessionOwner returns the ID of the user owning the current request.
func sessionOwner(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
