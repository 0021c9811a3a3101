package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken      string
	SessionToken     string // raw token, NOT hash
	SessionExpiresAt time.Time
	User             *domain.User
}

// Identity is the caller resolved from an access or session token.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}
