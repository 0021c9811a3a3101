package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder who owns projects.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    *string
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preferences holds the reader's simplification profile collected during
// onboarding and editable from settings. Empty answers mean "not answered".
type Preferences struct {
	TechnicalBackground TechnicalBackground
	LearningStyle       LearningStyle
	ReadingFrequency    ReadingFrequency
	ExplanationDepth    ExplanationDepth
	DefaultLevel        SimplificationLevel
	OnboardingComplete  bool
}

// DefaultPreferences returns the preferences of a freshly registered user.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultLevel: SimplificationStandard,
	}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is a server-side login session. The client holds the raw token;
// only its SHA-256 hash is stored.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	UserAgent string
	IP        string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been ended.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
