package user

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.Preferences) (*domain.User, error)
}

// avatarStore defines the object storage operations needed for avatars.
type avatarStore interface {
	PutAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error)
	DeleteAvatar(ctx context.Context, avatarURL string) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and preference operations.
type Service struct {
	log            *slog.Logger
	users          userRepo
	avatars        avatarStore
	tx             txManager
	maxAvatarBytes int64
}

// NewService creates a new user service instance. avatars may be nil when
// object storage is not configured; uploads are then rejected.
func NewService(
	logger *slog.Logger,
	users userRepo,
	avatars avatarStore,
	tx txManager,
	maxAvatarBytes int64,
) *Service {
	if maxAvatarBytes <= 0 {
		maxAvatarBytes = DefaultMaxAvatarBytes
	}
	return &Service{
		log:            logger.With("service", "user"),
		users:          users,
		avatars:        avatars,
		tx:             tx,
		maxAvatarBytes: maxAvatarBytes,
	}
}
