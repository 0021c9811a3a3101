package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/config"
	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteExpired(ctx context.Context) (int, error)
}

// projectRepo defines the project operations used by account deletion.
type projectRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Project, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// pageRepo defines the page operations used by account deletion.
type pageRepo interface {
	DeleteByProjectIDs(ctx context.Context, projectIDs []uuid.UUID) (int, error)
}

// revalidator drops cached public renderings of a project.
type revalidator interface {
	RevalidateProject(ctx context.Context, projectSlug string) error
}

// jwtManager defines the token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID, sessionID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, uuid.UUID, error)
	GenerateSessionToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	sessions    sessionRepo
	projects    projectRepo
	pages       pageRepo
	revalidator revalidator
	jwt         jwtManager
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	projects projectRepo,
	pages pageRepo,
	revalidator revalidator,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		sessions:    sessions,
		projects:    projects,
		pages:       pages,
		revalidator: revalidator,
		jwt:         jwt,
		cfg:         cfg,
	}
}

// startSession opens a server-side session for user and issues an access
// token bound to it.
func (s *Service) startSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	raw, hash, err := s.jwt.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	client := ctxutil.ClientFromCtx(ctx)
	now := time.Now()
	session, err := s.sessions.Create(ctx, &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hash,
		UserAgent: domain.CleanUserAgent(client.UserAgent),
		IP:        client.IP,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken:      accessToken,
		SessionToken:     raw,
		SessionExpiresAt: session.ExpiresAt,
		User:             user,
	}, nil
}
