// Package rewrite implements the reimagine pipeline: it picks an instruction
// template, prepends it to the content and relays the model's streamed text.
package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

// FallbackLevel is used in simple mode when neither the request nor the
// caller's preferences name a level.
const FallbackLevel = domain.SimplificationSimplified

type streamer interface {
	Stream(ctx context.Context, prompt string, onDelta func(string) error) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service relays rewrite requests to the language model.
type Service struct {
	llm   streamer
	users userRepo
	log   *slog.Logger
}

// NewService creates a rewrite service.
func NewService(logger *slog.Logger, llm streamer, users userRepo) *Service {
	return &Service{
		llm:   llm,
		users: users,
		log:   logger.With("service", "rewrite"),
	}
}

// Rewrite validates input and streams the rewritten text to onDelta in
// arrival order. A validation error is returned before the model is called.
// Nothing is retried; an error after the first delta ends the stream.
func (s *Service) Rewrite(ctx context.Context, input Input, onDelta func(string) error) error {
	if err := input.Validate(); err != nil {
		return err
	}

	level := s.resolveLevel(ctx, input)
	prompt := BuildPrompt(input, level)

	started := time.Now()
	if err := s.llm.Stream(ctx, prompt, onDelta); err != nil {
		return fmt.Errorf("rewrite.Rewrite: %w", err)
	}

	s.log.InfoContext(ctx, "content reimagined",
		slog.String("mode", input.Mode.String()),
		slog.String("level", level.String()),
		slog.Int("content_bytes", len(input.Content)),
		slog.Duration("duration", time.Since(started)),
	)

	return nil
}

// resolveLevel returns the requested level, else the caller's default
// level, else FallbackLevel. It only matters in simple mode.
func (s *Service) resolveLevel(ctx context.Context, input Input) domain.SimplificationLevel {
	switch input.Mode {
	case domain.RewriteModeTechnical:
		return domain.SimplificationTechnical
	case domain.RewriteModeCustom:
		return ""
	}

	if input.Level != nil {
		return *input.Level
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok || s.users == nil {
		return FallbackLevel
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "load preferences for rewrite",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return FallbackLevel
	}
	if !user.Preferences.DefaultLevel.IsValid() {
		return FallbackLevel
	}
	return user.Preferences.DefaultLevel
}

// BuildPrompt returns the instruction template for the mode and level
// followed by the content.
func BuildPrompt(input Input, level domain.SimplificationLevel) string {
	var instruction string
	if input.Mode == domain.RewriteModeCustom {
		instruction = fmt.Sprintf(customTemplate, strings.TrimSpace(input.Prompt))
	} else {
		t, ok := levelTemplates[level]
		if !ok {
			t = levelTemplates[FallbackLevel]
		}
		instruction = t
	}

	return instruction + contentSeparator + input.Content
}
