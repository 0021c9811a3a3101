// Package llm streams text completions from Anthropic's Messages API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/mydocs-backend/internal/config"
)

// ErrEmptyResponse is returned when the model finished without producing text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Provider sends prompts to Claude and relays the streamed text.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider for the configured model.
func NewProvider(cfg config.AIConfig, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger)
}

// NewProviderWithURL creates a Provider talking to a custom base URL (for testing).
func NewProviderWithURL(cfg config.AIConfig, baseURL string, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger, option.WithBaseURL(baseURL))
}

func newProvider(cfg config.AIConfig, logger *slog.Logger, extra ...option.RequestOption) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	opts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	}, extra...)

	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Stream sends prompt as a single user message and calls onDelta for every
// text fragment in arrival order. It stops at the first error returned by
// onDelta or by the upstream stream. Cancelling ctx aborts the request.
func (p *Provider) Stream(ctx context.Context, prompt string, onDelta func(string) error) error {
	stream := p.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	defer stream.Close()

	started := time.Now()
	wrote := 0
	for stream.Next() {
		event := stream.Current()
		ev, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		delta, ok := ev.Delta.AsAny().(anthropic.TextDelta)
		if !ok || delta.Text == "" {
			continue
		}
		if err := onDelta(delta.Text); err != nil {
			return err
		}
		wrote += len(delta.Text)
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("llm: stream: %w", err)
	}
	if wrote == 0 {
		return ErrEmptyResponse
	}

	p.log.DebugContext(ctx, "llm stream finished",
		slog.String("model", p.model),
		slog.Int("bytes", wrote),
		slog.Duration("duration", time.Since(started)),
	)
	return nil
}
