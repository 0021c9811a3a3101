package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/rewrite"
)

const msgGenerateFailed = "Failed to generate content"

type rewriteService interface {
	Rewrite(ctx context.Context, input rewrite.Input, onDelta func(string) error) error
}

// ReimagineHandler proxies rewrite requests to the language model and
// streams the generated text back as text/plain.
type ReimagineHandler struct {
	svc rewriteService
	log *slog.Logger
}

// NewReimagineHandler creates a ReimagineHandler. A nil svc answers 503.
func NewReimagineHandler(svc rewriteService, logger *slog.Logger) *ReimagineHandler {
	return &ReimagineHandler{svc: svc, log: logger.With("handler", "reimagine")}
}

type reimagineRequest struct {
	Content string                      `json:"content"`
	Mode    domain.RewriteMode          `json:"mode"`
	Prompt  string                      `json:"prompt"`
	Level   *domain.SimplificationLevel `json:"level"`
}

// plainError is the body of a failed reimagine call. It carries no
// envelope so stream consumers only need to handle {error}.
type plainError struct {
	Error string `json:"error"`
}

// Reimagine handles POST /api/reimagine. Headers are sent with the first
// chunk, so any failure before it still gets a JSON error; a failure after
// it ends the stream early.
func (h *ReimagineHandler) Reimagine(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeJSON(w, http.StatusServiceUnavailable, plainError{Error: "AI rewriting is not configured"})
		return
	}

	var req reimagineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rc := http.NewResponseController(w)
	started := false

	err := h.svc.Rewrite(r.Context(), rewrite.Input{
		Content: req.Content,
		Mode:    req.Mode,
		Prompt:  req.Prompt,
		Level:   req.Level,
	}, func(delta string) error {
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if _, err := w.Write([]byte(delta)); err != nil {
			return err
		}
		// Some writers cannot flush; the text still arrives at the end.
		if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
			return err
		}
		return nil
	})
	if err == nil {
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
		}
		return
	}

	if started {
		h.log.WarnContext(r.Context(), "reimagine stream interrupted", slog.String("error", err.Error()))
		return
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, plainError{Error: valErr.Message()})
		return
	}

	h.log.ErrorContext(r.Context(), "reimagine failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, plainError{Error: msgGenerateFailed})
}
