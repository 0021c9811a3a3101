package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
	"github.com/heartmarshall/mydocs-backend/internal/service/analytics"
	"github.com/heartmarshall/mydocs-backend/pkg/ctxutil"
)

type analyticsService interface {
	TrackPageView(ctx context.Context, input analytics.TrackPageViewInput) (int64, error)
	GetProjectAnalytics(ctx context.Context, projectID uuid.UUID) (*domain.ProjectAnalytics, error)
}

// AnalyticsHandler serves view tracking and the owner's analytics report.
type AnalyticsHandler struct {
	responder
	svc analyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		responder: responder{log: logger.With("handler", "analytics")},
		svc:       svc,
	}
}

type trackViewResponse struct {
	Views int64 `json:"views"`
}

// TrackView handles POST /api/pages/{id}/views. Anonymous readers are
// allowed. Only published pages are counted: a draft answers 404, so owner
// previews never add views.
func (h *AnalyticsHandler) TrackView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	client := ctxutil.ClientFromCtx(r.Context())
	views, err := h.svc.TrackPageView(r.Context(), analytics.TrackPageViewInput{
		PageID:    id,
		IP:        client.IP,
		UserAgent: client.UserAgent,
	})
	if err != nil {
		h.fail(w, r, err, "page")
		return
	}
	writeData(w, http.StatusOK, trackViewResponse{Views: views})
}

// ProjectReport handles GET /api/projects/{id}/analytics.
func (h *AnalyticsHandler) ProjectReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.svc.GetProjectAnalytics(r.Context(), id)
	if err != nil {
		h.failRead(w, r, err, nil)
		return
	}
	writeData(w, http.StatusOK, toAnalyticsResponse(report))
}
