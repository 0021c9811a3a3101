package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// TrackPageViewInput identifies a visit.
type TrackPageViewInput struct {
	PageID    uuid.UUID
	IP        string
	UserAgent string
}

// Validate checks all fields and collects all errors.
func (i TrackPageViewInput) Validate() error {
	if i.PageID == uuid.Nil {
		return domain.NewValidationError("page_id", "required")
	}
	return nil
}

// TrackPageView counts a visit to a published page and records it for the
// unique-visitor window. Every call counts; repeat visits are not filtered.
// Callers may be anonymous. Drafts are reported as domain.ErrNotFound.
func (s *Service) TrackPageView(ctx context.Context, input TrackPageViewInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	pg, err := s.pages.GetByID(ctx, input.PageID)
	if err != nil {
		return 0, fmt.Errorf("analytics.TrackPageView: %w", err)
	}
	if !pg.IsPublished {
		return 0, fmt.Errorf("analytics.TrackPageView: page %s: %w", input.PageID, domain.ErrNotFound)
	}

	ua := domain.CleanUserAgent(input.UserAgent)

	var views int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var incErr error
		views, incErr = s.pages.IncrementViews(txCtx, input.PageID)
		if incErr != nil {
			return fmt.Errorf("increment views: %w", incErr)
		}

		if err := s.views.Create(txCtx, domain.NewPageView(input.PageID, input.IP, ua, s.now())); err != nil {
			return fmt.Errorf("record view: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("analytics.TrackPageView: %w", err)
	}

	return views, nil
}
