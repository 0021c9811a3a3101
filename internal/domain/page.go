package domain

import (
	"time"

	"github.com/google/uuid"
)

// PageViewTTL is how long an individual PageView record stays visible.
const PageViewTTL = 24 * time.Hour

// Page is one markdown document within a project.
type Page struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Slug        string
	Content     string
	Section     string
	IsPublished bool
	SortOrder   int
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SectionName returns the page's section label, or the default bucket.
func (p *Page) SectionName() string {
	if p.Section == "" {
		return UncategorizedSection
	}
	return p.Section
}

// PageMetaParams holds the optional title/slug edits.
type PageMetaParams struct {
	Title *string
	Slug  *string
}

// PageView is a single recorded visit, kept for PageViewTTL.
type PageView struct {
	ID        uuid.UUID
	PageID    uuid.UUID
	IP        string
	UserAgent string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewPageView builds a PageView for a visit at now.
func NewPageView(pageID uuid.UUID, ip, userAgent string, now time.Time) PageView {
	return PageView{
		ID:        uuid.New(),
		PageID:    pageID,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(PageViewTTL),
	}
}

// PageViewCount pairs a page with its view counter, used for rankings.
type PageViewCount struct {
	PageID uuid.UUID
	Title  string
	Slug   string
	Views  int64
}

// ProjectAnalytics is the owner-facing view summary of a project.
type ProjectAnalytics struct {
	ProjectID      uuid.UUID
	TotalViews     int64
	UniqueViews24h int64
	PageCount      int
	PublishedCount int
	TopPages       []PageViewCount
}
