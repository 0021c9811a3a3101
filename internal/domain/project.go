package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// IntroductionPageTitle is the title of the page every new project starts with.
const IntroductionPageTitle = "Introduction"

// DefaultAccentColor is the accent color of a new project's theme.
const DefaultAccentColor = "#6366f1"

var accentColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme controls the look of a project's published site.
type Theme struct {
	AccentColor string
	Font        ThemeFont
}

// DefaultTheme returns the theme assigned at project creation.
func DefaultTheme() Theme {
	return Theme{AccentColor: DefaultAccentColor, Font: ThemeFontInter}
}

// IsValidAccentColor reports whether c is a #RRGGBB hex color.
func IsValidAccentColor(c string) bool {
	return accentColorRe.MatchString(c)
}

// Project is a documentation site owned by one user.
type Project struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OwnerEmail   string
	Name         string
	Slug         string
	Description  *string
	IsPublic     bool
	Theme        Theme
	SectionOrder []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnedBy reports whether userID owns the project.
func (p *Project) OwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// ProjectUpdateParams holds the optional fields of a settings update.
// nil means "leave unchanged".
type ProjectUpdateParams struct {
	Name        *string
	Description *string
	IsPublic    *bool
	AccentColor *string
	Font        *ThemeFont
}

// ProjectStats is a per-project page summary for the dashboard.
type ProjectStats struct {
	ProjectID      uuid.UUID
	PageCount      int
	PublishedCount int
	TotalViews     int64
}
