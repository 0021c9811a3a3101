package rest

import (
	"time"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

type userResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	AvatarURL   *string             `json:"avatarUrl"`
	Preferences preferencesResponse `json:"preferences"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type preferencesResponse struct {
	TechnicalBackground string `json:"technicalBackground"`
	LearningStyle       string `json:"learningStyle"`
	ReadingFrequency    string `json:"readingFrequency"`
	ExplanationDepth    string `json:"explanationDepth"`
	DefaultLevel        string `json:"defaultLevel"`
	OnboardingComplete  bool   `json:"onboardingComplete"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		Preferences: toPreferencesResponse(&u.Preferences),
		CreatedAt:   u.CreatedAt,
	}
}

func toPreferencesResponse(p *domain.Preferences) preferencesResponse {
	return preferencesResponse{
		TechnicalBackground: p.TechnicalBackground.String(),
		LearningStyle:       p.LearningStyle.String(),
		ReadingFrequency:    p.ReadingFrequency.String(),
		ExplanationDepth:    p.ExplanationDepth.String(),
		DefaultLevel:        p.DefaultLevel.String(),
		OnboardingComplete:  p.OnboardingComplete,
	}
}

type themeResponse struct {
	AccentColor string `json:"accentColor"`
	Font        string `json:"font"`
}

type projectResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  *string       `json:"description"`
	OwnerEmail   string        `json:"ownerEmail"`
	IsPublic     bool          `json:"isPublic"`
	Theme        themeResponse `json:"theme"`
	SectionOrder []string      `json:"sectionOrder"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Stats *projectStatsResponse `json:"stats,omitempty"`
}

type projectStatsResponse struct {
	PageCount      int   `json:"pageCount"`
	PublishedCount int   `json:"publishedCount"`
	TotalViews     int64 `json:"totalViews"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	order := p.SectionOrder
	if order == nil {
		order = []string{}
	}
	return projectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		OwnerEmail:   p.OwnerEmail,
		IsPublic:     p.IsPublic,
		Theme:        themeResponse{AccentColor: p.Theme.AccentColor, Font: p.Theme.Font.String()},
		SectionOrder: order,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type pageResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Section     string    `json:"section"`
	IsPublished bool      `json:"isPublished"`
	SortOrder   int       `json:"sortOrder"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPageResponse(p *domain.Page) pageResponse {
	return pageResponse{
		ID:          p.ID.String(),
		ProjectID:   p.ProjectID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Section:     p.SectionName(),
		IsPublished: p.IsPublished,
		SortOrder:   p.SortOrder,
		Views:       p.Views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPageResponses(pages []domain.Page) []pageResponse {
	out := make([]pageResponse, len(pages))
	for i := range pages {
		out[i] = toPageResponse(&pages[i])
	}
	return out
}

type sectionResponse struct {
	Name  string         `json:"name"`
	Pages []pageResponse `json:"pages"`
}

func toSectionResponses(sections []domain.Section) []sectionResponse {
	out := make([]sectionResponse, len(sections))
	for i, s := range sections {
		out[i] = sectionResponse{Name: s.Name, Pages: toPageResponses(s.Pages)}
	}
	return out
}

type pageViewCountResponse struct {
	PageID string `json:"pageId"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Views  int64  `json:"views"`
}

type analyticsResponse struct {
	TotalViews     int64                   `json:"totalViews"`
	UniqueViews24h int64                   `json:"uniqueViews24h"`
	PageCount      int                     `json:"pageCount"`
	PublishedCount int                     `json:"publishedCount"`
	TopPages       []pageViewCountResponse `json:"topPages"`
}

func toAnalyticsResponse(a *domain.ProjectAnalytics) analyticsResponse {
	top := make([]pageViewCountResponse, len(a.TopPages))
	for i, p := range a.TopPages {
		top[i] = pageViewCountResponse{PageID: p.PageID.String(), Title: p.Title, Slug: p.Slug, Views: p.Views}
	}
	return analyticsResponse{
		TotalViews:     a.TotalViews,
		UniqueViews24h: a.UniqueViews24h,
		PageCount:      a.PageCount,
		PublishedCount: a.PublishedCount,
		TopPages:       top,
	}
}
