package project

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxSections          = 100
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
	IsPublic    bool
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	case domain.Slugify(name) == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "must contain letters or digits"})
	}

	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating project settings.
// Renaming never changes the slug.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	IsPublic    *bool
	AccentColor *string
	Font        *domain.ThemeFont
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsPublic == nil && i.AccentColor == nil && i.Font == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if i.AccentColor != nil && !domain.IsValidAccentColor(*i.AccentColor) {
		errs = append(errs, domain.FieldError{Field: "accent_color", Message: "must be a #RRGGBB color"})
	}
	if i.Font != nil && !i.Font.IsValid() {
		errs = append(errs, domain.FieldError{Field: "font", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSectionOrderInput replaces a project's section order.
type UpdateSectionOrderInput struct {
	ProjectID uuid.UUID
	Order     []string
}

// Validate checks all fields and collects all errors.
func (i UpdateSectionOrderInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.Order) > maxSections {
		errs = append(errs, domain.FieldError{Field: "order", Message: "max 100 sections"})
	}
	for _, name := range i.Order {
		if utf8.RuneCountInString(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "order", Message: "section names max 100 characters"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveSectionInput moves one section right after another. An empty After
// moves the section to the front.
type MoveSectionInput struct {
	ProjectID uuid.UUID
	Section   string
	After     string
}

// Validate checks all fields and collects all errors.
func (i MoveSectionInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	section := strings.TrimSpace(i.Section)
	if section == "" {
		errs = append(errs, domain.FieldError{Field: "section", Message: "required"})
	} else if section == domain.UncategorizedSection {
		errs = append(errs, domain.FieldError{Field: "section", Message: "cannot be moved"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
