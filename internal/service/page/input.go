package page

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxSectionLength = 100
	maxContentLength = 500_000
	maxReorderPages  = 1000
)

// CreatePageInput holds the parameters for creating a page.
type CreatePageInput struct {
	ProjectID uuid.UUID
	Title     string
	Section   string
}

// Validate checks all fields and collects all errors.
func (i CreatePageInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateSection(i.Section)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContentInput replaces a page's markdown body.
type UpdateContentInput struct {
	PageID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if i.PageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "page_id", Message: "required"})
	}
	if utf8.RuneCountInString(i.Content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 500000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSectionInput moves a page to another section. Empty means Uncategorized.
type UpdateSectionInput struct {
	PageID  uuid.UUID
	Section string
}

// Validate checks all fields and collects all errors.
func (i UpdateSectionInput) Validate() error {
	var errs []domain.FieldError

	if i.PageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "page_id", Message: "required"})
	}
	errs = append(errs, validateSection(i.Section)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMetaInput edits a page's title and/or slug.
type UpdateMetaInput struct {
	PageID uuid.UUID
	Title  *string
	Slug   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMetaInput) Validate() error {
	var errs []domain.FieldError

	if i.PageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "page_id", Message: "required"})
	}
	if i.Title == nil && i.Slug == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Slug != nil {
		switch slug := domain.Slugify(*i.Slug); {
		case slug == "":
			errs = append(errs, domain.FieldError{Field: "slug", Message: "must contain letters or digits"})
		case domain.IsReservedPageSlug(slug):
			errs = append(errs, domain.FieldError{Field: "slug", Message: "is reserved"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput lists a project's pages in their new order.
type ReorderInput struct {
	ProjectID uuid.UUID
	PageIDs   []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.PageIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "page_ids", Message: "required"})
	}
	if len(i.PageIDs) > maxReorderPages {
		errs = append(errs, domain.FieldError{Field: "page_ids", Message: "max 1000 pages"})
	}

	seen := make(map[uuid.UUID]bool, len(i.PageIDs))
	for _, id := range i.PageIDs {
		if seen[id] {
			errs = append(errs, domain.FieldError{Field: "page_ids", Message: "duplicate page id"})
			break
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case utf8.RuneCountInString(title) > maxTitleLength:
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateSection(section string) []domain.FieldError {
	section = strings.TrimSpace(section)
	if utf8.RuneCountInString(section) > maxSectionLength {
		return []domain.FieldError{{Field: "section", Message: "max 100 characters"}}
	}
	return nil
}
