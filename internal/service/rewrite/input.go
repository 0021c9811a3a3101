package rewrite

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

const (
	// MaxContentLength caps the text sent for rewriting.
	MaxContentLength = 50_000
	// MaxPromptLength caps a custom instruction.
	MaxPromptLength = 2_000
)

// Input is one reimagine request.
type Input struct {
	Content string
	Mode    domain.RewriteMode
	Prompt  string
	Level   *domain.SimplificationLevel
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(i.Content) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 50000 characters"})
	}

	switch {
	case i.Mode == "":
		errs = append(errs, domain.FieldError{Field: "mode", Message: "required"})
	case !i.Mode.IsValid():
		errs = append(errs, domain.FieldError{Field: "mode", Message: "invalid value"})
	case i.Mode == domain.RewriteModeCustom:
		prompt := strings.TrimSpace(i.Prompt)
		if prompt == "" {
			errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
		} else if utf8.RuneCountInString(prompt) > MaxPromptLength {
			errs = append(errs, domain.FieldError{Field: "prompt", Message: "max 2000 characters"})
		}
	}

	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
