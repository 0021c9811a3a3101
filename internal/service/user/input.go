package user

import (
	"io"
	"unicode/utf8"

	"github.com/heartmarshall/mydocs-backend/internal/domain"
)

// DefaultMaxAvatarBytes is the avatar size limit used when none is configured.
const DefaultMaxAvatarBytes = 2 << 20

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadAvatarInput holds an avatar image to store.
type UploadAvatarInput struct {
	File        io.Reader
	Size        int64
	ContentType string
}

func (i UploadAvatarInput) validate(maxBytes int64) error {
	var errs []domain.FieldError

	switch {
	case i.File == nil || i.Size <= 0:
		errs = append(errs, domain.FieldError{Field: "avatar", Message: "required"})
	case i.Size > maxBytes:
		errs = append(errs, domain.FieldError{Field: "avatar", Message: "must be at most 2 MiB"})
	}

	if !allowedAvatarTypes[i.ContentType] {
		errs = append(errs, domain.FieldError{Field: "avatar", Message: "must be a PNG, JPEG, WebP or GIF image"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePreferencesInput holds parameters for a partial preferences update.
// All fields are optional (nil = don't change).
type UpdatePreferencesInput struct {
	TechnicalBackground *domain.TechnicalBackground
	LearningStyle       *domain.LearningStyle
	ReadingFrequency    *domain.ReadingFrequency
	ExplanationDepth    *domain.ExplanationDepth
	DefaultLevel        *domain.SimplificationLevel
}

// Validate validates the update preferences input.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.TechnicalBackground != nil && !i.TechnicalBackground.IsValid() {
		errs = append(errs, domain.FieldError{Field: "technical_background", Message: "invalid value"})
	}
	if i.LearningStyle != nil && !i.LearningStyle.IsValid() {
		errs = append(errs, domain.FieldError{Field: "learning_style", Message: "invalid value"})
	}
	if i.ReadingFrequency != nil && !i.ReadingFrequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "reading_frequency", Message: "invalid value"})
	}
	if i.ExplanationDepth != nil && !i.ExplanationDepth.IsValid() {
		errs = append(errs, domain.FieldError{Field: "explanation_depth", Message: "invalid value"})
	}
	if i.DefaultLevel != nil && !i.DefaultLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "default_level", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OnboardingInput holds the full set of onboarding answers.
type OnboardingInput struct {
	TechnicalBackground domain.TechnicalBackground
	LearningStyle       domain.LearningStyle
	ReadingFrequency    domain.ReadingFrequency
	ExplanationDepth    domain.ExplanationDepth
	DefaultLevel        domain.SimplificationLevel
}

// Validate validates the onboarding input. Every answer is required.
func (i OnboardingInput) Validate() error {
	var errs []domain.FieldError

	if !i.TechnicalBackground.IsValid() {
		errs = append(errs, answerError("technical_background", string(i.TechnicalBackground)))
	}
	if !i.LearningStyle.IsValid() {
		errs = append(errs, answerError("learning_style", string(i.LearningStyle)))
	}
	if !i.ReadingFrequency.IsValid() {
		errs = append(errs, answerError("reading_frequency", string(i.ReadingFrequency)))
	}
	if !i.ExplanationDepth.IsValid() {
		errs = append(errs, answerError("explanation_depth", string(i.ExplanationDepth)))
	}
	if !i.DefaultLevel.IsValid() {
		errs = append(errs, answerError("default_level", string(i.DefaultLevel)))
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func answerError(field, value string) domain.FieldError {
	if value == "" {
		return domain.FieldError{Field: field, Message: "required"}
	}
	return domain.FieldError{Field: field, Message: "invalid value"}
}
