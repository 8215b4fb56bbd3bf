package letter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

const (
	maxContentLen  = 20000
	maxImageURLLen = 2048
	maxPromptLen   = 2000
	maxLanguageLen = 32
)

// SaveInput holds the parameters for saving a generated letter.
type SaveInput struct {
	Content  string
	ImageURL string
	Prompt   string
	Language *string
}

// Validate checks all fields and collects all errors.
// Content, ImageURL, and Prompt are mandatory non-empty fields.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}

	imageURL := strings.TrimSpace(i.ImageURL)
	if imageURL == "" {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "required"})
	}
	if len(imageURL) > maxImageURLLen {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "max 2048 characters"})
	}

	prompt := strings.TrimSpace(i.Prompt)
	if prompt == "" {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "required"})
	}
	if len(prompt) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "prompt", Message: "max 2000 characters"})
	}

	if i.Language != nil && len(strings.TrimSpace(*i.Language)) > maxLanguageLen {
		errs = append(errs, domain.FieldError{Field: "language", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing letters.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput holds the parameters for reading a single letter.
type GetInput struct {
	LetterID uuid.UUID
}

// Validate checks all fields.
func (i GetInput) Validate() error {
	if i.LetterID == uuid.Nil {
		return domain.NewValidationError("letter_id", "required")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
