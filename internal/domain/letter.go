package domain

import (
	"time"

	"github.com/google/uuid"
)

// Letter is a generated love letter saved by a user.
// Content, ImageURL, and Prompt are mandatory; Language is optional
// (nil means the client did not report one).
type Letter struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	ImageURL  string
	Prompt    string
	Language  *string
	CreatedAt time.Time
}
