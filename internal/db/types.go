package db

import (
	"time"

	"github.com/google/uuid"
)

// ResumeSummary is a lightweight view of a stored resume for listing.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LetterSummary is a lightweight view of a stored cover letter for listing.
type LetterSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtifactSummary is a lightweight view of a render artifact for listing.
type ArtifactSummary struct {
	ID         uuid.UUID `json:"id"`
	TemplateID string    `json:"template_id"`
	Format     string    `json:"format"`
	SizeBytes  int       `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}
