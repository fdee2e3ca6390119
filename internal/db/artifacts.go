package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveArtifact stores a rendered document for a resume. One artifact is kept
// per (resume, template, format); re-rendering replaces it.
func (db *DB) SaveArtifact(ctx context.Context, resumeID uuid.UUID, templateID, format string, data []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO render_artifacts (resume_id, template_id, format, data)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (resume_id, template_id, format) DO UPDATE SET data = $4, created_at = NOW()`,
		resumeID, templateID, format, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s artifact: %w", format, err)
	}
	return nil
}

// GetArtifact retrieves a rendered document. Returns (nil, nil) when not found.
func (db *DB) GetArtifact(ctx context.Context, resumeID uuid.UUID, templateID, format string) ([]byte, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM render_artifacts
		 WHERE resume_id = $1 AND template_id = $2 AND format = $3`,
		resumeID, templateID, format,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s artifact: %w", format, err)
	}
	return data, nil
}

// ListArtifacts retrieves artifact summaries for a resume, oldest first.
func (db *DB) ListArtifacts(ctx context.Context, resumeID uuid.UUID) ([]ArtifactSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, template_id, format, octet_length(data), created_at
		 FROM render_artifacts WHERE resume_id = $1 ORDER BY created_at ASC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []ArtifactSummary
	for rows.Next() {
		var a ArtifactSummary
		if err := rows.Scan(&a.ID, &a.TemplateID, &a.Format, &a.SizeBytes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
