package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// SaveResume upserts a resume document. A missing ID allocates a new one;
// the returned ID is always set.
func (db *DB) SaveResume(ctx context.Context, resume *types.Resume) (uuid.UUID, error) {
	id, err := ensureID(resume.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid resume id: %w", err)
	}
	resume.ID = id.String()

	doc, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, title, document)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET title = $2, document = $3, updated_at = NOW()`,
		id, resume.Title, doc,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM resumes WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(doc, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	resume.ID = id.String()
	return &resume, nil
}

// ResumeFilters holds optional filters for listing resumes.
type ResumeFilters struct {
	Title string
	Limit int
}

// ListResumes retrieves resume summaries, newest first.
func (db *DB) ListResumes(ctx context.Context, filters ResumeFilters) ([]ResumeSummary, error) {
	query, args := buildResumeListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Name, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func buildResumeListQuery(filters ResumeFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, COALESCE(title, ''), COALESCE(document->'contact'->>'name', ''), updated_at
		FROM resumes WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argNum)
		args = append(args, "%"+filters.Title+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// DeleteResume deletes a resume and its artifacts (via cascade).
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// ensureID parses an existing document ID or allocates a new one.
func ensureID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(id)
}
