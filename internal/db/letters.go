package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// SaveLetter upserts a cover letter document.
func (db *DB) SaveLetter(ctx context.Context, letter *types.CoverLetter) (uuid.UUID, error) {
	id, err := ensureID(letter.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid letter id: %w", err)
	}
	letter.ID = id.String()

	doc, err := json.Marshal(letter)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal letter: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO cover_letters (id, title, document)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET title = $2, document = $3, updated_at = NOW()`,
		id, letter.Title, doc,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save letter: %w", err)
	}
	return id, nil
}

// GetLetter retrieves a cover letter by ID. Returns (nil, nil) when not found.
func (db *DB) GetLetter(ctx context.Context, id uuid.UUID) (*types.CoverLetter, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT document FROM cover_letters WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get letter: %w", err)
	}

	var letter types.CoverLetter
	if err := json.Unmarshal(doc, &letter); err != nil {
		return nil, fmt.Errorf("failed to unmarshal letter: %w", err)
	}
	letter.ID = id.String()
	return &letter, nil
}

// ListLetters retrieves cover letter summaries, newest first.
func (db *DB) ListLetters(ctx context.Context, limit int) ([]LetterSummary, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(document->'recipient'->>'company', ''), updated_at
		 FROM cover_letters ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}
	defer rows.Close()

	var summaries []LetterSummary
	for rows.Next() {
		var s LetterSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Company, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan letter: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteLetter deletes a cover letter.
func (db *DB) DeleteLetter(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cover_letters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete letter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("letter not found: %s", id)
	}
	return nil
}
