package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// SaveReport stores a compatibility report for a resume.
func (db *DB) SaveReport(ctx context.Context, resumeID uuid.UUID, report *types.Report) error {
	doc, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO reports (resume_id, score, report) VALUES ($1, $2, $3)`,
		resumeID, report.Score, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetLatestReport retrieves the most recent report for a resume.
// Returns (nil, nil) when the resume has never been scored.
func (db *DB) GetLatestReport(ctx context.Context, resumeID uuid.UUID) (*types.Report, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM reports WHERE resume_id = $1 ORDER BY created_at DESC LIMIT 1`,
		resumeID,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal(doc, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}
