package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ats-backend/internal/analyzer"
)

// PGRepo implements Repo using Postgres. The report payload is stored as
// JSONB.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, document_id, client_id, category, role, status, report, error_code, failure_detail, retryable, analysis_version, created_at, updated_at, completed_at`

// Create inserts a new analysis row.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (id, document_id, client_id, category, role, status, analysis_version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.DocumentID,
		analysis.ClientID,
		analysis.Category,
		analysis.Role,
		analysis.Status,
		analysis.AnalysisVersion,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by its ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE id = $1`
	return scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
}

// List returns analyses for a caller, newest first.
func (r *PGRepo) List(ctx context.Context, clientID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysisRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

// SetProcessing transitions an analysis to processing.
func (r *PGRepo) SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $2, updated_at = $3
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusProcessing, startedAt)
}

// Complete stores the finished report.
func (r *PGRepo) Complete(ctx context.Context, analysisID string, report *analyzer.Report, completedAt time.Time) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	const query = `
UPDATE analyses
SET status = $2, report = $3, updated_at = $4, completed_at = $4
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusCompleted, payload, completedAt)
}

// Fail records a failure code and detail.
func (r *PGRepo) Fail(ctx context.Context, analysisID, errorCode, detail string, retryable bool, completedAt time.Time) error {
	const query = `
UPDATE analyses
SET status = $2, error_code = $3, failure_detail = $4, retryable = $5, updated_at = $6, completed_at = $6
WHERE id = $1`
	return r.exec(ctx, query, analysisID, StatusFailed, errorCode, detail, retryable, completedAt)
}

func (r *PGRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row *sql.Row) (Analysis, error) {
	analysis, err := scanAnalysisRows(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

func scanAnalysisRows(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var report []byte
	var completedAt sql.NullTime
	err := row.Scan(
		&analysis.ID,
		&analysis.DocumentID,
		&analysis.ClientID,
		&analysis.Category,
		&analysis.Role,
		&analysis.Status,
		&report,
		&analysis.ErrorCode,
		&analysis.FailureDetail,
		&analysis.Retryable,
		&analysis.AnalysisVersion,
		&analysis.CreatedAt,
		&analysis.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if len(report) > 0 {
		var parsed analyzer.Report
		if err := json.Unmarshal(report, &parsed); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal report: %w", err)
		}
		analysis.Report = &parsed
	}
	if completedAt.Valid {
		analysis.CompletedAt = &completedAt.Time
	}
	return analysis, nil
}
