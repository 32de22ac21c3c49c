package analyses

import (
	"context"
	"time"

	"ats-backend/internal/analyzer"
)

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	List(ctx context.Context, clientID string, limit, offset int) ([]Analysis, error)
	SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error
	Complete(ctx context.Context, analysisID string, report *analyzer.Report, completedAt time.Time) error
	Fail(ctx context.Context, analysisID, errorCode, detail string, retryable bool, completedAt time.Time) error
}
