package analyses

import (
	"time"

	"ats-backend/internal/analyzer"
)

// Analysis lifecycle states.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Analysis is one resume analysis job against a job-role profile.
type Analysis struct {
	ID         string
	DocumentID string
	ClientID   string
	Category   string
	Role       string
	Status     string

	// Report is set once the job completes.
	Report *analyzer.Report

	// ErrorCode and FailureDetail are set when the job fails.
	ErrorCode     string
	FailureDetail string
	Retryable     bool

	AnalysisVersion string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}
