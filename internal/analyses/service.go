package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/documents"
	"ats-backend/internal/extract"
	"ats-backend/internal/jobroles"
	"ats-backend/internal/opinion"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/storage/object"
	"ats-backend/internal/shared/telemetry"
)

// ErrInvalidInput means the start request was malformed.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for analysis jobs.
type Service struct {
	Repo            Repo
	Docs            documents.Repo
	Store           object.ObjectStore
	Engine          *analyzer.Engine
	Roles           jobroles.Catalog
	AnalysisVersion string
}

// Start enqueues a new analysis for a document against a job-role profile
// and kicks off asynchronous completion.
func (s *Service) Start(ctx context.Context, clientID, documentID, category, role string) (Analysis, error) {
	if clientID == "" || documentID == "" {
		return Analysis{}, fmt.Errorf("%w: client and document ids are required", ErrInvalidInput)
	}
	if _, err := s.Roles.Profile(category, role); err != nil {
		return Analysis{}, err
	}
	if _, err := s.Docs.GetByID(ctx, clientID, documentID); err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{
		ID:              uuid.NewString(),
		DocumentID:      documentID,
		ClientID:        clientID,
		Category:        category,
		Role:            role,
		Status:          StatusQueued,
		AnalysisVersion: s.AnalysisVersion,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, fmt.Errorf("record analysis: %w", err)
	}

	go s.completeAsync(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// Get returns an analysis owned by the caller.
func (s *Service) Get(ctx context.Context, clientID, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, fmt.Errorf("%w: analysis id is required", ErrInvalidInput)
	}
	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Analysis{}, err
	}
	if analysis.ClientID != clientID {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// List returns the caller's analyses, newest first.
func (s *Service) List(ctx context.Context, clientID string, limit, offset int) ([]Analysis, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	return s.Repo.List(ctx, clientID, limit, offset)
}

// completeAsync runs the extraction and analysis pipeline for a queued job.
// It never returns an error: every failure path lands in failAnalysis.
func (s *Service) completeAsync(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("panic: %v", r), nil)
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.SetProcessing(ctx, analysisID, startedAt); err != nil {
		s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, "", "", fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}

	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"client_id":         analysis.ClientID,
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	profile, err := s.Roles.Profile(analysis.Category, analysis.Role)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.ClientID, analysis.DocumentID, fmt.Errorf("role lookup: %w", err), &startedAt)
		return
	}

	doc, err := s.Docs.GetByID(ctx, analysis.ClientID, analysis.DocumentID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.ClientID, analysis.DocumentID, fmt.Errorf("document lookup id=%s: %w", analysis.DocumentID, err), &startedAt)
		return
	}

	text, err := extract.Text(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.ClientID, analysis.DocumentID, err, &startedAt)
		return
	}

	report, err := s.Engine.Analyze(ctx, text, profile)
	if err != nil {
		s.failAnalysis(ctx, analysisID, analysis.ClientID, analysis.DocumentID, err, &startedAt)
		return
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.Complete(ctx, analysisID, &report, completedAt); err != nil {
		s.failAnalysis(ctx, analysisID, analysis.ClientID, analysis.DocumentID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}

	metrics.IncAnalysisCompleted()
	if report.ScoreSource == analyzer.ScoreSourceFallback {
		metrics.IncFallbackScore()
	}
	metrics.ObserveAnalysisDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"client_id":         analysis.ClientID,
		"document_id":       analysis.DocumentID,
		"analysis_id":       analysis.ID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
		"ats_score":         report.ATSScore,
		"score_source":      report.ScoreSource,
	})
}

func (s *Service) failAnalysis(ctx context.Context, analysisID, clientID, documentID string, err error, startedAt *time.Time) {
	code, retryable := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.Fail(context.Background(), analysisID, code, msg, retryable, completedAt); updateErr != nil {
		telemetry.Error("analysis.fail_update", map[string]any{
			"analysis_id": analysisID,
			"error":       updateErr.Error(),
			"original":    msg,
		})
	}
	metrics.IncAnalysisFailed()
	if startedAt != nil {
		metrics.ObserveAnalysisDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"client_id":         clientID,
		"document_id":       documentID,
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"retryable":         retryable,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

// classifyFailure maps a pipeline error to a stable code and whether a retry
// could plausibly succeed.
func classifyFailure(err error) (string, bool) {
	if err == nil {
		return ErrorCodeInternal, false
	}
	if errors.Is(err, opinion.ErrScoreNotFound) {
		return ErrorCodeOpinionScoreMissing, false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorCodeOpinionTimeout, true
	}
	if errors.Is(err, extract.ErrUnsupportedType) {
		return ErrorCodeExtraction, false
	}
	if errors.Is(err, jobroles.ErrRoleNotFound) {
		return ErrorCodeValidation, false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "groq request timeout"):
		return ErrorCodeOpinionTimeout, true
	case strings.Contains(msg, "extract text"):
		return ErrorCodeExtraction, false
	case strings.Contains(msg, "opinion"):
		return ErrorCodeOpinionScoreMissing, false
	case strings.Contains(msg, "document"), strings.Contains(msg, "storage"),
		strings.Contains(msg, "analysis result"), strings.Contains(msg, "set processing"):
		return ErrorCodeStorage, true
	default:
		return ErrorCodeInternal, false
	}
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
