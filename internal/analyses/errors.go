package analyses

import "errors"

// ErrNotFound means no analysis matched the lookup.
var ErrNotFound = errors.New("analysis not found")

// Failure codes recorded on failed analyses.
const (
	ErrorCodeValidation          = "VALIDATION_ERROR"
	ErrorCodeExtraction          = "EXTRACTION_ERROR"
	ErrorCodeOpinionTimeout      = "OPINION_TIMEOUT"
	ErrorCodeOpinionScoreMissing = "OPINION_SCORE_MISSING"
	ErrorCodeStorage             = "STORAGE_ERROR"
	ErrorCodeInternal            = "INTERNAL_ERROR"
)
