package analyzer

import "ats-backend/internal/opinion"

// Report is the complete result of one resume analysis. It is created once
// per Analyze call and never mutated afterward; callers treat it as
// read-only.
type Report struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	DocumentType DocumentType `json:"documentType"`

	ATSScore     int              `json:"atsScore"`
	KeywordMatch KeywordMatch     `json:"keywordMatch"`
	SectionScore float64          `json:"sectionScore"`
	Format       FormatAssessment `json:"format"`

	Skills          []string `json:"skills"`
	Summary         string   `json:"summary"`
	Education       []string `json:"education"`
	Experience      []string `json:"experience"`
	Projects        []string `json:"projects"`
	TotalExperience string   `json:"totalExperience"`

	Suggestions         []string                   `json:"suggestions"`
	CategorySuggestions Suggestions                `json:"categorySuggestions"`
	CategoryFeedback    []opinion.CategoryFeedback `json:"categoryFeedback"`
	ScoreSource         string                     `json:"scoreSource"`
}

// Score sources recorded on the report.
const (
	ScoreSourceProvider = "provider"
	ScoreSourceFallback = "fallback"
	ScoreSourceNone     = "none"
)
