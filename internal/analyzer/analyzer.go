// Package analyzer implements the resume analysis and scoring engine: it
// takes raw extracted document text plus a job-requirement profile and
// deterministically derives contact fields, section content, skill lists,
// formatting quality, and a composite ATS score with actionable suggestions.
//
// Every operation is a pure function of its inputs and the fixed
// vocabularies; nothing is shared between analyses, so independent analyses
// may run concurrently.
package analyzer

import (
	"context"
	"fmt"
	"math"
	"time"

	"ats-backend/internal/jobroles"
	"ats-backend/internal/opinion"
)

// Fallback blend weights applied when no opinion provider supplies the
// overall score.
const (
	fallbackKeywordWeight = 0.4
	fallbackSectionWeight = 0.3
	fallbackFormatWeight  = 0.3
)

// Engine runs the analysis pipeline. The zero value is usable: with no
// opinion provider the overall score is the deterministic weighted blend of
// the keyword, section, and format scores.
type Engine struct {
	// Opinion supplies the section breakdown and overall score. Optional.
	Opinion opinion.Provider

	// Now is the clock used to resolve open-ended "current" experience
	// ranges. Defaults to time.Now; injected for testability.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Analyze runs the full pipeline on one document. Classification of a
// non-resume document is not an error: it returns a zero-score report naming
// the detected type. Extraction gaps degrade to empty fields. A configured
// opinion provider failing to yield a parsable overall score is an error;
// callers that need resilience can rerun with a nil provider to get the
// deterministic fallback.
func (e *Engine) Analyze(ctx context.Context, text string, profile jobroles.Profile) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	personal := ExtractPersonalInfo(text)

	docType := DetectDocumentType(text)
	if docType != DocumentTypeResume {
		return nonResumeReport(personal, docType), nil
	}

	keyword := MatchKeywords(text, profile.RequiredSkills)
	skills := ExtractSkills(text)
	summary := ExtractSummary(text)
	sections := e.extractSections(ctx, text)
	sectionScore := ScoreSections(text)
	format := AssessFormat(text)

	suggestions := buildSuggestions(suggestionInput{
		personal:     personal,
		summary:      summary,
		skills:       skills,
		keywordScore: keyword.Score,
		sections:     sections,
		format:       format,
		requireGPA:   profile.RequireGPA,
	})

	report := Report{
		PersonalInfo:        personal,
		DocumentType:        docType,
		KeywordMatch:        keyword,
		SectionScore:        sectionScore,
		Format:              format,
		Skills:              skills,
		Summary:             summary,
		Education:           sections.Education,
		Experience:          sections.Experience,
		Projects:            sections.Projects,
		TotalExperience:     sections.TotalExperience.String(),
		CategorySuggestions: suggestions,
		CategoryFeedback:    []opinion.CategoryFeedback{},
	}

	if err := e.scoreOverall(ctx, text, profile, &report); err != nil {
		return Report{}, err
	}

	report.Suggestions = suggestions.All()
	if len(report.Suggestions) == 0 {
		report.Suggestions = []string{wellOptimizedMessage}
	}

	return report, nil
}

// scoreOverall fills ATSScore, ScoreSource, and CategoryFeedback.
func (e *Engine) scoreOverall(ctx context.Context, text string, profile jobroles.Profile, report *Report) error {
	if e.Opinion == nil {
		report.ATSScore = fallbackScore(report.KeywordMatch.Score, report.SectionScore, report.Format.Score)
		report.ScoreSource = ScoreSourceFallback
		return nil
	}

	raw, err := e.Opinion.Evaluate(ctx, text, profile.RequirementText())
	if err != nil {
		return fmt.Errorf("opinion evaluate: %w", err)
	}
	eval, err := opinion.ParseEvaluation(raw)
	if err != nil {
		return fmt.Errorf("opinion evaluate: %w", err)
	}

	report.ATSScore = eval.Score
	report.ScoreSource = ScoreSourceProvider
	report.CategoryFeedback = eval.Categories
	return nil
}

// extractSections asks the opinion provider for the structured breakdown.
// Provider absence or failure is an extraction gap, not an error: the
// sections stay empty and the rest of the analysis proceeds.
func (e *Engine) extractSections(ctx context.Context, text string) Sections {
	empty := Sections{Education: []string{}, Experience: []string{}, Projects: []string{}}
	if e.Opinion == nil {
		return empty
	}
	response, err := e.Opinion.ExtractSections(ctx, text)
	if err != nil {
		return empty
	}
	parsed := ParseSections(response, e.now())
	if parsed.Education == nil {
		parsed.Education = []string{}
	}
	if parsed.Experience == nil {
		parsed.Experience = []string{}
	}
	if parsed.Projects == nil {
		parsed.Projects = []string{}
	}
	return parsed
}

// fallbackScore blends the independently computed scores into an overall
// value when no provider score is available.
func fallbackScore(keywordScore, sectionScore float64, formatScore int) int {
	blended := keywordScore*fallbackKeywordWeight +
		sectionScore*fallbackSectionWeight +
		float64(formatScore)*fallbackFormatWeight
	score := int(math.Round(blended))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// nonResumeReport is the short-circuit result for documents that do not
// classify as resumes.
func nonResumeReport(personal PersonalInfo, docType DocumentType) Report {
	label := string(docType)
	if docType == DocumentTypeUnknown {
		label = "non-resume"
	}
	return Report{
		PersonalInfo: personal,
		DocumentType: docType,
		ATSScore:     0,
		KeywordMatch: KeywordMatch{FoundSkills: []string{}, MissingSkills: []string{}},
		Format:       FormatAssessment{Deductions: []string{}},
		Skills:       []string{},
		Education:    []string{},
		Experience:   []string{},
		Projects:     []string{},
		Suggestions: []string{
			fmt.Sprintf("This appears to be a %s document. Please upload a resume for ATS analysis.", label),
		},
		CategoryFeedback: []opinion.CategoryFeedback{},
		ScoreSource:      ScoreSourceNone,
	}
}
