package analyzer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ats-backend/internal/jobroles"
	"ats-backend/internal/opinion"
)

const sampleResumeText = `JOHN DOE
john@example.com
555-123-4567
linkedin.com/in/johndoe

SUMMARY
Backend engineer focused on reliable billing systems and developer tooling.

EXPERIENCE
• Developed billing APIs at Acme from 2021 to 2023

EDUCATION
Bachelor of Science in Computer Science, 2020

SKILLS
Python, SQL, Docker`

const sampleEvaluationResponse = `Overall ATS Score: 78/100

1. Keyword Match
- Score: 8/10
- Strength: Good coverage of required skills
- Weakness: Missing cloud platform keywords
`

type stubProvider struct {
	sections     string
	sectionsErr  error
	evaluation   string
	evaluateErr  error
	evaluateText string
}

func (s *stubProvider) ExtractSections(_ context.Context, _ string) (string, error) {
	return s.sections, s.sectionsErr
}

func (s *stubProvider) Evaluate(_ context.Context, _ string, requirements string) (string, error) {
	s.evaluateText = requirements
	return s.evaluation, s.evaluateErr
}

func sampleProfile() jobroles.Profile {
	return jobroles.Profile{
		Description:    "Builds server-side systems",
		RequiredSkills: []string{"Python", "Java"},
	}
}

func TestAnalyzeFallbackScore(t *testing.T) {
	engine := &Engine{Now: fixedNow}
	report, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.DocumentType != DocumentTypeResume {
		t.Fatalf("DocumentType = %q, want resume", report.DocumentType)
	}
	if report.ScoreSource != ScoreSourceFallback {
		t.Fatalf("ScoreSource = %q, want %q", report.ScoreSource, ScoreSourceFallback)
	}
	want := fallbackScore(report.KeywordMatch.Score, report.SectionScore, report.Format.Score)
	if report.ATSScore != want {
		t.Fatalf("ATSScore = %d, want blended %d", report.ATSScore, want)
	}
	if report.KeywordMatch.Score != 50.0 {
		t.Fatalf("keyword score = %v, want 50.0", report.KeywordMatch.Score)
	}
	if len(report.KeywordMatch.MissingSkills) != 1 || report.KeywordMatch.MissingSkills[0] != "Java" {
		t.Fatalf("MissingSkills = %v, want [Java]", report.KeywordMatch.MissingSkills)
	}
	if report.PersonalInfo.Email != "john@example.com" {
		t.Fatalf("Email = %q", report.PersonalInfo.Email)
	}
	if len(report.Suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
}

func TestAnalyzeWithProvider(t *testing.T) {
	provider := &stubProvider{
		sections:   sampleProviderResponse,
		evaluation: sampleEvaluationResponse,
	}
	engine := &Engine{Opinion: provider, Now: fixedNow}

	report, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.ATSScore != 78 {
		t.Fatalf("ATSScore = %d, want 78", report.ATSScore)
	}
	if report.ScoreSource != ScoreSourceProvider {
		t.Fatalf("ScoreSource = %q, want %q", report.ScoreSource, ScoreSourceProvider)
	}
	if len(report.CategoryFeedback) != 1 || report.CategoryFeedback[0].Strength != "Good coverage of required skills" {
		t.Fatalf("CategoryFeedback = %+v", report.CategoryFeedback)
	}
	if report.TotalExperience != "3 years and 3 months" {
		t.Fatalf("TotalExperience = %q", report.TotalExperience)
	}
	if provider.evaluateText == "" {
		t.Fatal("provider never received the job requirements")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	engine := &Engine{
		Opinion: &stubProvider{sections: sampleProviderResponse, evaluation: sampleEvaluationResponse},
		Now:     fixedNow,
	}

	first, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeNonResumeShortCircuits(t *testing.T) {
	text := `Statement of Marks
Semester 1 examination result
CGPA 8.2 SGPA 8.4 percentage 82 grade A marks obtained`

	engine := &Engine{Now: fixedNow}
	report, err := engine.Analyze(context.Background(), text, sampleProfile())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.DocumentType != DocumentTypeMarksheet {
		t.Fatalf("DocumentType = %q, want marksheet", report.DocumentType)
	}
	if report.ATSScore != 0 || report.ScoreSource != ScoreSourceNone {
		t.Fatalf("score = %d source = %q, want zero score with no source", report.ATSScore, report.ScoreSource)
	}
	want := "This appears to be a marksheet document. Please upload a resume for ATS analysis."
	if len(report.Suggestions) != 1 || report.Suggestions[0] != want {
		t.Fatalf("Suggestions = %v, want [%q]", report.Suggestions, want)
	}
}

func TestAnalyzeProviderEvaluateFailure(t *testing.T) {
	cause := errors.New("upstream unavailable")
	engine := &Engine{
		Opinion: &stubProvider{sections: sampleProviderResponse, evaluateErr: cause},
		Now:     fixedNow,
	}

	_, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
}

func TestAnalyzeProviderUnparsableScore(t *testing.T) {
	engine := &Engine{
		Opinion: &stubProvider{sections: sampleProviderResponse, evaluation: "no score in here"},
		Now:     fixedNow,
	}

	_, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if !errors.Is(err, opinion.ErrScoreNotFound) {
		t.Fatalf("err = %v, want ErrScoreNotFound", err)
	}
}

func TestAnalyzeSectionExtractionFailureDegrades(t *testing.T) {
	engine := &Engine{
		Opinion: &stubProvider{sectionsErr: errors.New("timeout"), evaluation: sampleEvaluationResponse},
		Now:     fixedNow,
	}

	report, err := engine.Analyze(context.Background(), sampleResumeText, sampleProfile())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(report.Education) != 0 || len(report.Experience) != 0 || len(report.Projects) != 0 {
		t.Fatalf("sections should be empty, got %+v", report)
	}
	if report.TotalExperience != "0 years and 0 months" {
		t.Fatalf("TotalExperience = %q", report.TotalExperience)
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &Engine{Now: fixedNow}
	if _, err := engine.Analyze(ctx, sampleResumeText, sampleProfile()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
