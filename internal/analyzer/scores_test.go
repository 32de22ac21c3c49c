package analyzer

import (
	"strings"
	"testing"
)

func TestScoreSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"single keyword per section", "email education experience skills", 25.0/4 + 5 + 5 + 5},
		{"all contact keywords only", "email phone address linkedin", 25},
		{"mixed coverage", "Email: a@b.com\nEducation at some university\nWork experience\nSkills and tools", 25.0/4 + 10 + 10 + 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSections(tt.text)
			if got != tt.want {
				t.Fatalf("ScoreSections(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAssessFormatCleanResume(t *testing.T) {
	text := "JOHN DOE\njohn@example.com\n\nEXPERIENCE\n" +
		"• Built internal services\n• Led a platform migration\n\n" +
		strings.Repeat("Delivered measurable results across several product teams. ", 6)
	got := AssessFormat(text)
	if got.Score != 100 {
		t.Fatalf("Score = %d (deductions %v), want 100", got.Score, got.Deductions)
	}
	if len(got.Deductions) != 0 {
		t.Fatalf("Deductions = %v, want none", got.Deductions)
	}
}

func TestAssessFormatEveryCheckFails(t *testing.T) {
	// Short, all lowercase, no bullets, no contact info. Blank-line spacing is
	// fine, so that is the only check that passes.
	got := AssessFormat("a plain note with nothing a scanner wants")
	if got.Score != 15 {
		t.Fatalf("Score = %d, want 15", got.Score)
	}
	want := []string{
		"Resume is too short",
		"No clear section headers found",
		"No bullet points found for listing details",
		"Missing or improperly formatted contact information",
	}
	if len(got.Deductions) != len(want) {
		t.Fatalf("Deductions = %v, want %v", got.Deductions, want)
	}
	for i := range want {
		if got.Deductions[i] != want[i] {
			t.Fatalf("Deductions[%d] = %q, want %q", i, got.Deductions[i], want[i])
		}
	}
}

func TestAssessFormatSpacing(t *testing.T) {
	text := "SUMMARY\n\n\n• point\njohn@example.com\n" + strings.Repeat("x", 300)
	got := AssessFormat(text)
	if got.Score != 85 {
		t.Fatalf("Score = %d (deductions %v), want 85", got.Score, got.Deductions)
	}
	if len(got.Deductions) != 1 || got.Deductions[0] != "Inconsistent spacing between sections" {
		t.Fatalf("Deductions = %v, want the spacing deduction only", got.Deductions)
	}
}

func TestAssessFormatScoreFloor(t *testing.T) {
	got := AssessFormat("a\n\n\nb")
	if got.Score != 0 {
		t.Fatalf("Score = %d, want 0", got.Score)
	}
}
