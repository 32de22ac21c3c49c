package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/jobroles"
)

const batchResumeText = `JANE ROE
jane@example.com
555-987-6543

SUMMARY
Software engineer working on data pipelines.

EXPERIENCE
• Built ingestion services at Initech from 2020 to 2022

EDUCATION
Bachelor of Engineering

SKILLS
Python, SQL`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testProfile() jobroles.Profile {
	return jobroles.Profile{
		Description:    "Builds backend services.",
		RequiredSkills: []string{"Python", "Java"},
	}
}

func TestRunAnalyzesSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jane.txt", batchResumeText)
	writeFile(t, dir, "notes.md", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	runner := &Runner{Engine: &analyzer.Engine{}, Profile: testProfile()}
	rows, err := runner.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.Err != "" {
		t.Fatalf("Err = %q", row.Err)
	}
	if row.FileName != "jane.txt" {
		t.Fatalf("FileName = %q", row.FileName)
	}
	if row.Name != "JANE ROE" {
		t.Fatalf("Name = %q", row.Name)
	}
	if row.Email != "jane@example.com" {
		t.Fatalf("Email = %q", row.Email)
	}
	if !strings.Contains(row.Skills, "Python") {
		t.Fatalf("Skills = %q", row.Skills)
	}
	if row.ATSScore <= 0 {
		t.Fatalf("ATSScore = %d", row.ATSScore)
	}
}

func TestRunContinuesPastBadFile(t *testing.T) {
	dir := t.TempDir()
	// Not a real PDF, so extraction fails for this row.
	writeFile(t, dir, "broken.pdf", "not a pdf at all")
	writeFile(t, dir, "jane.txt", batchResumeText)

	runner := &Runner{Engine: &analyzer.Engine{}, Profile: testProfile()}
	rows, err := runner.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].FileName != "broken.pdf" || rows[0].Err == "" {
		t.Fatalf("rows[0] = %+v, want error row", rows[0])
	}
	if rows[1].FileName != "jane.txt" || rows[1].Err != "" {
		t.Fatalf("rows[1] = %+v, want clean row", rows[1])
	}
}

func TestRunMissingDir(t *testing.T) {
	runner := &Runner{Engine: &analyzer.Engine{}, Profile: testProfile()}
	if _, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRunCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jane.txt", batchResumeText)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Engine: &analyzer.Engine{}, Profile: testProfile()}
	if _, err := runner.Run(ctx, dir); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{
			FileName:        "jane.txt",
			Name:            "JANE ROE",
			Email:           "jane@example.com",
			Phone:           "555-987-6543",
			Skills:          "Python, Structured Query Language",
			TotalExperience: "2 years and 1 months",
			ATSScore:        62,
		},
		{FileName: "broken.pdf", Err: "extract text: unsupported document type"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if lines[0] != "file,name,email,phone,skills,total_experience,ats_score,error" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "62") || !strings.Contains(lines[1], "jane.txt") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "extract text: unsupported document type") {
		t.Fatalf("row 2 = %q", lines[2])
	}
}
