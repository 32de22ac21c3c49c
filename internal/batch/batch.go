// Package batch analyzes a directory of resume files against a single
// job-role profile and reports one row per file.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/extract"
	"ats-backend/internal/jobroles"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
)

// Row is the outcome for one file in a batch run. Err is set when the file
// could not be analyzed; the rest of the fields are zero in that case.
type Row struct {
	FileName        string
	Name            string
	Email           string
	Phone           string
	Skills          string
	TotalExperience string
	ATSScore        int
	Err             string
}

// Runner walks a directory and analyzes every supported file in it.
type Runner struct {
	Engine  *analyzer.Engine
	Profile jobroles.Profile
}

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Run analyzes each supported file under dir, in lexical order. A file that
// fails to extract or analyze produces a row with Err set; the run keeps
// going. The returned error covers only directory-level problems.
func (r *Runner) Run(ctx context.Context, dir string) ([]Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		rows = append(rows, r.analyzeFile(ctx, dir, name))
	}
	return rows, nil
}

func (r *Runner) analyzeFile(ctx context.Context, dir, name string) Row {
	metrics.IncBatchRow()
	row := Row{FileName: name}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return r.failRow(row, fmt.Errorf("read file: %w", err))
	}

	text, err := extract.TextFromBytes(ctx, data, "", name)
	if err != nil {
		return r.failRow(row, fmt.Errorf("extract text: %w", err))
	}

	report, err := r.Engine.Analyze(ctx, text, r.Profile)
	if err != nil {
		return r.failRow(row, fmt.Errorf("analyze: %w", err))
	}

	row.Name = report.PersonalInfo.Name
	row.Email = report.PersonalInfo.Email
	row.Phone = report.PersonalInfo.Phone
	row.Skills = strings.Join(report.Skills, ", ")
	row.TotalExperience = report.TotalExperience
	row.ATSScore = report.ATSScore
	return row
}

func (r *Runner) failRow(row Row, err error) Row {
	metrics.IncBatchRowFailure()
	telemetry.Warn("batch.row_failed", map[string]any{
		"file":  row.FileName,
		"error": err.Error(),
	})
	row.Err = err.Error()
	return row
}
