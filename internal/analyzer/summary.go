package analyzer

import (
	"regexp"
	"strings"
)

// summaryKeywords mark lines that introduce a summary or objective section.
var summaryKeywords = []string{
	"summary", "professional summary", "career summary", "objective",
	"career objective", "professional objective", "about me", "profile",
	"professional profile", "career profile", "overview", "skill summary",
}

var contactInfoPattern = regexp.MustCompile(`\b(?:email|phone|address|tel|mobile|linkedin)\b`)

// ExtractSummary finds the candidate's professional summary. It works in two
// phases: first it treats the opening lines of the document as an implicit
// summary when they read like prose (more than ten words, no contact info, no
// section header on the first line); then it scans for an explicitly labeled
// summary/objective section and accumulates its lines until a different
// resume section begins. All collected fragments are joined into one string.
func ExtractSummary(text string) string {
	lines := strings.Split(text, "\n")
	var parts []string

	if opening := implicitSummary(lines); opening != "" {
		parts = append(parts, opening)
	}
	parts = append(parts, labeledSummary(lines)...)

	return strings.Join(parts, " ")
}

// implicitSummary checks whether the first few non-empty lines form a summary
// paragraph even without an explicit header.
func implicitSummary(lines []string) string {
	var first []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		first = append(first, trimmed)
		if len(first) >= 5 {
			break
		}
	}
	if len(first) == 0 || containsSummaryKeyword(first[0]) {
		return ""
	}

	candidate := strings.Join(first, " ")
	if len(strings.Fields(candidate)) <= 10 {
		return ""
	}
	if contactInfoPattern.MatchString(strings.ToLower(candidate)) {
		return ""
	}
	return candidate
}

// labeledSummary collects the contents of explicitly marked summary sections.
// A blank line flushes the current entry; a line naming a different resume
// section closes the summary section entirely.
func labeledSummary(lines []string) []string {
	var entries []string
	var current []string
	inSection := false

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, " "))
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if containsSummaryKeyword(line) {
			if !isBareSummaryHeader(line) {
				// Header line that also carries content.
				current = append(current, line)
			}
			inSection = true
			continue
		}

		if !inSection {
			continue
		}

		if line != "" && containsResumeSectionKeyword(line) {
			inSection = false
			flush()
			continue
		}

		if line != "" {
			current = append(current, line)
		} else {
			flush()
		}
	}
	flush()

	return entries
}

func containsSummaryKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range summaryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func isBareSummaryHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range summaryKeywords {
		if lower == keyword {
			return true
		}
	}
	return false
}

func containsResumeSectionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range documentTypeKeywords[DocumentTypeResume] {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
