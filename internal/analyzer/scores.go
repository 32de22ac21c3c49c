package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// essentialSections drive the section-completeness score. Order is fixed so
// per-section contributions are reproducible.
var essentialSections = []struct {
	name     string
	keywords []string
}{
	{"contact", []string{"email", "phone", "address", "linkedin"}},
	{"education", []string{"education", "university", "college", "degree", "academic"}},
	{"experience", []string{"experience", "work", "employment", "job", "internship"}},
	{"skills", []string{"skills", "technologies", "tools", "proficiencies", "expertise"}},
}

// ScoreSections rates section completeness: each essential section earns up
// to 25 points proportional to how many of its keywords appear in the text,
// for a maximum of 100.
func ScoreSections(text string) float64 {
	lower := strings.ToLower(text)

	total := 0.0
	for _, section := range essentialSections {
		found := 0
		for _, keyword := range section.keywords {
			if strings.Contains(lower, keyword) {
				found++
			}
		}
		score := float64(found) / float64(len(section.keywords)) * 25
		if score > 25 {
			score = 25
		}
		total += score
	}
	return total
}

// FormatAssessment is the layout-hygiene verdict: a score out of 100 and the
// ordered list of human-readable deduction reasons.
type FormatAssessment struct {
	Score      int      `json:"score"`
	Deductions []string `json:"deductions"`
}

var bulletGlyphs = []string{"•", "-", "*", "→"}

var (
	formatEmailPattern    = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	formatPhonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	formatLinkedinPattern = regexp.MustCompile(`linkedin\.com/\w+`)
)

// AssessFormat applies the layout checks in a fixed order, deducting from a
// starting score of 100 and recording one reason per failed check. The score
// never goes below zero.
func AssessFormat(text string) FormatAssessment {
	lines := strings.Split(text, "\n")
	assessment := FormatAssessment{Score: 100, Deductions: []string{}}

	deduct := func(points int, reason string) {
		assessment.Score -= points
		assessment.Deductions = append(assessment.Deductions, reason)
	}

	if len(text) < 300 {
		deduct(30, "Resume is too short")
	}

	if !anyLine(lines, isUpperLine) {
		deduct(20, "No clear section headers found")
	}

	if !anyLine(lines, startsWithBullet) {
		deduct(20, "No bullet points found for listing details")
	}

	if hasAdjacentBlankLines(lines) {
		deduct(15, "Inconsistent spacing between sections")
	}

	if !formatEmailPattern.MatchString(text) &&
		!formatPhonePattern.MatchString(text) &&
		!formatLinkedinPattern.MatchString(text) {
		deduct(15, "Missing or improperly formatted contact information")
	}

	if assessment.Score < 0 {
		assessment.Score = 0
	}
	return assessment
}

func anyLine(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if pred(line) {
			return true
		}
	}
	return false
}

// isUpperLine reports whether a line reads as an upper-case section header:
// it contains at least one letter and no lower-case letters.
func isUpperLine(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func startsWithBullet(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}

func hasAdjacentBlankLines(lines []string) bool {
	for i := 0; i+1 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" && strings.TrimSpace(lines[i+1]) == "" {
			return true
		}
	}
	return false
}
