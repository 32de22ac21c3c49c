package analyzer

import (
	"regexp"
	"strings"
)

// Suggestions groups actionable feedback by resume area. Every rule is
// independent and additive; an empty struct means nothing was flagged.
type Suggestions struct {
	Contact    []string `json:"contact"`
	Summary    []string `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Format     []string `json:"format"`
}

// All flattens the per-category lists in a fixed order.
func (s Suggestions) All() []string {
	out := make([]string, 0,
		len(s.Contact)+len(s.Summary)+len(s.Skills)+len(s.Experience)+len(s.Education)+len(s.Format))
	out = append(out, s.Contact...)
	out = append(out, s.Summary...)
	out = append(out, s.Skills...)
	out = append(out, s.Experience...)
	out = append(out, s.Education...)
	out = append(out, s.Format...)
	return out
}

const wellOptimizedMessage = "Your resume is well-optimized for ATS systems"

var (
	yearPattern       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	bulletCharPattern = regexp.MustCompile(`[•\-*]`)
	actionVerbPattern = regexp.MustCompile(`\b(developed|managed|created|implemented|designed|led|improved)\b`)
	degreePattern     = regexp.MustCompile(`\b(bachelor|master|phd|b\.|m\.|diploma)\b`)
	gpaPattern        = regexp.MustCompile(`\b(gpa|cgpa|grade|percentage)\b`)
)

// suggestionInput bundles everything the rules inspect.
type suggestionInput struct {
	personal     PersonalInfo
	summary      string
	skills       []string
	keywordScore float64
	sections     Sections
	format       FormatAssessment
	requireGPA   bool
}

func buildSuggestions(in suggestionInput) Suggestions {
	var s Suggestions

	if !hasValue(in.personal.Email) {
		s.Contact = append(s.Contact, "Add your email address")
	}
	if !hasValue(in.personal.Phone) {
		s.Contact = append(s.Contact, "Add your phone number")
	}
	if !hasValue(in.personal.LinkedIn) {
		s.Contact = append(s.Contact, "Add your LinkedIn profile URL")
	}

	switch words := len(strings.Fields(in.summary)); {
	case in.summary == "":
		s.Summary = append(s.Summary, "Add a professional summary to highlight your key qualifications")
	case words < 30:
		s.Summary = append(s.Summary, "Expand your professional summary to better highlight your experience and goals")
	case words > 100:
		s.Summary = append(s.Summary, "Consider making your summary more concise (aim for 50-75 words)")
	}

	if len(in.skills) == 0 {
		s.Skills = append(s.Skills, "Add a dedicated skills section")
	}
	if len(in.skills) < 5 {
		s.Skills = append(s.Skills, "List more relevant technical and soft skills")
	}
	if in.keywordScore < 70 {
		s.Skills = append(s.Skills, "Add more skills that match the job requirements")
	}

	s.Experience = experienceSuggestions(in.sections.Experience)
	s.Education = educationSuggestions(in.sections.Education, in.requireGPA)

	if in.format.Score < 100 {
		s.Format = append(s.Format, in.format.Deductions...)
	}

	return s
}

func experienceSuggestions(entries []string) []string {
	if len(entries) == 0 {
		return []string{"Add your work experience section"}
	}

	var out []string
	if !anyEntry(entries, func(e string) bool { return yearPattern.MatchString(e) }) {
		out = append(out, "Include dates for each work experience")
	}
	if !anyEntry(entries, func(e string) bool { return bulletCharPattern.MatchString(e) }) {
		out = append(out, "Use bullet points to list your achievements and responsibilities")
	}
	if !anyEntry(entries, func(e string) bool { return actionVerbPattern.MatchString(strings.ToLower(e)) }) {
		out = append(out, "Start bullet points with strong action verbs")
	}
	return out
}

func educationSuggestions(entries []string, requireGPA bool) []string {
	if len(entries) == 0 {
		return []string{"Add your educational background"}
	}

	var out []string
	if !anyEntry(entries, func(e string) bool { return yearPattern.MatchString(e) }) {
		out = append(out, "Include graduation dates")
	}
	if !anyEntry(entries, func(e string) bool { return degreePattern.MatchString(strings.ToLower(e)) }) {
		out = append(out, "Specify your degree type")
	}
	if requireGPA && !anyEntry(entries, func(e string) bool { return gpaPattern.MatchString(strings.ToLower(e)) }) {
		out = append(out, "Include your GPA if it's above 3.0")
	}
	return out
}

func anyEntry(entries []string, pred func(string) bool) bool {
	for _, entry := range entries {
		if pred(entry) {
			return true
		}
	}
	return false
}
