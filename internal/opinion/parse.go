package opinion

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrScoreNotFound signals that a provider response carried no parsable
// overall-score line. It is deliberately distinct from a zero score, which
// would be indistinguishable from a legitimately poor resume.
var ErrScoreNotFound = errors.New("opinion: overall score line not found in provider response")

// CategoryFeedback is one entry of the provider's numbered category
// breakdown.
type CategoryFeedback struct {
	Heading  string `json:"heading"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
}

// Evaluation is the structured result of parsing a provider response. Fields
// the parser could not find are explicit: ScoreFound false, empty Categories.
type Evaluation struct {
	Score      int                `json:"score"`
	ScoreFound bool               `json:"scoreFound"`
	Categories []CategoryFeedback `json:"categories"`
}

// Providers emit one to three digit scores; older responses always used two
// digits, and "100/100" must parse rather than fail.
var (
	scorePattern    = regexp.MustCompile(`(?i)ATS Score:[^\d]*(\d{1,3})\s*/\s*100`)
	categoryPattern = regexp.MustCompile(`(?s)(\d+\..*?)\n-\s*Score:.*?\n-\s*Strength:\s*(.*?)\n-\s*Weakness:\s*(.*?)\n`)
)

// ParseEvaluation scans free-form provider prose for the overall score line
// and the category breakdown. A missing score is an error; missing category
// entries are not.
func ParseEvaluation(raw string) (Evaluation, error) {
	eval := Evaluation{Categories: []CategoryFeedback{}}

	m := scorePattern.FindStringSubmatch(raw)
	if m == nil {
		return eval, fmt.Errorf("%w: %s", ErrScoreNotFound, snippet(raw))
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return eval, fmt.Errorf("%w: %s", ErrScoreNotFound, snippet(raw))
	}
	eval.Score = clampScore(score)
	eval.ScoreFound = true

	for _, cm := range categoryPattern.FindAllStringSubmatch(raw, -1) {
		eval.Categories = append(eval.Categories, CategoryFeedback{
			Heading:  strings.TrimSpace(cm[1]),
			Strength: strings.TrimSpace(cm[2]),
			Weakness: strings.TrimSpace(cm[3]),
		})
	}

	return eval, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// snippet trims a raw response down to something safe to embed in an error.
func snippet(raw string) string {
	flat := strings.Join(strings.Fields(raw), " ")
	const maxLen = 120
	if len(flat) > maxLen {
		flat = flat[:maxLen] + "..."
	}
	if flat == "" {
		flat = "(empty response)"
	}
	return flat
}
