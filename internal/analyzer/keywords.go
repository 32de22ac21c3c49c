package analyzer

import "strings"

// KeywordMatch compares resume text against a role's required skills.
// FoundSkills and MissingSkills partition the required-skill list.
type KeywordMatch struct {
	Score         float64  `json:"score"`
	FoundSkills   []string `json:"foundSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// MatchKeywords checks every required skill against the text. A skill counts
// as found on direct case-insensitive containment, or on containment within
// any sentence fragment split on periods, which catches mentions broken
// across wrapped lines. Substring matching is deliberately lenient: a few
// false positives are accepted in exchange for recall. An empty requirement
// list scores zero.
func MatchKeywords(text string, requiredSkills []string) KeywordMatch {
	lower := strings.ToLower(text)
	fragments := strings.Split(lower, ".")

	match := KeywordMatch{
		FoundSkills:   []string{},
		MissingSkills: []string{},
	}
	for _, skill := range requiredSkills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(lower, skillLower) || inAnyFragment(fragments, skillLower) {
			match.FoundSkills = append(match.FoundSkills, skill)
		} else {
			match.MissingSkills = append(match.MissingSkills, skill)
		}
	}

	if len(requiredSkills) > 0 {
		match.Score = float64(len(match.FoundSkills)) / float64(len(requiredSkills)) * 100
	}
	return match
}

func inAnyFragment(fragments []string, skillLower string) bool {
	for _, fragment := range fragments {
		if strings.Contains(fragment, skillLower) {
			return true
		}
	}
	return false
}
