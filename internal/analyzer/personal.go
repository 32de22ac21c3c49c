package analyzer

import (
	"regexp"
	"strings"
)

// UnknownValue marks personal-info fields that could not be extracted.
const UnknownValue = "Unknown"

// PersonalInfo holds contact details extracted from resume text. Name and
// Email fall back to UnknownValue; the remaining fields fall back to "".
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

var (
	emailPattern    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\s*\(?\d{3}\)?[-.]?\s*\d{3}[-.]?\s*\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// ExtractPersonalInfo pulls contact fields out of raw resume text. Each field
// is matched independently, so a missing phone number does not prevent the
// email or profile links from being found. The candidate's name is taken as
// the first non-empty line of the document.
func ExtractPersonalInfo(text string) PersonalInfo {
	info := PersonalInfo{
		Name:  UnknownValue,
		Email: UnknownValue,
	}

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			info.Name = trimmed
			break
		}
	}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		info.Phone = strings.TrimSpace(m)
	}
	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedIn = m
	}
	if m := githubPattern.FindString(text); m != "" {
		info.GitHub = m
	}

	return info
}

// hasValue reports whether a personal-info field carries a real extracted
// value rather than a fallback sentinel.
func hasValue(field string) bool {
	return field != "" && field != UnknownValue
}
