package analyzer

import (
	"regexp"
	"strings"
	"time"
)

// Sections is the structured education/experience/projects breakdown parsed
// from the opinion provider's section-extraction response.
type Sections struct {
	Education       []string `json:"education"`
	Experience      []string `json:"experience"`
	Projects        []string `json:"projects"`
	TotalExperience Duration `json:"totalExperience"`
}

// dateRangePattern matches numbered "mon/year - mon/year" entries from the
// Experience Dates listing, with current/present accepted as the end marker.
var dateRangePattern = regexp.MustCompile(`(?i)\d+\.\s*((?:[A-Za-z]{3}|\d{2})/\d{4})\s*-\s*((?:[A-Za-z]{3}|\d{2})/\d{4}|current|present)`)

const listMarker = "- "

// ParseSections reads the provider's free-text response. Section headers are
// matched by substring; list items are the lines carrying a leading "- "
// marker. Repeated headers with the same name merge by appending. The
// Experience Dates listing is handled separately: its numbered date ranges
// are summed into a total experience duration, with open-ended ranges
// resolved against now. A missing header or unmatched date listing yields an
// empty section or zero duration, never an error.
func ParseSections(response string, now time.Time) Sections {
	var sections Sections

	var active *[]string
	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.Contains(line, "Experience Dates"):
			// Date listing is parsed by regex below, not collected as items.
			active = nil
		case strings.Contains(line, "Education"):
			active = &sections.Education
		case strings.Contains(line, "Experience"):
			active = &sections.Experience
		case strings.Contains(line, "Projects"):
			active = &sections.Projects
		default:
			if active == nil || !strings.HasPrefix(line, listMarker) {
				continue
			}
			item := strings.TrimSpace(strings.TrimPrefix(line, listMarker))
			if item != "" {
				*active = append(*active, item)
			}
		}
	}

	totalMonths := 0
	for _, match := range dateRangePattern.FindAllStringSubmatch(response, -1) {
		months, err := monthsBetween(match[1], match[2], now)
		if err != nil {
			continue
		}
		totalMonths += months
	}
	sections.TotalExperience = Duration{
		Years:  totalMonths / 12,
		Months: totalMonths % 12,
	}

	return sections
}
