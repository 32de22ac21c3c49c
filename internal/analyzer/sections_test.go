package analyzer

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"full calendar year inclusive", "jan/2023", "dec/2023", 12},
		{"open ended range resolves to now", "jan/2023", "current", 27},
		{"present works like current", "jan/2023", "present", 27},
		{"numeric months", "01/2024", "06/2024", 6},
		{"single month counts as one", "may/2024", "may/2024", 1},
		{"mixed forms", "09/2024", "mar/2025", 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := monthsBetween(tc.start, tc.end, fixedNow())
			if err != nil {
				t.Fatalf("monthsBetween(%q, %q): %v", tc.start, tc.end, err)
			}
			if got != tc.want {
				t.Fatalf("monthsBetween(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestMonthsBetweenMalformed(t *testing.T) {
	if _, err := monthsBetween("january/2023", "dec/2023", fixedNow()); err == nil {
		t.Fatal("expected error for unabbreviated month")
	}
	if _, err := monthsBetween("jan-2023", "dec/2023", fixedNow()); err == nil {
		t.Fatal("expected error for missing slash")
	}
}

func TestDurationString(t *testing.T) {
	d := Duration{Years: 2, Months: 3}
	if got := d.String(); got != "2 years and 3 months" {
		t.Fatalf("String() = %q", got)
	}
}

const sampleProviderResponse = `Education:
- BS Computer Science, State University, 2016 - 2020
Experience:
- Backend Engineer at Acme, built billing APIs, jan/2023 - dec/2023
- Platform Engineer at Initech, keeps the lights on, jan/2023 - current
Experience Dates:
1. jan/2023 - dec/2023
2. jan/2023 - current
Projects:
- Resume analyzer, a text scoring service
`

func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleProviderResponse, fixedNow())

	if len(sections.Education) != 1 {
		t.Fatalf("Education = %v, want 1 entry", sections.Education)
	}
	if len(sections.Experience) != 2 {
		t.Fatalf("Experience = %v, want 2 entries", sections.Experience)
	}
	if len(sections.Projects) != 1 {
		t.Fatalf("Projects = %v, want 1 entry", sections.Projects)
	}

	// 12 months + 27 months = 39 months = 3 years and 3 months.
	want := Duration{Years: 3, Months: 3}
	if sections.TotalExperience != want {
		t.Fatalf("TotalExperience = %+v, want %+v", sections.TotalExperience, want)
	}
}

func TestParseSectionsMissingHeadersAreEmpty(t *testing.T) {
	sections := ParseSections("no structure at all", fixedNow())
	if len(sections.Education) != 0 || len(sections.Experience) != 0 || len(sections.Projects) != 0 {
		t.Fatalf("expected empty sections, got %+v", sections)
	}
	if sections.TotalExperience != (Duration{}) {
		t.Fatalf("expected zero duration, got %+v", sections.TotalExperience)
	}
}

func TestParseSectionsDuplicateHeadersMerge(t *testing.T) {
	response := "Education:\n- first degree\nProjects:\n- a project\nEducation:\n- second degree\n"
	sections := ParseSections(response, fixedNow())
	if len(sections.Education) != 2 {
		t.Fatalf("Education = %v, want merged 2 entries", sections.Education)
	}
}

func TestParseSectionsUnmatchedDatesYieldZero(t *testing.T) {
	response := "Experience Dates:\n1. sometime - later\n"
	sections := ParseSections(response, fixedNow())
	if sections.TotalExperience != (Duration{}) {
		t.Fatalf("expected zero duration, got %+v", sections.TotalExperience)
	}
}
