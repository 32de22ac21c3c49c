package analyzer

import (
	"fmt"
	"strings"
	"time"
)

// Duration is an aggregate work-experience span.
type Duration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// String renders the duration the way reports display it.
func (d Duration) String() string {
	return fmt.Sprintf("%d years and %d months", d.Years, d.Months)
}

// monthNumbers resolves three-letter month abbreviations and zero-padded
// numeric months to month numbers.
var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	"01": 1, "02": 2, "03": 3, "04": 4, "05": 5, "06": 6,
	"07": 7, "08": 8, "09": 9, "10": 10, "11": 11, "12": 12,
}

// monthsBetween computes the inclusive month count covered by a date range.
// Dates are "mon/year" strings ("jan/2023", "03/2024"); the end may also be
// "current" or "present", which resolve to now. A range covering a single
// calendar month counts as one month.
func monthsBetween(start, end string, now time.Time) (int, error) {
	startMonth, startYear, err := parseMonthYear(start, now)
	if err != nil {
		return 0, fmt.Errorf("start %q: %w", start, err)
	}
	endMonth, endYear, err := parseMonthYear(end, now)
	if err != nil {
		return 0, fmt.Errorf("end %q: %w", end, err)
	}
	return (endYear-startYear)*12 + (endMonth - startMonth) + 1, nil
}

func parseMonthYear(value string, now time.Time) (month, year int, err error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "current" || lower == "present" {
		return int(now.Month()), now.Year(), nil
	}

	parts := strings.SplitN(lower, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed month/year")
	}
	month, ok := monthNumbers[parts[0]]
	if !ok {
		return 0, 0, fmt.Errorf("unrecognized month %q", parts[0])
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &year); err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("unrecognized year %q", parts[1])
	}
	return month, year, nil
}
