package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSlashDate parses a slash-separated month/day/year date as it appears
// on FDA listing pages. Both M/D/YYYY and M/D/YY are accepted; a 2-digit
// year is interpreted as 2000+YY (the page mixes both, e.g. 12/29/25).
// The result is fixed at midnight UTC.
func ParseSlashDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("unexpected date format: %s", s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}

	if year < 100 {
		year = 2000 + year
	}

	// time.Date normalizes out-of-range components (month 13 rolls into the
	// next year), so reject any date that does not round-trip.
	dt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if dt.Year() != year || dt.Month() != time.Month(month) || dt.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date: %s", s)
	}

	return dt, nil
}
