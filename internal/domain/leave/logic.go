package leave

import (
	"fmt"
	"math"
	"time"
)

const dayMillis = 86400000

// CalculateDays returns the inclusive number of days from start to end:
// ceil((end-start)/1 day) + 1, never below zero.
func CalculateDays(start, end time.Time) int {
	diff := float64(end.Sub(start).Milliseconds()) / dayMillis
	days := int(math.Ceil(diff)) + 1
	if days < 0 {
		return 0
	}
	return days
}

// ParseDate accepts YYYY-MM-DD or RFC3339.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return parsed, nil
}

// ApplicationDays parses the application dates and counts its days.
func ApplicationDays(app Application) (int, error) {
	start, err := ParseDate(app.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(app.EndDate)
	if err != nil {
		return 0, err
	}
	return CalculateDays(start, end), nil
}
