package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// CompactDayLayout is the YYYYMMDD layout WorkflowMax uses for dates.
const CompactDayLayout = "20060102"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func FormatCompactDay(value time.Time) string {
	return value.Format(CompactDayLayout)
}

func ParseCompactDay(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(CompactDayLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q (expected YYYYMMDD): %w", value, err)
	}
	return parsed, nil
}

// MonthRange returns the first and last day of the month containing value.
func MonthRange(value time.Time) (time.Time, time.Time) {
	first := time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}
