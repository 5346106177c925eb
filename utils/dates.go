// utils/dates.go
package utils

import (
	"fmt"
	"sort"
	"time"
)

const isoDateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseISODate parses a yyyy-mm-dd calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", s)
	}
	return t, nil
}

// ParseDates parses and deduplicates a list of yyyy-mm-dd strings and returns
// them sorted ascending. Any malformed entry fails the whole list.
func ParseDates(values []string) ([]time.Time, error) {
	seen := make(map[string]bool, len(values))
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := ParseISODate(v)
		if err != nil {
			return nil, err
		}
		key := t.Format(isoDateLayout)
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, t)
	}
	SortDatesAscending(dates)
	return dates, nil
}

// SortDatesAscending orders dates chronologically in place.
func SortDatesAscending(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

// IsPastDay reports whether t falls on a calendar day before now's day.
func IsPastDay(t, now time.Time) bool {
	return BeginningOfDay(t).Before(BeginningOfDay(now))
}

// FormatLongDate renders a date as "Monday, January 2, 2006" for display.
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
