package stay

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for calendar days.
const DayFormat = "2006-01-02"

// Day truncates t to a calendar day at UTC midnight. All dates handled by
// the widget are day-granular; time-of-day never participates in
// comparisons.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO-8601 date string into a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("stay: invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a calendar day in ISO-8601.
func FormatDay(t time.Time) string {
	return Day(t).Format(DayFormat)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Nights returns the number of nights between check-in and check-out.
// This is the exclusive day difference, not the count of occupied dates:
// a Friday-to-Sunday stay is two nights.
func Nights(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}

// DaysThrough lists every calendar day from from to to, inclusive on both
// ends. Price totals iterate these dates; note the deliberate mismatch
// with Nights, which excludes the final day.
func DaysThrough(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	if to.Before(from) {
		return nil
	}
	days := make([]time.Time, 0, Nights(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
