// Package timex holds the calendar math shared by the statistics and
// analytics code: normalizing timestamps to day keys and resolving the
// Monday-first week containing a given instant.
package timex

import "time"

// NormalizeDay truncates t to midnight in t's location. The result is the
// grouping key for "same calendar day" comparisons.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekOf returns the half-open interval [start, end) of the calendar week
// containing t. Weeks start on Monday at midnight in t's location; this is
// the one fixed convention used everywhere in the project.
func WeekOf(t time.Time) (start, end time.Time) {
	day := NormalizeDay(t)
	wd := int(day.Weekday())
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (wd + 6) % 7
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 7)
	return start, end
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	return NormalizeDay(a).Equal(NormalizeDay(b.In(a.Location())))
}
