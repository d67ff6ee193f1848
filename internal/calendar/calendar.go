// package calendar computes date keys, Monday-first week/month/year ranges and the month grid.
//
// All functions are pure. Date parts are read in the location of the given [time.Time];
// nothing is converted to UTC.
package calendar

import (
	"time"
)

// KeyLayout formats a date key (YYYY-MM-DD).
const KeyLayout = "2006-01-02"

// WeekdayLabels are the column headings of a Monday-first grid.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

const lastNano = 999_999_999

// DateKey returns the YYYY-MM-DD key of t's calendar day.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseDateKey parses a date key as midnight in loc. A nil loc means [time.Local].
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(KeyLayout, key, loc)
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, lastNano, t.Location())
}

// mondayOffset is the number of days since the most recent Monday (0 on Mondays).
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWeek returns midnight on the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-mondayOffset(t), 0, 0, 0, 0, t.Location())
}

// EndOfWeek returns the last instant of the Sunday ending t's week.
func EndOfWeek(t time.Time) time.Time {
	start := StartOfWeek(t)
	return EndOfDay(start.AddDate(0, 0, 6))
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of the final day of t's month.
func EndOfMonth(t time.Time) time.Time {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 23, 59, 59, lastNano, t.Location())
}

// StartOfYear returns midnight on January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last instant of December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, lastNano, t.Location())
}

// IsWithinRange reports whether the day named by key lies in [start, end].
//
// The key is read as midnight in start's location. Malformed keys are never in range.
func IsWithinRange(key string, start, end time.Time) bool {
	d, err := ParseDateKey(key, start.Location())
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// AddMonths returns the first day of the month n months away from t's month.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// FormatShort renders a date key as "Jan 2". Malformed keys are returned unchanged.
func FormatShort(key string) string {
	d, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return key
	}
	return d.Format("Jan 2")
}

// FormatLong renders a date key as "Monday, January 2". Malformed keys are returned unchanged.
func FormatLong(key string) string {
	d, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return key
	}
	return d.Format("Monday, January 2")
}
