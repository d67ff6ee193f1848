package calendar

import "time"

// Range is an inclusive span of time.
type Range struct {
	Start time.Time
	End   time.Time
}

// Day returns the range covering t's calendar day.
func Day(t time.Time) Range {
	return Range{Start: StartOfDay(t), End: EndOfDay(t)}
}

// Week returns the Monday-to-Sunday range containing t.
func Week(t time.Time) Range {
	return Range{Start: StartOfWeek(t), End: EndOfWeek(t)}
}

// Month returns the calendar month containing t.
func Month(t time.Time) Range {
	return Range{Start: StartOfMonth(t), End: EndOfMonth(t)}
}

// Year returns the calendar year containing t.
func Year(t time.Time) Range {
	return Range{Start: StartOfYear(t), End: EndOfYear(t)}
}

// Contains reports whether the day named by key lies in r.
func (r Range) Contains(key string) bool {
	return IsWithinRange(key, r.Start, r.End)
}
