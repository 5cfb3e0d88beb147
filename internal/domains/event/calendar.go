package event

import "time"

// Calendar day math. All comparisons happen in one configured zone so a
// show stored at 23:00 UTC does not drift onto the wrong calendar day.

// MonthRange returns the half-open window [first of month, first of next
// month) in loc. Month values outside 1..12 normalize the Go way
// (month 13 of 2026 is January 2027), callers validate before this.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// DayOf truncates t to midnight in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayOf(a, loc).Equal(DayOf(b, loc))
}

// Spans reports whether the event covers day: a single-day event matches
// its start day, a multi-day event matches every day from start through
// end inclusive.
func (e Event) Spans(day time.Time, loc *time.Location) bool {
	d := DayOf(day, loc)
	start := DayOf(e.StartDate, loc)
	if e.EndDate == nil {
		return d.Equal(start)
	}
	end := DayOf(*e.EndDate, loc)
	return !d.Before(start) && !d.After(end)
}

// EventsOnDay filters events to those spanning day.
func EventsOnDay(events []EventResponse, day time.Time, loc *time.Location) []EventResponse {
	out := []EventResponse{}
	for _, e := range events {
		if e.Spans(day, loc) {
			out = append(out, e)
		}
	}
	return out
}
