package plan

import "time"

// ResolveDay maps a day tag and bounds to concrete instants for the next
// occurrence of that weekday from now, at StartHour:00 and EndHour:00 local
// time. On a Saturday, "saturday" resolves to today and "sunday" to tomorrow.
//
// Because the anchor date is recomputed from now on every call, the resolver
// is not idempotent across real-time day boundaries: calling it on different
// days of the week yields different anchor dates. That is accepted
// single-weekend-ahead behavior, not a defect.
func ResolveDay(day Day, b Bounds, now time.Time) (start, end time.Time) {
	offset := 6 - int(now.Weekday()) // days until Saturday
	if day == Sunday {
		offset = 7 - int(now.Weekday())
	}
	anchor := now.AddDate(0, 0, offset)
	return windowOn(anchor, b)
}

// windowOn returns the placement window anchored to the calendar date of t.
// Cascade and reorder use this so that recomputation stays on the day the
// activities were actually placed, independent of when it runs.
func windowOn(t time.Time, b Bounds) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), b.StartHour, 0, 0, 0, t.Location())
	end = time.Date(t.Year(), t.Month(), t.Day(), b.EndHour, 0, 0, 0, t.Location())
	return start, end
}
