// Package timeutil provides pure helpers for durations and time intervals.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats minutes as a human-readable duration.
// Zero parts are omitted: "1h 30m", "2h", "45m". Zero minutes is "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatClock formats a time as a 12-hour clock string, e.g. "9:00 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatClockRange formats a start/end pair, e.g. "9:00 AM - 10:30 AM".
func FormatClockRange(start, end time.Time) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// MinutesBetween returns the whole minutes from start to end.
// Negative spans return 0.
func MinutesBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// AddMinutes returns t shifted forward by the given number of minutes.
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}
