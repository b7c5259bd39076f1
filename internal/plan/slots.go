package plan

import (
	"sort"
	"time"

	"github.com/lmoreno/weekendly/internal/timeutil"
)

// Capacity reports a day's aggregate free time.
type Capacity struct {
	CanFit           bool
	UsedMinutes      int
	AvailableMinutes int
}

// FindSlot returns the earliest start instant at which an activity of the
// given duration fits into the day without overlapping any existing interval:
// before the first interval, in the first sufficient gap, or after the last
// interval. ok is false when nothing fits; callers must surface that to the
// user rather than dropping the activity silently.
//
// This is earliest-fit, not best-fit.
func FindSlot(existing []Interval, durationMin int, day Day, b Bounds, now time.Time) (slot time.Time, ok bool) {
	dayStart, dayEnd := ResolveDay(day, b, now)
	return findSlotWindow(existing, durationMin, dayStart, dayEnd)
}

func findSlotWindow(existing []Interval, durationMin int, dayStart, dayEnd time.Time) (time.Time, bool) {
	sorted := sortedIntervals(existing)

	// Head: fits before the first interval (or the day is empty).
	headEnd := timeutil.AddMinutes(dayStart, durationMin)
	if len(sorted) == 0 {
		if !headEnd.After(dayEnd) {
			return dayStart, true
		}
		return time.Time{}, false
	}
	if !headEnd.After(sorted[0].Start) {
		return dayStart, true
	}

	// Gaps between consecutive intervals.
	for i := 0; i < len(sorted)-1; i++ {
		gap := timeutil.MinutesBetween(sorted[i].End, sorted[i+1].Start)
		if gap >= durationMin {
			return sorted[i].End, true
		}
	}

	// Tail: fits after the last interval.
	last := sorted[len(sorted)-1]
	tailEnd := timeutil.AddMinutes(last.End, durationMin)
	if !tailEnd.After(dayEnd) {
		return last.End, true
	}

	return time.Time{}, false
}

// CheckCapacity computes whether a day has any free time left, and how much.
// It only measures aggregate free minutes: a day can have enough total free
// time split into gaps too small for a specific activity, so placement
// feasibility still requires FindSlot.
func CheckCapacity(existing []Interval, day Day, b Bounds, now time.Time) Capacity {
	dayStart, dayEnd := ResolveDay(day, b, now)

	used := 0
	for _, iv := range existing {
		used += iv.DurationMin()
	}

	available := timeutil.MinutesBetween(dayStart, dayEnd) - used
	return Capacity{
		CanFit:           available > 0,
		UsedMinutes:      used,
		AvailableMinutes: available,
	}
}

// freeSlots returns the gaps within the window not covered by any interval,
// in chronological order. An empty day yields the whole window.
func freeSlots(existing []Interval, dayStart, dayEnd time.Time) []Interval {
	sorted := sortedIntervals(existing)

	var slots []Interval
	if len(sorted) == 0 {
		return []Interval{{Start: dayStart, End: dayEnd}}
	}

	if sorted[0].Start.After(dayStart) {
		slots = append(slots, Interval{Start: dayStart, End: sorted[0].Start})
	}
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i+1].Start.After(sorted[i].End) {
			slots = append(slots, Interval{Start: sorted[i].End, End: sorted[i+1].Start})
		}
	}
	if last := sorted[len(sorted)-1]; dayEnd.After(last.End) {
		slots = append(slots, Interval{Start: last.End, End: dayEnd})
	}

	return slots
}

func sortedIntervals(existing []Interval) []Interval {
	sorted := make([]Interval, len(existing))
	copy(sorted, existing)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
