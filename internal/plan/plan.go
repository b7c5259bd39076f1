// Package plan implements the weekend scheduling engine: the data model for
// scheduled activities and the algorithms for slot discovery, capacity
// checking, conflict detection, and reorder/cascade recalculation.
package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

// Domain errors. All are recoverable at the caller level; none are fatal.
var (
	ErrNoPlan        = errors.New("no active plan")
	ErrNoSlot        = errors.New("no available slot")
	ErrNoCapacity    = errors.New("insufficient free time")
	ErrTimeConflict  = errors.New("time conflict")
	ErrNotFound      = errors.New("scheduled activity not found")
	ErrInvalidDay    = errors.New("day must be 'saturday' or 'sunday'")
	ErrInvalidBounds = errors.New("start hour must be before end hour, both in 0-23")
	ErrOrderMismatch = errors.New("reorder list does not match the day's activities")
)

// Day tags one of the two plannable days.
type Day string

const (
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
)

// Days lists the plannable days in order.
var Days = []Day{Saturday, Sunday}

// ParseDay parses a day tag.
func ParseDay(s string) (Day, error) {
	switch Day(s) {
	case Saturday:
		return Saturday, nil
	case Sunday:
		return Sunday, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
}

// Valid returns true if the day is a known value.
func (d Day) Valid() bool {
	return d == Saturday || d == Sunday
}

// Title returns the capitalized day name.
func (d Day) Title() string {
	switch d {
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return string(d)
	}
}

// Bounds is the per-day placement window configuration.
type Bounds struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// Validate checks the bounds invariant: 0 <= StartHour < EndHour <= 23.
func (b Bounds) Validate() error {
	if b.StartHour < 0 || b.EndHour > 23 || b.StartHour >= b.EndHour {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidBounds, b.StartHour, b.EndHour)
	}
	return nil
}

// WindowMinutes returns the total minutes in the placement window.
func (b Bounds) WindowMinutes() int {
	return (b.EndHour - b.StartHour) * 60
}

// TimeBounds pairs the two days' bounds.
type TimeBounds struct {
	Saturday Bounds `json:"saturday"`
	Sunday   Bounds `json:"sunday"`
}

// For returns the bounds for the given day.
func (tb TimeBounds) For(d Day) Bounds {
	if d == Sunday {
		return tb.Sunday
	}
	return tb.Saturday
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// DurationMin returns the interval length in whole minutes.
func (iv Interval) DurationMin() int {
	return timeutil.MinutesBetween(iv.Start, iv.End)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return timeutil.Overlaps(iv.Start, iv.End, other.Start, other.End)
}

// ScheduledActivity is one placement of an activity onto a day. Its id is
// unique per placement; the same catalog activity may be scheduled several
// times. ActivityData carries a value copy of the source activity when it is
// not part of the static catalog (place-derived activities), so the placement
// survives serialization on its own.
type ScheduledActivity struct {
	ID                string             `json:"id"`
	ActivityID        string             `json:"activityId"`
	Start             time.Time          `json:"startTime"`
	End               time.Time          `json:"endTime"`
	Day               Day                `json:"day"`
	CustomDurationMin int                `json:"customDuration,omitempty"` // 0 = use nominal duration
	Notes             string             `json:"notes,omitempty"`
	ActivityData      *activity.Activity `json:"activityData,omitempty"`
}

// Interval returns the placement's half-open time range.
func (s *ScheduledActivity) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// DurationMin returns the placed duration in minutes (End - Start).
func (s *ScheduledActivity) DurationMin() int {
	return timeutil.MinutesBetween(s.Start, s.End)
}

// Clone returns a copy of the placement, including the inline snapshot.
func (s *ScheduledActivity) Clone() *ScheduledActivity {
	out := *s
	if s.ActivityData != nil {
		data := *s.ActivityData
		out.ActivityData = &data
	}
	return &out
}

// WeekendPlan is the aggregate root: two ordered day collections plus their
// bounds. Each day's collection is kept sorted by start time and free of
// interval overlaps; intervals lie within the day's window at placement time
// (narrowing bounds later does not evict existing activities).
type WeekendPlan struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Theme      activity.Theme       `json:"theme,omitempty"`
	Saturday   []*ScheduledActivity `json:"saturday"`
	Sunday     []*ScheduledActivity `json:"sunday"`
	TimeBounds TimeBounds           `json:"timeBounds"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// DayList returns the backing slice for a day.
func (p *WeekendPlan) DayList(d Day) []*ScheduledActivity {
	if d == Sunday {
		return p.Sunday
	}
	return p.Saturday
}

func (p *WeekendPlan) setDayList(d Day, list []*ScheduledActivity) {
	if d == Sunday {
		p.Sunday = list
	} else {
		p.Saturday = list
	}
}

// ActivityCount returns the number of placements across both days.
func (p *WeekendPlan) ActivityCount() int {
	return len(p.Saturday) + len(p.Sunday)
}

// Validate checks structural invariants, used when restoring a snapshot:
// valid bounds and no overlapping intervals within either day.
func (p *WeekendPlan) Validate() error {
	if err := p.TimeBounds.Saturday.Validate(); err != nil {
		return fmt.Errorf("saturday bounds: %w", err)
	}
	if err := p.TimeBounds.Sunday.Validate(); err != nil {
		return fmt.Errorf("sunday bounds: %w", err)
	}
	for _, d := range Days {
		list := p.DayList(d)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if list[i].Interval().Overlaps(list[j].Interval()) {
					return fmt.Errorf("%w: %s and %s on %s",
						ErrTimeConflict, list[i].ID, list[j].ID, d)
				}
			}
		}
	}
	return nil
}
