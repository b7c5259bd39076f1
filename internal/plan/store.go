package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

// DefaultPlanName is used when a plan is created without a name.
const DefaultPlanName = "My Weekend Plan"

// Store owns the current weekend plan and dispatches every scheduling
// operation against it. It is an explicit handle with single-writer
// semantics: one logical session owns it, no internal locking.
type Store struct {
	catalog *activity.Catalog
	plan    *WeekendPlan
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source, used by tests to pin the weekend anchor.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store backed by the given catalog, with no active plan.
func NewStore(catalog *activity.Catalog, opts ...Option) *Store {
	s := &Store{catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the activity catalog the store resolves against.
func (s *Store) Catalog() *activity.Catalog { return s.catalog }

// HasPlan reports whether a plan is active.
func (s *Store) HasPlan() bool { return s.plan != nil }

// Plan returns the current plan, or nil.
func (s *Store) Plan() *WeekendPlan { return s.plan }

// SetPlan replaces the current plan, e.g. after loading a snapshot.
func (s *Store) SetPlan(p *WeekendPlan) { s.plan = p }

// Clear drops the current plan.
func (s *Store) Clear() { s.plan = nil }

// NewPlan creates and activates a fresh plan.
func (s *Store) NewPlan(name string, theme activity.Theme, bounds TimeBounds) *WeekendPlan {
	if name == "" {
		name = DefaultPlanName
	}
	now := s.now()
	p := &WeekendPlan{
		ID:         uuid.NewString(),
		Name:       name,
		Theme:      theme,
		Saturday:   []*ScheduledActivity{},
		Sunday:     []*ScheduledActivity{},
		TimeBounds: bounds,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.plan = p
	return p
}

func (s *Store) touch() {
	s.plan.UpdatedAt = s.now()
}

// ResolveActivity resolves a placement to its source activity: the inline
// snapshot first, then the catalog by id. When neither is available it
// returns the Unknown Activity placeholder and ok=false so callers can see
// the degraded state.
func (s *Store) ResolveActivity(sa *ScheduledActivity) (activity.Activity, bool) {
	if sa.ActivityData != nil {
		return *sa.ActivityData, true
	}
	if a, ok := s.catalog.ByID(sa.ActivityID); ok {
		return a, true
	}
	return activity.Unresolved(sa.ActivityID), false
}

// EffectiveDuration returns the placement's duration in minutes: the custom
// override when set, otherwise the source activity's nominal duration.
func (s *Store) EffectiveDuration(sa *ScheduledActivity) int {
	if sa.CustomDurationMin > 0 {
		return sa.CustomDurationMin
	}
	a, _ := s.ResolveActivity(sa)
	return a.DurationMin
}

// AddToSchedule places an activity on a day at an explicit start time.
// The candidate range is conflict-checked against the day's placements; a
// colliding placement is rejected with a ConflictError. Location-based
// activities are snapshotted onto the placement so they survive
// serialization without the catalog.
func (s *Store) AddToSchedule(act activity.Activity, day Day, start time.Time) (*ScheduledActivity, error) {
	if s.plan == nil {
		return nil, ErrNoPlan
	}
	if !day.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	if err := act.Validate(); err != nil {
		return nil, err
	}

	end := timeutil.AddMinutes(start, act.DurationMin)
	if c := CheckConflict(s.plan.DayList(day), "", start, end); c.HasConflict {
		return nil, &ConflictError{Kind: c.Kind, With: c.With}
	}

	sa := &ScheduledActivity{
		ID:         uuid.NewString(),
		ActivityID: act.ID,
		Start:      start,
		End:        end,
		Day:        day,
	}
	if act.LocationBased {
		snapshot := act
		sa.ActivityData = &snapshot
	}

	list := append(s.plan.DayList(day), sa)
	sortByStart(list)
	s.plan.setDayList(day, list)
	s.touch()
	return sa, nil
}

// AddAuto places an activity into the earliest available slot on the day.
// The capacity check short-circuits before slot discovery when the day has
// no free time at all; otherwise a missing slot is reported as ErrNoSlot.
func (s *Store) AddAuto(act activity.Activity, day Day) (*ScheduledActivity, error) {
	if s.plan == nil {
		return nil, ErrNoPlan
	}

	bounds := s.plan.TimeBounds.For(day)
	existing := s.intervals(day)

	cap := CheckCapacity(existing, day, bounds, s.now())
	if cap.AvailableMinutes <= 0 {
		return nil, fmt.Errorf("%w: %s is fully booked (%s used)",
			ErrNoCapacity, day.Title(), timeutil.FormatDuration(cap.UsedMinutes))
	}

	start, ok := FindSlot(existing, act.DurationMin, day, bounds, s.now())
	if !ok {
		return nil, fmt.Errorf("%w: no %s gap left on %s; try the other day, a shorter duration, or wider day bounds",
			ErrNoSlot, timeutil.FormatDuration(act.DurationMin), day.Title())
	}

	return s.AddToSchedule(act, day, start)
}

// RemoveScheduled deletes a placement by id from whichever day holds it.
func (s *Store) RemoveScheduled(id string) error {
	if s.plan == nil {
		return ErrNoPlan
	}
	for _, d := range Days {
		list := s.plan.DayList(d)
		for i, sa := range list {
			if sa.ID == id {
				s.plan.setDayList(d, append(list[:i], list[i+1:]...))
				s.touch()
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Update describes an in-place edit to a placement. Nil fields are left
// unchanged. A non-positive CustomDurationMin clears the override.
type Update struct {
	Start             *time.Time
	CustomDurationMin *int
	Notes             *string
}

// UpdateScheduled applies a manual edit to one placement and cascades the
// resulting shift to the day's successors: every sibling starting at or
// after the new start is repacked back-to-back from the edited placement's
// new end. Placements pushed past the day's end bound are evicted and
// returned; eviction is a deliberate policy, not an error, and callers
// should tell the user which activities were dropped.
//
// Only predecessors can reject the edit: a successor overlap is resolved by
// the cascade, so conflicts are checked against siblings that keep their
// times. A rejected edit mutates nothing.
func (s *Store) UpdateScheduled(id string, upd Update) (evicted []*ScheduledActivity, err error) {
	if s.plan == nil {
		return nil, ErrNoPlan
	}

	sa, day, ok := s.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	newStart := sa.Start
	if upd.Start != nil {
		newStart = *upd.Start
	}
	newCustom := sa.CustomDurationMin
	if upd.CustomDurationMin != nil {
		newCustom = *upd.CustomDurationMin
		if newCustom < 0 {
			newCustom = 0
		}
	}

	duration := newCustom
	if duration == 0 {
		a, _ := s.ResolveActivity(sa)
		duration = a.DurationMin
	}
	newEnd := timeutil.AddMinutes(newStart, duration)

	timingChanged := !newStart.Equal(sa.Start) || newCustom != sa.CustomDurationMin
	if timingChanged {
		var predecessors []*ScheduledActivity
		for _, sib := range s.plan.DayList(day) {
			if sib.ID != sa.ID && sib.Start.Before(newStart) {
				predecessors = append(predecessors, sib)
			}
		}
		if c := CheckConflict(predecessors, sa.ID, newStart, newEnd); c.HasConflict {
			return nil, &ConflictError{Kind: c.Kind, With: c.With}
		}
	}

	sa.Start = newStart
	sa.End = newEnd
	sa.CustomDurationMin = newCustom
	if upd.Notes != nil {
		sa.Notes = *upd.Notes
	}

	if timingChanged {
		evicted = s.cascadeFrom(day, sa)
	}
	s.touch()
	return evicted, nil
}

// cascadeFrom repacks the edited placement's successors, in time order,
// back-to-back from its new end. A placement that no longer fits before the
// day's end bound is evicted together with everything after it. The window
// is anchored to the edited placement's own calendar date so recomputation
// is independent of when it runs.
func (s *Store) cascadeFrom(day Day, edited *ScheduledActivity) []*ScheduledActivity {
	var kept, successors []*ScheduledActivity
	for _, sa := range s.plan.DayList(day) {
		switch {
		case sa.ID == edited.ID:
			kept = append(kept, sa)
		case sa.Start.Before(edited.Start):
			kept = append(kept, sa)
		default:
			successors = append(successors, sa)
		}
	}
	sortByStart(successors)

	_, dayEnd := windowOn(edited.Start, s.plan.TimeBounds.For(day))

	prevEnd := edited.End
	var evicted []*ScheduledActivity
	for _, sa := range successors {
		if len(evicted) > 0 {
			evicted = append(evicted, sa)
			continue
		}
		newEnd := timeutil.AddMinutes(prevEnd, s.EffectiveDuration(sa))
		if newEnd.After(dayEnd) {
			evicted = append(evicted, sa)
			continue
		}
		sa.Start = prevEnd
		sa.End = newEnd
		prevEnd = newEnd
		kept = append(kept, sa)
	}

	sortByStart(kept)
	s.plan.setDayList(day, kept)
	return evicted
}

// ReorderDay applies a new ordering of a day's placements (a drag-and-drop
// result) and recomputes every time back-to-back from the day's bound start.
// Prior start times are ignored except as a duration source: each placement
// keeps customDuration when set, otherwise its prior End-Start span. The day
// is always compacted with no gaps, so reordering cannot create conflicts.
func (s *Store) ReorderDay(day Day, orderedIDs []string) error {
	if s.plan == nil {
		return ErrNoPlan
	}
	if !day.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	current := s.plan.DayList(day)
	if len(orderedIDs) != len(current) {
		return fmt.Errorf("%w: got %d ids for %d activities", ErrOrderMismatch, len(orderedIDs), len(current))
	}
	if len(current) == 0 {
		return nil
	}

	byID := make(map[string]*ScheduledActivity, len(current))
	for _, sa := range current {
		byID[sa.ID] = sa
	}

	sortByStart(current)
	anchor, _ := windowOn(current[0].Start, s.plan.TimeBounds.For(day))

	reordered := make([]*ScheduledActivity, 0, len(orderedIDs))
	cursor := anchor
	for _, id := range orderedIDs {
		sa, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %s", ErrOrderMismatch, id)
		}
		delete(byID, id)

		duration := sa.CustomDurationMin
		if duration <= 0 {
			duration = sa.DurationMin()
		}
		sa.Start = cursor
		sa.End = timeutil.AddMinutes(cursor, duration)
		cursor = sa.End
		reordered = append(reordered, sa)
	}

	s.plan.setDayList(day, reordered)
	s.touch()
	return nil
}

// SetBounds updates a day's placement window. Existing placements are not
// evicted retroactively; bounds apply at placement and cascade time.
func (s *Store) SetBounds(day Day, b Bounds) error {
	if s.plan == nil {
		return ErrNoPlan
	}
	if !day.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if day == Sunday {
		s.plan.TimeBounds.Sunday = b
	} else {
		s.plan.TimeBounds.Saturday = b
	}
	s.touch()
	return nil
}

// SetTheme updates the plan's theme tag.
func (s *Store) SetTheme(theme activity.Theme) error {
	if s.plan == nil {
		return ErrNoPlan
	}
	s.plan.Theme = theme
	s.touch()
	return nil
}

// DayActivities returns the day's placements sorted by start time.
// The slice is a copy; the placements are the live records.
func (s *Store) DayActivities(day Day) []*ScheduledActivity {
	if s.plan == nil {
		return nil
	}
	list := s.plan.DayList(day)
	out := make([]*ScheduledActivity, len(list))
	copy(out, list)
	sortByStart(out)
	return out
}

// Find returns the placement with the given id and the day holding it.
func (s *Store) Find(id string) (*ScheduledActivity, Day, bool) {
	return s.find(id)
}

func (s *Store) find(id string) (*ScheduledActivity, Day, bool) {
	if s.plan == nil {
		return nil, "", false
	}
	for _, d := range Days {
		for _, sa := range s.plan.DayList(d) {
			if sa.ID == id {
				return sa, d, true
			}
		}
	}
	return nil, "", false
}

// TotalDurationMin sums the effective duration of every placement across
// both days, preferring inline snapshots over catalog lookups.
func (s *Store) TotalDurationMin() int {
	if s.plan == nil {
		return 0
	}
	total := 0
	for _, d := range Days {
		for _, sa := range s.plan.DayList(d) {
			total += s.EffectiveDuration(sa)
		}
	}
	return total
}

// DayCapacity reports the day's aggregate free time against its bounds.
func (s *Store) DayCapacity(day Day) Capacity {
	if s.plan == nil {
		return Capacity{}
	}
	return CheckCapacity(s.intervals(day), day, s.plan.TimeBounds.For(day), s.now())
}

// FreeSlots returns the day's unoccupied gaps within its placement window.
// An empty day yields the whole window.
func (s *Store) FreeSlots(day Day) []Interval {
	if s.plan == nil {
		return nil
	}
	bounds := s.plan.TimeBounds.For(day)
	existing := s.intervals(day)

	if len(existing) == 0 {
		start, end := ResolveDay(day, bounds, s.now())
		return []Interval{{Start: start, End: end}}
	}

	sorted := sortedIntervals(existing)
	dayStart, dayEnd := windowOn(sorted[0].Start, bounds)
	return freeSlots(existing, dayStart, dayEnd)
}

func (s *Store) intervals(day Day) []Interval {
	list := s.plan.DayList(day)
	out := make([]Interval, 0, len(list))
	for _, sa := range list {
		out = append(out, sa.Interval())
	}
	return out
}

func sortByStart(list []*ScheduledActivity) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
}
