package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/lmoreno/weekendly/internal/activity"
)

var testBounds = TimeBounds{
	Saturday: Bounds{StartHour: 9, EndHour: 17},
	Sunday:   Bounds{StartHour: 9, EndHour: 17},
}

func testActivity(id string, durationMin int) activity.Activity {
	return activity.Activity{
		ID:          id,
		Name:        id,
		Category:    activity.CategoryOutdoor,
		DurationMin: durationMin,
		Icon:        "x",
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	catalog := activity.NewCatalog([]activity.Activity{
		testActivity("hike", 60),
		testActivity("coffee", 30),
		testActivity("museum", 90),
	})
	s := NewStore(catalog, WithClock(func() time.Time { return testNow }))
	s.NewPlan("Test Weekend", "", testBounds)
	return s
}

func TestNewPlanDefaults(t *testing.T) {
	catalog := activity.Default()
	s := NewStore(catalog, WithClock(func() time.Time { return testNow }))

	p := s.NewPlan("", "", testBounds)
	if p.Name != DefaultPlanName {
		t.Errorf("Name = %q, want %q", p.Name, DefaultPlanName)
	}
	if p.ID == "" {
		t.Error("expected a generated plan id")
	}
	if !p.CreatedAt.Equal(testNow) || !p.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps = %v/%v, want %v", p.CreatedAt, p.UpdatedAt, testNow)
	}
	if p.ActivityCount() != 0 {
		t.Errorf("ActivityCount = %d, want 0", p.ActivityCount())
	}
}

func TestStoreRequiresPlan(t *testing.T) {
	s := NewStore(activity.Default(), WithClock(func() time.Time { return testNow }))

	if _, err := s.AddAuto(testActivity("hike", 60), Saturday); !errors.Is(err, ErrNoPlan) {
		t.Errorf("AddAuto error = %v, want ErrNoPlan", err)
	}
	if err := s.RemoveScheduled("x"); !errors.Is(err, ErrNoPlan) {
		t.Errorf("RemoveScheduled error = %v, want ErrNoPlan", err)
	}
	if err := s.ReorderDay(Saturday, nil); !errors.Is(err, ErrNoPlan) {
		t.Errorf("ReorderDay error = %v, want ErrNoPlan", err)
	}
}

func TestAddAutoEarliestFit(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddAuto(testActivity("hike", 60), Saturday)
	if err != nil {
		t.Fatalf("first AddAuto: %v", err)
	}
	if !first.Start.Equal(satTime(9, 0)) {
		t.Errorf("first start = %v, want 09:00", first.Start)
	}

	second, err := s.AddAuto(testActivity("coffee", 30), Saturday)
	if err != nil {
		t.Fatalf("second AddAuto: %v", err)
	}
	if !second.Start.Equal(satTime(10, 0)) {
		t.Errorf("second start = %v, want 10:00", second.Start)
	}

	if err := s.Plan().Validate(); err != nil {
		t.Errorf("plan invariant broken: %v", err)
	}
}

func TestAddAutoFullDay(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddToSchedule(testActivity("marathon", 480), Saturday, satTime(9, 0)); err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}

	_, err := s.AddAuto(testActivity("coffee", 30), Saturday)
	if !errors.Is(err, ErrNoCapacity) {
		t.Errorf("error = %v, want ErrNoCapacity", err)
	}
}

func TestAddAutoFragmentedDay(t *testing.T) {
	s := newTestStore(t)

	// 30-minute gaps everywhere, 120 free minutes in total.
	for h := 9; h < 17; h += 2 {
		if _, err := s.AddToSchedule(testActivity("block", 90), Saturday, satTime(h, 0)); err != nil {
			t.Fatalf("AddToSchedule at %d:00: %v", h, err)
		}
	}

	_, err := s.AddAuto(testActivity("hike", 60), Saturday)
	if !errors.Is(err, ErrNoSlot) {
		t.Errorf("error = %v, want ErrNoSlot when capacity exists but no gap fits", err)
	}
}

func TestAddToScheduleConflict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0)); err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}

	_, err := s.AddToSchedule(testActivity("coffee", 60), Saturday, satTime(9, 30))
	if !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("error = %v, want ErrTimeConflict", err)
	}
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if ce.Kind != ConflictStart {
		t.Errorf("Kind = %q, want %q", ce.Kind, ConflictStart)
	}
}

func TestAddToScheduleSnapshotsLocationActivities(t *testing.T) {
	s := newTestStore(t)

	place := testActivity("loc-cafe", 45)
	place.LocationBased = true
	place.Location = &activity.Location{Name: "Cafe Central", Lat: 40.4, Lng: -3.7}

	sa, err := s.AddToSchedule(place, Saturday, satTime(9, 0))
	if err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}
	if sa.ActivityData == nil {
		t.Fatal("expected inline snapshot for location-based activity")
	}
	if sa.ActivityData.Location.Name != "Cafe Central" {
		t.Errorf("snapshot location = %q", sa.ActivityData.Location.Name)
	}

	catalog, err2 := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(11, 0))
	if err2 != nil {
		t.Fatalf("AddToSchedule: %v", err2)
	}
	if catalog.ActivityData != nil {
		t.Error("catalog activities should not carry a snapshot")
	}
}

func TestReorderDay(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	b, _ := s.AddToSchedule(testActivity("coffee", 30), Saturday, satTime(10, 0))
	c, _ := s.AddToSchedule(testActivity("museum", 90), Saturday, satTime(10, 30))

	if err := s.ReorderDay(Saturday, []string{c.ID, b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderDay: %v", err)
	}

	// 90/30/60 minutes back-to-back from the 9:00 bound.
	got := s.DayActivities(Saturday)
	wantStarts := []time.Time{satTime(9, 0), satTime(10, 30), satTime(11, 0)}
	wantIDs := []string{c.ID, b.ID, a.ID}
	for i, sa := range got {
		if sa.ID != wantIDs[i] {
			t.Errorf("position %d = %s, want %s", i, sa.ID, wantIDs[i])
		}
		if !sa.Start.Equal(wantStarts[i]) {
			t.Errorf("position %d start = %v, want %v", i, sa.Start, wantStarts[i])
		}
	}

	if err := s.Plan().Validate(); err != nil {
		t.Errorf("plan invariant broken: %v", err)
	}
}

func TestReorderDayCompactsGaps(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	b, _ := s.AddToSchedule(testActivity("coffee", 30), Saturday, satTime(14, 0))

	if err := s.ReorderDay(Saturday, []string{a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderDay: %v", err)
	}

	got := s.DayActivities(Saturday)
	if !got[1].Start.Equal(satTime(10, 0)) {
		t.Errorf("gap not compacted: second start = %v, want 10:00", got[1].Start)
	}
}

func TestReorderDayPrefersCustomDuration(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	custom := 120
	if _, err := s.UpdateScheduled(a.ID, Update{CustomDurationMin: &custom}); err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	b, _ := s.AddToSchedule(testActivity("coffee", 30), Saturday, satTime(12, 0))

	if err := s.ReorderDay(Saturday, []string{a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderDay: %v", err)
	}

	got := s.DayActivities(Saturday)
	if !got[1].Start.Equal(satTime(11, 0)) {
		t.Errorf("second start = %v, want 11:00 (after 120m custom duration)", got[1].Start)
	}
}

func TestReorderDayMismatch(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))

	tests := []struct {
		name string
		ids  []string
	}{
		{"too few ids", nil},
		{"unknown id", []string{"nope"}},
		{"too many ids", []string{a.ID, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.ReorderDay(Saturday, tt.ids); !errors.Is(err, ErrOrderMismatch) {
				t.Errorf("error = %v, want ErrOrderMismatch", err)
			}
		})
	}
}

func TestUpdateScheduledCascade(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	b, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(10, 0))

	custom := 90
	evicted, err := s.UpdateScheduled(a.ID, Update{CustomDurationMin: &custom})
	if err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	if len(evicted) != 0 {
		t.Fatalf("evicted %d activities, want 0", len(evicted))
	}

	got, _, _ := s.Find(b.ID)
	if !got.Start.Equal(satTime(10, 30)) {
		t.Errorf("successor start = %v, want 10:30", got.Start)
	}
	if !got.End.Equal(satTime(11, 30)) {
		t.Errorf("successor end = %v, want 11:30", got.End)
	}

	if err := s.Plan().Validate(); err != nil {
		t.Errorf("plan invariant broken: %v", err)
	}
}

func TestUpdateScheduledCascadeEvicts(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetBounds(Saturday, Bounds{StartHour: 9, EndHour: 11}); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	b, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(10, 0))

	custom := 90
	evicted, err := s.UpdateScheduled(a.ID, Update{CustomDurationMin: &custom})
	if err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	if len(evicted) != 1 || evicted[0].ID != b.ID {
		t.Fatalf("evicted = %v, want just %s", evicted, b.ID)
	}

	if _, _, ok := s.Find(b.ID); ok {
		t.Error("evicted activity still present in the plan")
	}
	if got, _, _ := s.Find(a.ID); !got.End.Equal(satTime(10, 30)) {
		t.Errorf("edited end = %v, want 10:30", got.End)
	}
}

func TestUpdateScheduledStartShift(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	b, _ := s.AddToSchedule(testActivity("coffee", 30), Saturday, satTime(10, 0))

	newStart := satTime(12, 0)
	evicted, err := s.UpdateScheduled(a.ID, Update{Start: &newStart})
	if err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	if len(evicted) != 0 {
		t.Fatalf("evicted %d activities, want 0", len(evicted))
	}

	// b was before a's new position, so the cascade does not touch it.
	got, _, _ := s.Find(b.ID)
	if !got.Start.Equal(satTime(10, 0)) {
		t.Errorf("earlier activity moved: start = %v, want 10:00", got.Start)
	}
}

func TestUpdateScheduledConflictRejected(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	if _, err := s.AddToSchedule(testActivity("coffee", 30), Saturday, satTime(11, 0)); err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}

	newStart := satTime(11, 15)
	_, err := s.UpdateScheduled(a.ID, Update{Start: &newStart})
	if !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("error = %v, want ErrTimeConflict", err)
	}

	// Rejected atomically: nothing moved.
	got, _, _ := s.Find(a.ID)
	if !got.Start.Equal(satTime(9, 0)) {
		t.Errorf("rejected edit mutated the activity: start = %v", got.Start)
	}
}

func TestUpdateScheduledNotes(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	notes := "bring water"
	if _, err := s.UpdateScheduled(a.ID, Update{Notes: &notes}); err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}

	got, _, _ := s.Find(a.ID)
	if got.Notes != "bring water" {
		t.Errorf("Notes = %q", got.Notes)
	}
	if !got.Start.Equal(satTime(9, 0)) || !got.End.Equal(satTime(10, 0)) {
		t.Error("notes-only edit changed the timing")
	}
}

func TestRemoveScheduled(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	if err := s.RemoveScheduled(a.ID); err != nil {
		t.Fatalf("RemoveScheduled: %v", err)
	}
	if s.Plan().ActivityCount() != 0 {
		t.Error("activity still present after removal")
	}

	if err := s.RemoveScheduled("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestTotalDurationMin(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(9, 0))
	if _, err := s.AddToSchedule(testActivity("coffee", 30), Sunday, satTime(9, 0).AddDate(0, 0, 1)); err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}

	if got := s.TotalDurationMin(); got != 90 {
		t.Errorf("TotalDurationMin = %d, want 90", got)
	}

	custom := 120
	if _, err := s.UpdateScheduled(a.ID, Update{CustomDurationMin: &custom}); err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	if got := s.TotalDurationMin(); got != 150 {
		t.Errorf("TotalDurationMin after override = %d, want 150", got)
	}
}

func TestResolveActivity(t *testing.T) {
	s := newTestStore(t)

	t.Run("snapshot wins over catalog", func(t *testing.T) {
		snap := testActivity("hike", 45)
		sa := &ScheduledActivity{ActivityID: "hike", ActivityData: &snap}
		got, ok := s.ResolveActivity(sa)
		if !ok || got.DurationMin != 45 {
			t.Errorf("got %d min, ok=%v; want snapshot's 45 min", got.DurationMin, ok)
		}
	})

	t.Run("catalog fallback", func(t *testing.T) {
		sa := &ScheduledActivity{ActivityID: "museum"}
		got, ok := s.ResolveActivity(sa)
		if !ok || got.DurationMin != 90 {
			t.Errorf("got %d min, ok=%v; want catalog's 90 min", got.DurationMin, ok)
		}
	})

	t.Run("unknown id yields visible placeholder", func(t *testing.T) {
		sa := &ScheduledActivity{ActivityID: "ghost"}
		got, ok := s.ResolveActivity(sa)
		if ok {
			t.Error("unresolved activity reported ok=true")
		}
		if got.Name != "Unknown Activity" || got.DurationMin != 60 {
			t.Errorf("placeholder = %q/%d min", got.Name, got.DurationMin)
		}
	})
}

func TestSetBoundsDoesNotEvict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(16, 0)); err != nil {
		t.Fatalf("AddToSchedule: %v", err)
	}
	if err := s.SetBounds(Saturday, Bounds{StartHour: 9, EndHour: 12}); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}
	if s.Plan().ActivityCount() != 1 {
		t.Error("narrowing bounds evicted an existing activity")
	}

	if err := s.SetBounds(Saturday, Bounds{StartHour: 12, EndHour: 9}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("error = %v, want ErrInvalidBounds", err)
	}
}

func TestNoOverlapAfterMixedOperations(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddAuto(testActivity("hike", 60), Saturday)
	b, _ := s.AddAuto(testActivity("coffee", 30), Saturday)
	c, _ := s.AddAuto(testActivity("museum", 90), Saturday)

	if err := s.ReorderDay(Saturday, []string{b.ID, c.ID, a.ID}); err != nil {
		t.Fatalf("ReorderDay: %v", err)
	}
	custom := 75
	if _, err := s.UpdateScheduled(b.ID, Update{CustomDurationMin: &custom}); err != nil {
		t.Fatalf("UpdateScheduled: %v", err)
	}
	if err := s.RemoveScheduled(c.ID); err != nil {
		t.Fatalf("RemoveScheduled: %v", err)
	}
	if _, err := s.AddAuto(testActivity("coffee", 30), Saturday); err != nil {
		t.Fatalf("AddAuto: %v", err)
	}

	if err := s.Plan().Validate(); err != nil {
		t.Errorf("plan invariant broken: %v", err)
	}
}

func TestFreeSlotsOnStore(t *testing.T) {
	s := newTestStore(t)

	t.Run("empty day is one whole-window slot", func(t *testing.T) {
		slots := s.FreeSlots(Saturday)
		if len(slots) != 1 {
			t.Fatalf("got %d slots, want 1", len(slots))
		}
		if !slots[0].Start.Equal(satTime(9, 0)) || !slots[0].End.Equal(satTime(17, 0)) {
			t.Errorf("slot = %v-%v", slots[0].Start, slots[0].End)
		}
	})

	t.Run("gaps around a placement", func(t *testing.T) {
		if _, err := s.AddToSchedule(testActivity("hike", 60), Saturday, satTime(11, 0)); err != nil {
			t.Fatalf("AddToSchedule: %v", err)
		}
		slots := s.FreeSlots(Saturday)
		if len(slots) != 2 {
			t.Fatalf("got %d slots, want 2", len(slots))
		}
		if !slots[0].End.Equal(satTime(11, 0)) || !slots[1].Start.Equal(satTime(12, 0)) {
			t.Errorf("slots = %v", slots)
		}
	})
}
