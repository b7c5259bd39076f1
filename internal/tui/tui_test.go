package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/config"
	"github.com/lmoreno/weekendly/internal/plan"
)

var testNow = time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := plan.NewStore(activity.Default(), plan.WithClock(func() time.Time { return testNow }))
	cfg := config.Default()
	store.NewPlan("Test Weekend", "", cfg.TimeBounds())
	return *New(store, nil, cfg)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func TestTabSwitchesDay(t *testing.T) {
	m := newTestModel(t)
	if m.day != plan.Saturday {
		t.Fatalf("initial day = %v, want saturday", m.day)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.day != plan.Sunday {
		t.Errorf("day after tab = %v, want sunday", m.day)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.day != plan.Saturday {
		t.Errorf("day after second tab = %v, want saturday", m.day)
	}
}

func TestPickAddsToEarliestSlot(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, key('a'))
	if m.mode != ModePick {
		t.Fatalf("mode after 'a' = %v, want ModePick", m.mode)
	}
	if len(m.picks) == 0 {
		t.Fatal("picker has no catalog activities")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeNormal {
		t.Fatalf("mode after enter = %v, want ModeNormal", m.mode)
	}
	if !m.dirty {
		t.Error("adding an activity should mark the model dirty")
	}

	list := m.activities()
	if len(list) != 1 {
		t.Fatalf("day has %d activities, want 1", len(list))
	}
	bounds := m.store.Plan().TimeBounds.Saturday
	if got := list[0].Start.Hour(); got != bounds.StartHour {
		t.Errorf("first activity starts at hour %d, want %d", got, bounds.StartHour)
	}
}

func TestPickFilterNarrowsCatalog(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('a'))

	total := len(m.picks)
	for _, r := range "hik" {
		m = press(t, m, key(r))
	}
	if len(m.picks) == 0 || len(m.picks) >= total {
		t.Errorf("filter left %d of %d activities, want a strict non-empty subset", len(m.picks), total)
	}
}

func TestSwapReordersDay(t *testing.T) {
	m := newTestModel(t)

	// Schedule two different activities back to back.
	for i := 0; i < 2; i++ {
		m = press(t, m, key('a'))
		if i == 1 {
			m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}

	before := m.activities()
	if len(before) != 2 {
		t.Fatalf("day has %d activities, want 2", len(before))
	}
	firstID, secondID := before[0].ID, before[1].ID
	// DayActivities returns live pointers, so take the anchor by value
	// before the reorder mutates it.
	anchor := before[0].Start

	m = press(t, m, key('J'))

	after := m.activities()
	if after[0].ID != secondID || after[1].ID != firstID {
		t.Errorf("order after J = [%s %s], want [%s %s]",
			after[0].ID, after[1].ID, secondID, firstID)
	}
	if !after[0].Start.Equal(anchor) {
		t.Errorf("reordered day should stay anchored at %v, got %v", anchor, after[0].Start)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (follows the moved item)", m.cursor)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, key('a'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, key('d'))
	if m.mode != ModeConfirmDelete {
		t.Fatalf("mode after 'd' = %v, want ModeConfirmDelete", m.mode)
	}

	m = press(t, m, key('n'))
	if got := len(m.activities()); got != 1 {
		t.Fatalf("activity removed despite 'n', have %d", got)
	}

	m = press(t, m, key('d'))
	m = press(t, m, key('y'))
	if got := len(m.activities()); got != 0 {
		t.Errorf("day has %d activities after confirmed delete, want 0", got)
	}
}

func TestScheduleErrText(t *testing.T) {
	if got := scheduleErrText(plan.ErrNoCapacity); got != "day is full" {
		t.Errorf("ErrNoCapacity text = %q", got)
	}
	if got := scheduleErrText(plan.ErrNoSlot); got != "no free slot is long enough" {
		t.Errorf("ErrNoSlot text = %q", got)
	}
}

func TestLoadThemeFallsBack(t *testing.T) {
	if got := LoadTheme("not-a-theme").Name; got != "frappe" {
		t.Errorf("fallback theme = %q, want frappe", got)
	}
	if got := LoadTheme("Latte").Name; got != "latte" {
		t.Errorf("LoadTheme should be case-insensitive, got %q", got)
	}
}
