// Package tui provides the interactive terminal schedule browser.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/weekendly/internal/activity"
	"github.com/lmoreno/weekendly/internal/config"
	"github.com/lmoreno/weekendly/internal/plan"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePick        // Choosing a catalog activity to add
	ModeConfirmDelete
)

// statusLevel selects the style a status message renders with.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusOK
)

// Model is the main TUI model.
type Model struct {
	store *plan.Store
	repo  plan.Repository

	theme  Theme
	styles *Styles

	day    plan.Day
	cursor int
	mode   Mode
	dirty  bool

	// Pick mode state.
	filter     textinput.Model
	pickCursor int
	picks      []activity.Activity

	// Delete confirmation target.
	deleteID string

	statusMsg   string
	statusLvl   statusLevel
	statusUntil time.Time

	width  int
	height int
}

// New creates the TUI model. The store must already hold a plan.
func New(store *plan.Store, repo plan.Repository, cfg *config.Config) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter activities"
	filter.CharLimit = 64
	filter.Width = 32

	t := LoadTheme(cfg.UI.Theme)

	m := &Model{
		store:  store,
		repo:   repo,
		theme:  t,
		styles: NewStyles(t),
		day:    plan.Saturday,
		filter: filter,
	}
	m.picks = m.filteredCatalog()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run loads the current plan (creating one when none is saved) and
// starts the interactive schedule browser. The plan is persisted on
// quit when anything changed.
func Run(store *plan.Store, repo plan.Repository, cfg *config.Config) error {
	ctx := context.Background()

	if !store.HasPlan() {
		p, err := repo.LoadLatest(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			p = store.NewPlan("", "", cfg.TimeBounds())
			if err := repo.SavePlan(ctx, p); err != nil {
				return err
			}
		} else {
			store.SetPlan(p)
		}
	}

	model := New(store, repo, cfg)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.dirty {
		return repo.SavePlan(ctx, store.Plan())
	}
	return nil
}

// activities returns the current day's placements in start order.
func (m *Model) activities() []*plan.ScheduledActivity {
	return m.store.DayActivities(m.day)
}

// clampCursor keeps the cursor inside the current day's list.
func (m *Model) clampCursor() {
	n := len(m.activities())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(lvl statusLevel, msg string) {
	m.statusMsg = msg
	m.statusLvl = lvl
	m.statusUntil = time.Now().Add(5 * time.Second)
}

// filteredCatalog returns catalog activities whose name or category
// contains the filter text.
func (m *Model) filteredCatalog() []activity.Activity {
	query := m.filter.Value()
	all := m.store.Catalog().All()
	if query == "" {
		return all
	}
	var out []activity.Activity
	for _, act := range all {
		if containsFold(act.Name, query) || containsFold(string(act.Category), query) {
			out = append(out, act)
		}
	}
	return out
}
