package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModePick:
			return m.updatePick(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "h", "l", "left", "right":
		if m.day == plan.Saturday {
			m.day = plan.Sunday
		} else {
			m.day = plan.Saturday
		}
		m.cursor = 0
		return m, nil

	case "j", "down":
		if m.cursor < len(m.activities())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "J", "shift+down":
		return m.swap(m.cursor, m.cursor+1), nil

	case "K", "shift+up":
		return m.swap(m.cursor-1, m.cursor), nil

	case "a":
		m.mode = ModePick
		m.pickCursor = 0
		m.filter.SetValue("")
		m.filter.Focus()
		m.picks = m.filteredCatalog()
		return m, nil

	case "d", "x":
		list := m.activities()
		if m.cursor < len(list) {
			m.mode = ModeConfirmDelete
			m.deleteID = list[m.cursor].ID
		}
		return m, nil

	case "s":
		if err := m.repo.SavePlan(context.Background(), m.store.Plan()); err != nil {
			m.setStatus(statusWarn, fmt.Sprintf("save failed: %v", err))
			return m, nil
		}
		m.dirty = false
		m.setStatus(statusOK, "saved")
		return m, nil
	}
	return m, nil
}

// swap reorders the current day so the items at positions i and j
// trade places, then recompacts the day.
func (m Model) swap(i, j int) Model {
	list := m.activities()
	if i < 0 || j >= len(list) || i >= j {
		return m
	}
	ids := make([]string, len(list))
	for n, sa := range list {
		ids[n] = sa.ID
	}
	ids[i], ids[j] = ids[j], ids[i]

	if err := m.store.ReorderDay(m.day, ids); err != nil {
		m.setStatus(statusWarn, err.Error())
		return m
	}
	m.dirty = true
	if m.cursor == i {
		m.cursor = j
	} else {
		m.cursor = i
	}
	return m
}

func (m Model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = ModeNormal
		m.filter.Blur()
		return m, nil

	case "down", "ctrl+n":
		if m.pickCursor < len(m.picks)-1 {
			m.pickCursor++
		}
		return m, nil

	case "up", "ctrl+p":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return m, nil

	case "enter":
		if m.pickCursor >= len(m.picks) {
			return m, nil
		}
		act := m.picks[m.pickCursor]
		sa, err := m.store.AddAuto(act, m.day)
		if err != nil {
			m.setStatus(statusWarn, scheduleErrText(err))
			return m, nil
		}
		m.dirty = true
		m.mode = ModeNormal
		m.filter.Blur()
		m.setStatus(statusOK, fmt.Sprintf("added %s at %s",
			act.Name, timeutil.FormatClock(sa.Start)))
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.picks = m.filteredCatalog()
	if m.pickCursor >= len(m.picks) {
		m.pickCursor = 0
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if err := m.store.RemoveScheduled(m.deleteID); err != nil {
			m.setStatus(statusWarn, err.Error())
		} else {
			m.dirty = true
			m.setStatus(statusInfo, "removed")
		}
		m.mode = ModeNormal
		m.deleteID = ""
		m.clampCursor()
		return m, nil

	case "n", "esc":
		m.mode = ModeNormal
		m.deleteID = ""
		return m, nil
	}
	return m, nil
}

// scheduleErrText turns scheduling errors into a short status line.
func scheduleErrText(err error) string {
	var conflict *plan.ConflictError
	if errors.As(err, &conflict) {
		return conflict.Kind.Message()
	}
	if errors.Is(err, plan.ErrNoCapacity) {
		return "day is full"
	}
	if errors.Is(err, plan.ErrNoSlot) {
		return "no free slot is long enough"
	}
	return err.Error()
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
