package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmoreno/weekendly/internal/plan"
	"github.com/lmoreno/weekendly/internal/timeutil"
)

const maxPickRows = 12

// View renders the schedule browser.
func (m Model) View() string {
	if !m.store.HasPlan() {
		return "No plan loaded.\n"
	}

	var b strings.Builder
	p := m.store.Plan()

	title := p.Name
	if p.Theme != "" {
		title += " (" + string(p.Theme) + ")"
	}
	if m.dirty {
		title += " *"
	}
	b.WriteString(m.styles.Title.Render("🌟 " + title))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderDay())

	if m.mode == ModePick {
		b.WriteString("\n")
		b.WriteString(m.renderPicker())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, d := range plan.Days {
		label := d.Title()
		if d == m.day {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabIdle.Render(label))
		}
	}
	return " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], " ", tabs[1])
}

func (m Model) renderDay() string {
	var b strings.Builder

	bounds := m.store.Plan().TimeBounds.For(m.day)
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(" window %02d:00-%02d:00", bounds.StartHour, bounds.EndHour)))
	b.WriteString("\n")

	list := m.activities()
	if len(list) == 0 {
		b.WriteString(m.styles.Muted.Render(" (nothing planned, press a to add)"))
		b.WriteString("\n")
	}
	for i, sa := range list {
		act, ok := m.store.ResolveActivity(sa)
		name := act.Name
		if !ok {
			name = m.styles.Warning.Render(name)
		}
		line := fmt.Sprintf("%s  %s %s  %s",
			m.styles.Time.Render(timeutil.FormatClockRange(sa.Start, sa.End)),
			act.Icon, name,
			m.styles.Muted.Render(timeutil.FormatDuration(m.store.EffectiveDuration(sa))))
		if sa.Notes != "" {
			line += m.styles.Muted.Render("  · " + sa.Notes)
		}
		if i == m.cursor && m.mode != ModePick {
			b.WriteString(m.styles.RowCursor.Render("› " + line))
		} else {
			b.WriteString(m.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	cap := m.store.DayCapacity(m.day)
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(" %s used, %s free",
		timeutil.FormatDuration(cap.UsedMinutes), timeutil.FormatDuration(cap.AvailableMinutes))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if len(m.picks) == 0 {
		b.WriteString(m.styles.Muted.Render("no matching activities"))
	}
	for i, act := range m.picks {
		if i >= maxPickRows {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("… %d more", len(m.picks)-maxPickRows)))
			break
		}
		line := fmt.Sprintf("%s %s  %s", act.Icon, act.Name,
			m.styles.Muted.Render(timeutil.FormatDuration(act.DurationMin)))
		if i == m.pickCursor {
			b.WriteString(m.styles.RowCursor.Render("› " + line))
		} else {
			b.WriteString(m.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return m.styles.PickBorder.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" || time.Now().After(m.statusUntil) {
		return ""
	}
	switch m.statusLvl {
	case statusWarn:
		return m.styles.Warning.Render(" " + m.statusMsg)
	case statusOK:
		return m.styles.Success.Render(" " + m.statusMsg)
	default:
		return m.styles.StatusBar.Render(m.statusMsg)
	}
}

func (m Model) renderHelp() string {
	switch m.mode {
	case ModePick:
		return m.styles.Help.Render("↑/↓ select · enter add · esc cancel")
	case ModeConfirmDelete:
		return m.styles.Warning.Render(" remove this activity? y/n")
	default:
		return m.styles.Help.Render("tab day · j/k move · J/K reorder · a add · d remove · s save · q quit")
	}
}
