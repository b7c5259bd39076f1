package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title      lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Row        lipgloss.Style
	RowCursor  lipgloss.Style
	Time       lipgloss.Style
	Muted      lipgloss.Style
	Warning    lipgloss.Style
	Success    lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	PickBorder lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Bg)).
			Background(lipgloss.Color(t.Accent)).
			Padding(0, 2),
		TabIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Background(lipgloss.Color(t.BgHighlight)).
			Padding(0, 2),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)).
			Padding(0, 1),
		RowCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)).
			Background(lipgloss.Color(t.BgSelection)).
			Bold(true).
			Padding(0, 1),
		Time: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)).
			Padding(0, 1),
		PickBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1),
	}
}
