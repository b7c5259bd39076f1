package tui

import "strings"

// Theme holds the colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string
	BgHighlight string // activity rows
	BgSelection string // cursor row
	Fg          string
	FgMuted     string
	Accent      string // titles, active day tab
	Warning     string // eviction and conflict notices
	Success     string // save confirmations
}

var themes = map[string]Theme{
	"mocha": {
		Name: "mocha", Bg: "#1e1e2e", BgHighlight: "#313244", BgSelection: "#45475a",
		Fg: "#cdd6f4", FgMuted: "#a6adc8", Accent: "#cba6f7", Warning: "#f38ba8", Success: "#a6e3a1",
	},
	"macchiato": {
		Name: "macchiato", Bg: "#24273a", BgHighlight: "#363a4f", BgSelection: "#494d64",
		Fg: "#cad3f5", FgMuted: "#a5adcb", Accent: "#c6a0f6", Warning: "#ed8796", Success: "#a6da95",
	},
	"frappe": {
		Name: "frappe", Bg: "#303446", BgHighlight: "#414559", BgSelection: "#51576d",
		Fg: "#c6d0f5", FgMuted: "#a5adce", Accent: "#ca9ee6", Warning: "#e78284", Success: "#a6d189",
	},
	"latte": {
		Name: "latte", Bg: "#eff1f5", BgHighlight: "#ccd0da", BgSelection: "#bcc0cc",
		Fg: "#4c4f69", FgMuted: "#6c6f85", Accent: "#8839ef", Warning: "#d20f39", Success: "#40a02b",
	},
}

// LoadTheme returns the named theme, falling back to frappe for
// unknown or empty names.
func LoadTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return themes["frappe"]
}

// AvailableThemes lists the theme names accepted in the config.
func AvailableThemes() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}
