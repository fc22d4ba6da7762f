package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI. The paper palette drives the preview
// pane so it reads like the bill that export produces.
type Theme struct {
	Name string

	Background string
	Text       string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string

	PaperBg    string
	PaperText  string
	PaperMuted string
}

var themes = []Theme{
	{
		Name:       "paper",
		Background: "#1E1E2E",
		Text:       "#CDD6F4",
		Muted:      "#7F849C",
		Accent:     "#89B4FA",
		Success:    "#A6E3A1",
		Warning:    "#F9E2AF",
		Danger:     "#F38BA8",
		PaperBg:    "#F8F8F2",
		PaperText:  "#24242E",
		PaperMuted: "#6C6F85",
	},
	{
		Name:       "ledger",
		Background: "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Accent:     "#8BE9FD",
		Success:    "#50FA7B",
		Warning:    "#F1FA8C",
		Danger:     "#FF5555",
		PaperBg:    "#F1EADB",
		PaperText:  "#3B3526",
		PaperMuted: "#857F6C",
	},
}

// themeByName returns the named theme, defaulting to the first one.
func themeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// nextTheme cycles to the theme after the named one.
func nextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Badge   lipgloss.Style

	Paper      lipgloss.Style
	PaperMuted lipgloss.Style
	PaperBold  lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1).
			Bold(true),

		Paper: lipgloss.NewStyle().
			Background(lipgloss.Color(t.PaperBg)).
			Foreground(lipgloss.Color(t.PaperText)).
			Padding(1, 3),

		PaperMuted: lipgloss.NewStyle().
			Background(lipgloss.Color(t.PaperBg)).
			Foreground(lipgloss.Color(t.PaperMuted)),

		PaperBold: lipgloss.NewStyle().
			Background(lipgloss.Color(t.PaperBg)).
			Foreground(lipgloss.Color(t.PaperText)).
			Bold(true),
	}
}
