package tui

import (
	"sort"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Countdown lipgloss.Style
	Inhale    lipgloss.Style
	Hold      lipgloss.Style
	Exhale    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	BarFull   string
	BarEmpty  string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 2),
		Inhale:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Hold:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Exhale:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		BarFull:   "#5A56E0",
		BarEmpty:  "#3C3C3C",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                              // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 2),
		Inhale:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		Hold:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Exhale:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		BarFull:   "#BD93F9",
		BarEmpty:  "#44475A",
	},
}

// ResolveTheme returns the named theme, falling back to default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames lists the available themes in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PhaseStyle picks the color used for the phase label and countdown.
func (t Theme) PhaseStyle(p breath.Phase) lipgloss.Style {
	switch p {
	case breath.Inhale:
		return t.Inhale
	case breath.Exhale:
		return t.Exhale
	}
	return t.Hold
}
