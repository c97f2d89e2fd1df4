package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m BreathModel) renderHistory() string {
	if !m.history.loaded {
		return m.theme.Dim.Render("Loading history...")
	}
	if len(m.history.sessions) == 0 && len(m.history.stats) == 0 {
		return m.theme.Dim.Render("No sessions yet. Breathe a little and come back.")
	}

	var total models.TechniqueStats
	for _, s := range m.history.stats {
		total.Sessions += s.Sessions
		total.TotalSeconds += s.TotalSeconds
		total.TotalCycles += s.TotalCycles
	}

	var b strings.Builder
	b.WriteString(m.theme.Highlight.Render(fmt.Sprintf("%s · %s · %s",
		util.Plural(total.Sessions, "session", "sessions"),
		util.FormatDuration(total.Total()),
		util.Plural(total.TotalCycles, "cycle", "cycles"))))
	b.WriteString("\n\n")

	for _, s := range m.history.stats {
		b.WriteString(fmt.Sprintf("%-*s %6s  %s\n",
			config.MaxTechniqueNameWidth,
			ansi.Truncate(s.TechniqueName, config.MaxTechniqueNameWidth, config.TruncationSuffix),
			util.FormatDuration(s.Total()),
			m.theme.Dim.Render(util.Plural(s.Sessions, "session", "sessions"))))
	}

	if len(m.history.sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render("Recent"))
		b.WriteString("\n")
		rows := m.history.sessions
		if len(rows) > config.MaxVisibleSessions {
			rows = rows[:config.MaxVisibleSessions]
		}
		lines := make([]string, 0, len(rows))
		for _, s := range rows {
			lines = append(lines, m.renderSessionRow(s))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, lines...))
		if extra := len(m.history.sessions) - len(rows); extra > 0 {
			b.WriteString("\n")
			b.WriteString(m.theme.Dim.Render(fmt.Sprintf("... %d more", extra)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BreathModel) renderSessionRow(s models.BreathSession) string {
	name := ansi.Truncate(s.TechniqueName, config.MaxTechniqueNameWidth, config.TruncationSuffix)
	row := fmt.Sprintf("%s  %-*s %6s  %s",
		s.StartedAt.Local().Format("Jan 02 15:04"),
		config.MaxTechniqueNameWidth, name,
		util.FormatClock(s.Duration()),
		util.Plural(s.Cycles, "cycle", "cycles"))
	if s.Status != models.StatusPaused {
		row += "  " + m.theme.Dim.Render(string(s.Status))
	}
	return row
}
