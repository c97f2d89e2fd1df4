package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// indicatorLevel maps a state to the fill of the breathing indicator: it
// grows through Inhale, stays full while holding in, shrinks through Exhale
// and stays empty while holding out.
func indicatorLevel(s breath.State) float64 {
	if !s.Running {
		return 0
	}
	d := float64(s.PhaseDuration())
	if d <= 0 {
		return 0
	}
	r := float64(s.Remaining)
	switch s.Phase {
	case breath.Inhale:
		return util.ClampFloat((d - r + 1) / d)
	case breath.HoldAfterInhale:
		return 1
	case breath.Exhale:
		return util.ClampFloat((r - 1) / d)
	}
	return 0
}

func (m BreathModel) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m BreathModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.screen == ScreenHistory {
		b.WriteString(m.renderHistory())
	} else {
		b.WriteString(m.renderBreathing())
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m BreathModel) renderHeader() string {
	title := m.theme.Header.Render(config.AppName)
	if m.screen == ScreenHistory {
		return title + "  " + m.theme.Dim.Render("history · v"+AppVersion)
	}
	if m.compact() {
		return title + "  " + m.theme.ActiveTab.Render(techniqueLabel(m.state.Technique))
	}
	tabs := make([]string, 0, m.registry.Len())
	for i, t := range m.registry.List() {
		label := techniqueLabel(t)
		if i < 9 {
			label = strconv.Itoa(i+1) + " " + label
		}
		if t.ID == m.state.Technique.ID {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func techniqueLabel(t breath.Technique) string {
	return ansi.Truncate(t.Name, config.MaxTechniqueNameWidth, config.TruncationSuffix)
}

func (m BreathModel) renderBreathing() string {
	s := m.state
	style := m.theme.PhaseStyle(s.Phase)

	label := strings.ToUpper(s.Phase.String())
	if !s.Running {
		label = "READY"
		style = m.theme.Dim
	}
	countdown := m.theme.Countdown.Inherit(style).Render(strconv.Itoa(s.Remaining))

	lines := []string{
		style.Render(label) + "  " + countdown,
		"",
		m.progress.ViewAs(indicatorLevel(s)),
		"",
		m.theme.Dim.Render(fmt.Sprintf("%s · pattern %s · cycle %s",
			s.Technique.Name, s.Technique.Pattern(),
			util.FormatDuration(time.Duration(s.Technique.CycleLength())*time.Second))),
	}
	if cur, ok := m.tracker.Current(); ok {
		lines = append(lines, m.theme.Highlight.Render(fmt.Sprintf("session %s · %s",
			util.FormatClock(cur.Duration()), util.Plural(cur.Cycles, "cycle", "cycles"))))
	}
	return strings.Join(lines, "\n")
}

func (m BreathModel) renderStatus() string {
	switch {
	case m.err != nil:
		return m.theme.Error.Render("Error: " + m.err.Error())
	case m.Message != "":
		return m.theme.Status.Render(m.Message)
	case m.confirmingClear:
		return m.theme.Error.Render("Clear all session history? [y] confirm, any other key cancels")
	case !m.state.Running && m.screen == ScreenBreathing:
		return m.theme.Dim.Render("Press space to begin")
	}
	return ""
}

func (m BreathModel) renderFooter() string {
	help := m.keys.HelpFor(m.screen)
	if help != "" {
		help += "|"
	}
	help += "[q]quit"
	if m.width > 0 {
		help = ansi.Truncate(help, m.width-4, config.TruncationSuffix)
	}
	return m.theme.Dim.Render(help)
}
