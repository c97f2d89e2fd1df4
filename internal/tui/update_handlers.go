package tui

import (
	"fmt"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/database"
	"github.com/akyairhashvil/calmtide/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m BreathModel) handleWindowSize(msg tea.WindowSizeMsg) (BreathModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.IndicatorWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinIndicatorWidth, config.IndicatorWidth)
	}
	return m, nil
}

// apply commits next as the new state and derives the side effects of the
// transition: a new tick run when breathing starts, invalidation of the
// pending tick when it stops, and persistence of a finished session.
func (m BreathModel) apply(next breath.State, cause breath.Cause) (BreathModel, tea.Cmd) {
	change := breath.Change{Prev: m.state, Next: next, Cause: cause}
	m.state = next

	var cmds []tea.Cmd
	switch {
	case change.Started():
		m.gen++
		cmds = append(cmds, tickCmd(m.gen, m.interval))
	case change.Stopped():
		m.gen++
	}
	if session, ok := m.tracker.Observe(change); ok {
		cmds = append(cmds, m.saveSessionCmd(session))
	}
	return m, tea.Batch(cmds...)
}

func (m BreathModel) handleTick(msg TickMsg) (BreathModel, tea.Cmd) {
	if msg.Gen != m.gen || !m.state.Running {
		return m, nil
	}
	m, cmd := m.apply(breath.Tick(m.state), breath.CauseTick)
	return m, tea.Batch(cmd, tickCmd(m.gen, m.interval))
}

func (m BreathModel) toggle() (BreathModel, tea.Cmd) {
	return m.apply(breath.ToggleRunning(m.state), breath.CauseToggle)
}

func (m BreathModel) selectTechnique(t breath.Technique) (BreathModel, tea.Cmd) {
	m, cmd := m.apply(breath.SelectTechnique(m.state, t), breath.CauseSelect)
	return m, tea.Batch(cmd, m.saveSettingCmd(database.SettingLastTechnique, t.ID))
}

// Shutdown stops breathing and returns the command that records the
// interrupted session, if any.
func (m BreathModel) Shutdown() (BreathModel, tea.Cmd) {
	return m.apply(breath.Create(m.state.Technique), breath.CauseClose)
}

func (m BreathModel) stepTechnique(delta int) (BreathModel, tea.Cmd) {
	idx := m.registry.Index(m.state.Technique.ID)
	return m.selectTechnique(m.registry.At(idx + delta))
}

func (m BreathModel) selectIndex(idx int) (BreathModel, tea.Cmd) {
	if idx < 0 || idx >= m.registry.Len() {
		m.Message = fmt.Sprintf("No technique %d", idx+1)
		return m, nil
	}
	return m.selectTechnique(m.registry.At(idx))
}

func (m BreathModel) switchScreen() (BreathModel, tea.Cmd) {
	if m.screen == ScreenHistory {
		m.screen = ScreenBreathing
		m.confirmingClear = false
		return m, nil
	}
	m.screen = ScreenHistory
	return m, m.loadHistoryCmd()
}

func (m BreathModel) handleKey(msg tea.KeyMsg) (BreathModel, tea.Cmd) {
	m.err = nil
	m.Message = ""
	key := msg.String()

	if m.confirmingClear {
		m.confirmingClear = false
		if key == "y" {
			return m, m.clearHistoryCmd()
		}
		m.Message = "Clear cancelled"
		return m, nil
	}

	next, cmd, _ := m.keys.Handle(m, key)
	return next, cmd
}

func (m BreathModel) handleSessionSaved(msg sessionSavedMsg) (BreathModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.log, "record session", msg.err)
		m.err = fmt.Errorf("saving session: %w", msg.err)
		return m, nil
	}
	s := msg.session
	m.log.Info().
		Str("session", s.ID).
		Str("technique", s.TechniqueID).
		Int("seconds", s.ElapsedSeconds).
		Int("cycles", s.Cycles).
		Msg("session recorded")
	m.Message = fmt.Sprintf("Saved %s · %s · %s",
		s.TechniqueName, util.FormatDuration(s.Duration()), util.Plural(s.Cycles, "cycle", "cycles"))
	if m.screen == ScreenHistory {
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m BreathModel) handleHistoryLoaded(msg historyLoadedMsg) (BreathModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.log, "load history", msg.err)
		m.err = fmt.Errorf("loading history: %w", msg.err)
		return m, nil
	}
	m.history = historyView{sessions: msg.sessions, stats: msg.stats, loaded: true}
	return m, nil
}

func (m BreathModel) handleHistoryCleared(msg historyClearedMsg) (BreathModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.log, "clear history", msg.err)
		m.err = fmt.Errorf("clearing history: %w", msg.err)
		return m, nil
	}
	m.history = historyView{loaded: true}
	m.Message = fmt.Sprintf("Cleared %s", util.Plural(int(msg.removed), "session", "sessions"))
	return m, nil
}

func (m BreathModel) handleReportDone(msg reportDoneMsg) (BreathModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.log, "generate report", msg.err)
		m.err = fmt.Errorf("writing report: %w", msg.err)
		return m, nil
	}
	m.log.Info().Str("path", msg.path).Msg("report written")
	m.Message = "Report saved to " + msg.path
	return m, nil
}
