package tui

import (
	"time"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/akyairhashvil/calmtide/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one scheduler tick. Gen ties it to the run that scheduled it;
// ticks from an earlier run are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

type sessionSavedMsg struct {
	session models.BreathSession
	err     error
}

type settingSavedMsg struct {
	key string
	err error
}

type historyLoadedMsg struct {
	sessions []models.BreathSession
	stats    []models.TechniqueStats
	err      error
}

type historyClearedMsg struct {
	removed int64
	err     error
}

type reportDoneMsg struct {
	path string
	err  error
}

func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

func (m BreathModel) saveSessionCmd(s models.BreathSession) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return sessionSavedMsg{session: s, err: store.RecordSession(ctx, s)}
	}
}

func (m BreathModel) saveSettingCmd(key, value string) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return settingSavedMsg{key: key, err: store.SetSetting(ctx, key, value)}
	}
}

func (m BreathModel) loadHistoryCmd() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		sessions, err := store.ListSessions(ctx, config.HistoryLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		stats, err := store.SessionStats(ctx)
		return historyLoadedMsg{sessions: sessions, stats: stats, err: err}
	}
}

func (m BreathModel) clearHistoryCmd() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		n, err := store.ClearSessions(ctx)
		return historyClearedMsg{removed: n, err: err}
	}
}

func (m BreathModel) reportCmd() tea.Cmd {
	store, ctx, dir, now := m.store, m.ctx, m.reportDir, m.now
	return func() tea.Msg {
		path, err := report.GeneratePDF(ctx, store, dir, now())
		return reportDoneMsg{path: path, err: err}
	}
}
