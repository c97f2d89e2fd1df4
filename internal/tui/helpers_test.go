package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/calmtide/internal/breath"
	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 10, 18, 7, 30, 0, 0, time.UTC)

func setupTestModel(t *testing.T, store SessionStore) BreathModel {
	t.Helper()
	return NewBreathModel(context.Background(), store, breath.DefaultRegistry(), Options{
		TickInterval: time.Millisecond,
		Now:          func() time.Time { return testNow },
		ReportDir:    t.TempDir(),
	})
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m BreathModel, key string) (BreathModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	out, ok := next.(BreathModel)
	if !ok {
		t.Fatalf("expected BreathModel, got %T", next)
	}
	return out, cmd
}

// drain runs cmd and every command batched inside it.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func msgsOf[T tea.Msg](msgs []tea.Msg) []T {
	var out []T
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func feed(t *testing.T, m BreathModel, msgs []tea.Msg) BreathModel {
	t.Helper()
	for _, msg := range msgs {
		if _, ok := msg.(TickMsg); ok {
			continue
		}
		next, _ := m.Update(msg)
		m = next.(BreathModel)
	}
	return m
}

func ticks(t *testing.T, m BreathModel, n int) BreathModel {
	t.Helper()
	for i := 0; i < n; i++ {
		var cmd tea.Cmd
		m, cmd = m.handleTick(TickMsg{Gen: m.gen, Time: testNow})
		if cmd == nil {
			t.Fatalf("tick %d did not reschedule", i+1)
		}
	}
	return m
}
