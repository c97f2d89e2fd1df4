package tui

import (
	"context"

	"github.com/akyairhashvil/calmtide/internal/breath"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model. It owns program teardown and
// delegates everything else to the breathing model.
type MainModel struct {
	breath   BreathModel
	quitting bool
}

func NewMainModel(ctx context.Context, store SessionStore, registry *breath.Registry, opts Options) MainModel {
	return MainModel{breath: NewBreathModel(ctx, store, registry, opts)}
}

func (m MainModel) Init() tea.Cmd {
	return m.breath.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			return m.quit()
		}
	}
	next, cmd := m.breath.Update(msg)
	m.breath = next.(BreathModel)
	return m, cmd
}

// quit tears the session down before the program exits so the interrupted
// session is recorded and no tick from the old run is honored.
func (m MainModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	var save tea.Cmd
	m.breath, save = m.breath.Shutdown()
	if save == nil {
		return m, tea.Quit
	}
	return m, tea.Sequence(save, tea.Quit)
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	return m.breath.View()
}

// Breath exposes the breathing model.
func (m MainModel) Breath() BreathModel {
	return m.breath
}
