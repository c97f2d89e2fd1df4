package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m BreathModel, key string) (BreathModel, tea.Cmd, bool)

// KeyBinding maps a key to a handler. Label overrides the key in help text;
// bindings sharing a Label are listed once.
type KeyBinding struct {
	Key         string
	Label       string
	Handler     KeyHandler
	Description string
	Screens     []Screen
	Priority    int
}

func (b KeyBinding) AppliesTo(s Screen) bool {
	if len(b.Screens) == 0 {
		return true
	}
	for _, v := range b.Screens {
		if v == s {
			return true
		}
	}
	return false
}

func (b KeyBinding) label() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Key
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m BreathModel, key string) (BreathModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.screen) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(s Screen) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(s Screen) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(s) {
		if b.Description == "" {
			continue
		}
		label := b.label()
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	toggle := func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
		next, cmd := m.toggle()
		return next, cmd, true
	}
	r.Register(KeyBinding{Key: " ", Label: "space", Handler: toggle, Description: "start/pause", Priority: 10})
	r.Register(KeyBinding{Key: "enter", Label: "space", Handler: toggle, Description: "start/pause", Screens: []Screen{ScreenBreathing}, Priority: 10})

	next := func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
		out, cmd := m.stepTechnique(1)
		return out, cmd, true
	}
	prev := func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
		out, cmd := m.stepTechnique(-1)
		return out, cmd, true
	}
	breathing := []Screen{ScreenBreathing}
	r.Register(KeyBinding{Key: "left", Label: "←/→", Handler: prev, Description: "technique", Screens: breathing, Priority: 8})
	r.Register(KeyBinding{Key: "h", Label: "←/→", Handler: prev, Screens: breathing, Priority: 8})
	r.Register(KeyBinding{Key: "right", Label: "←/→", Handler: next, Description: "technique", Screens: breathing, Priority: 8})
	r.Register(KeyBinding{Key: "l", Label: "←/→", Handler: next, Screens: breathing, Priority: 8})

	for d := '1'; d <= '9'; d++ {
		desc := ""
		if d == '1' {
			desc = "pick"
		}
		r.Register(KeyBinding{
			Key:         string(d),
			Label:       "1-9",
			Description: desc,
			Screens:     breathing,
			Priority:    6,
			Handler: func(m BreathModel, key string) (BreathModel, tea.Cmd, bool) {
				out, cmd := m.selectIndex(int(key[0] - '1'))
				return out, cmd, true
			},
		})
	}

	r.Register(KeyBinding{Key: "tab", Description: "history", Priority: 5,
		Handler: func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
			out, cmd := m.switchScreen()
			return out, cmd, true
		}})
	r.Register(KeyBinding{Key: "esc", Screens: []Screen{ScreenHistory}, Priority: 5,
		Handler: func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
			out, cmd := m.switchScreen()
			return out, cmd, true
		}})
	r.Register(KeyBinding{Key: "r", Description: "report", Priority: 4,
		Handler: func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
			m.Message = "Writing report..."
			return m, m.reportCmd(), true
		}})
	r.Register(KeyBinding{Key: "C", Description: "clear history", Screens: []Screen{ScreenHistory}, Priority: 3,
		Handler: func(m BreathModel, _ string) (BreathModel, tea.Cmd, bool) {
			if m.history.loaded && len(m.history.sessions) == 0 {
				m.Message = "History is empty"
				return m, nil, true
			}
			m.confirmingClear = true
			return m, nil, true
		}})
	return r
}
