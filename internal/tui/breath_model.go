package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/logger"
	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen selects what the model renders.
type Screen int

const (
	ScreenBreathing Screen = iota
	ScreenHistory
)

// Options configures a BreathModel. Zero values fall back to defaults.
type Options struct {
	Technique    string
	Theme        string
	ReportDir    string
	TickInterval time.Duration
	Now          func() time.Time
	Logger       *logger.Logger
}

type historyView struct {
	sessions []models.BreathSession
	stats    []models.TechniqueStats
	loaded   bool
}

// BreathModel owns the engine state for the interactive session. All engine
// transitions pass through apply on the bubbletea event loop.
type BreathModel struct {
	ctx      context.Context
	store    SessionStore
	registry *breath.Registry
	state    breath.State
	gen      uint64
	tracker  *breath.Tracker
	keys     *HandlerRegistry
	progress progress.Model
	theme    Theme

	screen          Screen
	history         historyView
	confirmingClear bool

	interval  time.Duration
	reportDir string
	now       func() time.Time
	log       *logger.Logger

	Message string
	err     error
	width   int
	height  int
}

// NewBreathModel builds an idle model on the technique named in opts, or the
// registry default when it is unknown.
func NewBreathModel(ctx context.Context, store SessionStore, registry *breath.Registry, opts Options) BreathModel {
	if registry == nil {
		registry = breath.DefaultRegistry()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	technique, _ := registry.Resolve(opts.Technique)
	theme := ResolveTheme(opts.Theme)

	bar := progress.New(
		progress.WithSolidFill(theme.BarFull),
		progress.WithoutPercentage(),
		progress.WithWidth(config.IndicatorWidth),
	)
	bar.EmptyColor = theme.BarEmpty

	return BreathModel{
		ctx:       ctx,
		store:     store,
		registry:  registry,
		state:     breath.Create(technique),
		tracker:   breath.NewTracker(opts.Now),
		keys:      newKeyRegistry(),
		progress:  bar,
		theme:     theme,
		interval:  opts.TickInterval,
		reportDir: opts.ReportDir,
		now:       opts.Now,
		log:       opts.Logger.Component("tui"),
	}
}

// State returns the current engine state.
func (m BreathModel) State() breath.State {
	return m.state
}

// Screen returns the active screen.
func (m BreathModel) Screen() Screen {
	return m.screen
}

func (m BreathModel) Init() tea.Cmd {
	return nil
}

func (m BreathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case sessionSavedMsg:
		return m.handleSessionSaved(msg)
	case settingSavedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("key", msg.key).Msg("save setting failed")
		}
		return m, nil
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case historyClearedMsg:
		return m.handleHistoryCleared(msg)
	case reportDoneMsg:
		return m.handleReportDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}
