package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/akyairhashvil/calmtide/internal/tui"
	"github.com/akyairhashvil/calmtide/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type breatheFlags struct {
	plain    bool
	cycles   int
	interval time.Duration
}

var errNotTerminal = errors.New("stdout is not a terminal; use --plain for line output")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newBreatheCmd(flags *config.Config) *cobra.Command {
	bf := &breatheFlags{}
	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Start a breathing session",
		Long: `Start a breathing session on the interactive screen.

With --plain the cycle runs headless and prints one line per second, which
works in pipes and scripts. --cycles stops it after that many full cycles.`,
		RunE: withApp(flags, func(cmd *cobra.Command, args []string, a *app) error {
			if bf.cycles < 0 {
				return fmt.Errorf("--cycles must not be negative")
			}
			if bf.plain {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runPlain(ctx, a, a.startTechnique(ctx, cmd), bf, cmd.OutOrStdout())
			}
			if !stdoutIsTerminal() {
				return errNotTerminal
			}
			return runTUI(cmd, a)
		}),
	}
	cmd.Flags().BoolVar(&bf.plain, "plain", false, "Print one line per tick instead of the interactive screen")
	cmd.Flags().IntVar(&bf.cycles, "cycles", 0, "Stop after this many cycles in --plain mode (0 runs until interrupted)")
	cmd.Flags().DurationVar(&bf.interval, "interval", config.TickInterval, "Tick interval")
	_ = cmd.Flags().MarkHidden("interval")
	return cmd
}

func runTUI(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	model := tui.NewMainModel(ctx, a.db, a.registry, tui.Options{
		Technique: a.startTechnique(ctx, cmd).ID,
		Theme:     a.theme(ctx, cmd),
		ReportDir: util.ReportsDir(config.AppName),
		Logger:    a.log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}

// runPlain drives the cycle headless until ctx ends or the requested number
// of cycles completes, then records the session.
func runPlain(ctx context.Context, a *app, t breath.Technique, bf *breatheFlags, out io.Writer) error {
	tracker := breath.NewTracker(nil)
	finished := make(chan models.BreathSession, 1)
	reached := make(chan struct{})
	var once sync.Once

	observe := func(c breath.Change) {
		if s, ok := tracker.Observe(c); ok {
			finished <- s
		}
		if c.Cause != breath.CauseTick || !c.Next.Running {
			return
		}
		cur, _ := tracker.Current()
		printTick(out, cur.Duration(), c.Next)
		if bf.cycles > 0 && cur.Cycles >= bf.cycles {
			once.Do(func() { close(reached) })
		}
	}

	d := breath.NewDriver(t,
		breath.WithInterval(bf.interval),
		breath.WithObserver(observe),
		breath.WithLogger(a.log.Component("driver")),
	)
	fmt.Fprintf(out, "%s (%s)\n", t.Name, t.Pattern())
	printTick(out, 0, d.Snapshot())
	d.Toggle()

	select {
	case <-ctx.Done():
	case <-reached:
		d.Toggle()
	}
	d.Close()

	select {
	case s := <-finished:
		if err := a.db.RecordSession(context.WithoutCancel(ctx), s); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s, %s\n", s.Status, util.FormatDuration(s.Duration()), util.Plural(s.Cycles, "cycle", "cycles"))
	default:
	}
	return nil
}

func printTick(out io.Writer, elapsed time.Duration, s breath.State) {
	fmt.Fprintf(out, "%s  %-6s %d\n", util.FormatClock(elapsed), s.Phase, s.Remaining)
}
