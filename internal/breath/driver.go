package breath

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/calmtide/internal/logger"
)

// Observer receives every change applied by a Driver. Observers run while the
// driver is locked, in the order changes are applied, and must not call back
// into the driver.
type Observer func(Change)

// Driver owns one live State and feeds it ticks from a Clock. Select, Toggle
// and ticks are serialized; a tick scheduled before a stop or a technique
// switch is discarded rather than applied to the new state.
type Driver struct {
	mu        sync.Mutex
	state     State
	clock     Clock
	interval  time.Duration
	gen       uint64
	stop      chan struct{}
	done      chan struct{}
	closed    bool
	observers []Observer
	log       *logger.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithClock replaces the system clock.
func WithClock(c Clock) DriverOption {
	return func(d *Driver) { d.clock = c }
}

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(interval time.Duration) DriverOption {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) DriverOption {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

// WithLogger sets the driver logger.
func WithLogger(l *logger.Logger) DriverOption {
	return func(d *Driver) { d.log = l }
}

// NewDriver returns an idle driver on technique t.
func NewDriver(t Technique, opts ...DriverOption) *Driver {
	d := &Driver{
		state:    Create(t),
		clock:    SystemClock,
		interval: time.Second,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Snapshot returns the current state.
func (d *Driver) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Toggle starts or stops the cycle and returns the new state.
func (d *Driver) Toggle() State {
	d.mu.Lock()
	if d.closed {
		s := d.state
		d.mu.Unlock()
		return s
	}
	next := d.applyLocked(ToggleRunning(d.state), CauseToggle)
	var wait chan struct{}
	if next.Running {
		d.startLocked()
	} else {
		wait = d.stopLocked()
	}
	d.mu.Unlock()
	waitFor(wait)
	return next
}

// Select switches technique, stopping any cycle in progress.
func (d *Driver) Select(t Technique) State {
	d.mu.Lock()
	if d.closed {
		s := d.state
		d.mu.Unlock()
		return s
	}
	next := d.applyLocked(SelectTechnique(d.state, t), CauseSelect)
	wait := d.stopLocked()
	d.mu.Unlock()
	waitFor(wait)
	return next
}

// Run blocks until ctx is done and then closes the driver.
func (d *Driver) Run(ctx context.Context) error {
	<-ctx.Done()
	d.Close()
	return ctx.Err()
}

// Close stops the cycle, releases the ticker and waits for its goroutine.
// It is safe to call more than once.
func (d *Driver) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.state.Running {
		d.applyLocked(anchor(d.state.Technique), CauseClose)
	}
	d.closed = true
	wait := d.stopLocked()
	d.mu.Unlock()
	waitFor(wait)
	d.log.Debug().Msg("driver closed")
}

func (d *Driver) applyLocked(next State, cause Cause) State {
	c := Change{Prev: d.state, Next: next, Cause: cause}
	d.state = next
	for _, o := range d.observers {
		o(c)
	}
	return next
}

// startLocked launches a ticker goroutine for a new generation.
func (d *Driver) startLocked() {
	if d.stop != nil {
		return
	}
	d.gen++
	stop := make(chan struct{})
	done := make(chan struct{})
	d.stop, d.done = stop, done
	t := d.clock.NewTicker(d.interval)
	d.log.Debug().Uint64("gen", d.gen).Str("technique", d.state.Technique.ID).Msg("ticker started")
	go d.loop(d.gen, t, stop, done)
}

// stopLocked invalidates the current generation and signals its goroutine.
// The returned channel closes once the goroutine has exited; callers wait on
// it after releasing the lock.
func (d *Driver) stopLocked() chan struct{} {
	if d.stop == nil {
		return nil
	}
	d.gen++
	close(d.stop)
	done := d.done
	d.stop, d.done = nil, nil
	return done
}

func (d *Driver) loop(gen uint64, t Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !d.tick(gen) {
				return
			}
		}
	}
}

func (d *Driver) tick(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || d.gen != gen || !d.state.Running {
		return false
	}
	d.applyLocked(Tick(d.state), CauseTick)
	return true
}

func waitFor(ch chan struct{}) {
	if ch != nil {
		<-ch
	}
}
