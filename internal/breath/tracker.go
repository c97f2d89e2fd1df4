package breath

import (
	"time"

	"github.com/akyairhashvil/calmtide/internal/models"
	"github.com/google/uuid"
)

// Tracker turns a stream of engine changes into session summaries. It keeps
// no reference to the engine; callers feed it every Change they apply.
type Tracker struct {
	now     func() time.Time
	active  bool
	current models.BreathSession
}

// NewTracker returns a tracker using now for timestamps (time.Now when nil).
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// Active reports whether a session is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Current returns a copy of the session in progress.
func (t *Tracker) Current() (models.BreathSession, bool) {
	return t.current, t.active
}

// Observe applies c. When c ends a session with at least one elapsed second
// the finished session is returned with ok set.
func (t *Tracker) Observe(c Change) (models.BreathSession, bool) {
	switch {
	case c.Started():
		t.active = true
		t.current = models.BreathSession{
			ID:            uuid.NewString(),
			TechniqueID:   c.Next.Technique.ID,
			TechniqueName: c.Next.Technique.Name,
			StartedAt:     t.now(),
		}
	case c.Stopped():
		if !t.active {
			return models.BreathSession{}, false
		}
		done := t.current
		done.EndedAt = t.now()
		done.Status = statusFor(c.Cause)
		t.active = false
		t.current = models.BreathSession{}
		return done, done.ElapsedSeconds > 0
	case c.Cause == CauseTick && t.active && c.Next.Running:
		t.current.ElapsedSeconds++
		if c.CompletedCycle() {
			t.current.Cycles++
		}
	}
	return models.BreathSession{}, false
}

func statusFor(c Cause) models.SessionStatus {
	switch c {
	case CauseSelect:
		return models.StatusSwitched
	case CauseClose:
		return models.StatusInterrupted
	}
	return models.StatusPaused
}
