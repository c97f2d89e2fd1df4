package breath

// Cause names the operation that produced a state change.
type Cause int

const (
	CauseTick Cause = iota
	CauseToggle
	CauseSelect
	CauseClose
)

func (c Cause) String() string {
	switch c {
	case CauseTick:
		return "tick"
	case CauseToggle:
		return "toggle"
	case CauseSelect:
		return "select"
	case CauseClose:
		return "close"
	}
	return "unknown"
}

// Change is one transition of the engine.
type Change struct {
	Prev  State
	Next  State
	Cause Cause
}

// Started reports an idle to running transition.
func (c Change) Started() bool {
	return !c.Prev.Running && c.Next.Running
}

// Stopped reports a running to idle transition.
func (c Change) Stopped() bool {
	return c.Prev.Running && !c.Next.Running
}

// CompletedCycle reports whether the change wrapped the cycle back to Inhale.
func (c Change) CompletedCycle() bool {
	return c.Cause == CauseTick && c.Prev.Running && c.Next.Running &&
		c.Prev.BoundaryNext() && c.Next.Phase == Inhale
}
