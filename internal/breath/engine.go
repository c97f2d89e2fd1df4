package breath

// State is the breath cycle at one instant. It is a plain value: every
// operation returns a new State and never mutates its argument.
//
// While running, Remaining is in [1, Duration(Phase)] and Phase always has a
// non-zero duration. While idle, Phase is Inhale and Remaining is the full
// inhale duration.
type State struct {
	Technique Technique
	Running   bool
	Phase     Phase
	Remaining int
}

// Create returns an idle state anchored at the technique's inhale.
func Create(t Technique) State {
	return anchor(t)
}

func anchor(t Technique) State {
	return State{
		Technique: t,
		Running:   false,
		Phase:     Inhale,
		Remaining: t.Duration(Inhale),
	}
}

// SelectTechnique switches to t. Any cycle in progress is discarded and the
// engine stops.
func SelectTechnique(_ State, t Technique) State {
	return anchor(t)
}

// ToggleRunning starts an idle engine or stops a running one. Stopping
// aborts the cycle: the state returns to the inhale anchor.
func ToggleRunning(s State) State {
	if s.Running {
		return anchor(s.Technique)
	}
	s.Running = true
	return s
}

// Tick advances a running engine by one second. It crosses at most one phase
// boundary and never leaves a zero-duration phase as current.
func Tick(s State) State {
	if !s.Running {
		return s
	}
	if s.Remaining > 1 {
		s.Remaining--
		return s
	}
	s.Phase = NextPhase(s.Technique, s.Phase)
	s.Remaining = s.Technique.Duration(s.Phase)
	return s
}

// NextPhase returns the phase that follows p in t, skipping phases whose
// duration is zero. A technique always has a positive inhale, so the walk
// ends at Inhale at the latest.
func NextPhase(t Technique, p Phase) Phase {
	next := p.following()
	for i := 0; i < phaseCount; i++ {
		if t.Duration(next) > 0 {
			return next
		}
		next = next.following()
	}
	return Inhale
}

// Idle reports whether the state is the stopped inhale anchor.
func (s State) Idle() bool {
	return !s.Running
}

// PhaseDuration is the full length of the current phase.
func (s State) PhaseDuration() int {
	return s.Technique.Duration(s.Phase)
}

// Progress is the fraction of the current phase already elapsed, in [0, 1).
// It is 0 while idle.
func (s State) Progress() float64 {
	d := s.PhaseDuration()
	if !s.Running || d <= 0 {
		return 0
	}
	elapsed := d - s.Remaining
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(elapsed) / float64(d)
}

// BoundaryNext reports whether the next tick completes the current phase.
func (s State) BoundaryNext() bool {
	return s.Running && s.Remaining <= 1
}
