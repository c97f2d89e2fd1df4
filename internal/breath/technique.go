// Package breath implements the guided breath cycle: the technique catalog,
// the pure state machine that walks a technique's phases, and the drivers
// that feed it one tick per second.
package breath

import (
	"strconv"
	"strings"
)

// Phase is one stage of a breath cycle.
type Phase int

const (
	Inhale Phase = iota
	HoldAfterInhale
	Exhale
	HoldAfterExhale
)

const phaseCount = 4

// Phases lists every phase in cyclic order.
var Phases = [phaseCount]Phase{Inhale, HoldAfterInhale, Exhale, HoldAfterExhale}

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "Inhale"
	case HoldAfterInhale, HoldAfterExhale:
		return "Hold"
	case Exhale:
		return "Exhale"
	}
	return "Unknown"
}

// Key is a stable identifier for the phase, suitable for styling and logs.
func (p Phase) Key() string {
	switch p {
	case Inhale:
		return "inhale"
	case HoldAfterInhale:
		return "hold_in"
	case Exhale:
		return "exhale"
	case HoldAfterExhale:
		return "hold_out"
	}
	return "unknown"
}

func (p Phase) valid() bool {
	return p >= Inhale && p <= HoldAfterExhale
}

func (p Phase) following() Phase {
	return (p + 1) % phaseCount
}

// Technique is an immutable breathing pattern. The zero value is not usable;
// build techniques with NewTechnique.
type Technique struct {
	ID        string
	Name      string
	durations [phaseCount]int
}

// NewTechnique validates the phase durations (in seconds) and returns the
// technique. Inhale must be positive; the holds and exhale may be zero, in
// which case that phase is skipped.
func NewTechnique(id, name string, inhale, holdIn, exhale, holdOut int) (Technique, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Technique{}, invariantErr("", "id must not be empty")
	}
	if inhale <= 0 {
		return Technique{}, invariantErr(id, "inhale must be positive, got %d", inhale)
	}
	for _, d := range []int{holdIn, exhale, holdOut} {
		if d < 0 {
			return Technique{}, invariantErr(id, "durations must not be negative, got %d", d)
		}
	}
	if strings.TrimSpace(name) == "" {
		name = id
	}
	return Technique{
		ID:        id,
		Name:      name,
		durations: [phaseCount]int{inhale, holdIn, exhale, holdOut},
	}, nil
}

// MustTechnique is NewTechnique for compile-time tables.
func MustTechnique(id, name string, inhale, holdIn, exhale, holdOut int) Technique {
	t, err := NewTechnique(id, name, inhale, holdIn, exhale, holdOut)
	if err != nil {
		panic(err)
	}
	return t
}

// Duration returns the length of a phase in seconds, 0 for skipped phases.
func (t Technique) Duration(p Phase) int {
	if !p.valid() {
		return 0
	}
	return t.durations[p]
}

// Durations returns the four phase durations in cyclic order.
func (t Technique) Durations() [4]int {
	return t.durations
}

// ActivePhases returns the phases the cycle visits, in order.
func (t Technique) ActivePhases() []Phase {
	out := make([]Phase, 0, phaseCount)
	for _, p := range Phases {
		if t.durations[p] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// CycleLength is the number of ticks in one full cycle.
func (t Technique) CycleLength() int {
	total := 0
	for _, d := range t.durations {
		total += d
	}
	return total
}

// Pattern renders the durations the way breathing guides write them, e.g. "4-7-8".
func (t Technique) Pattern() string {
	parts := make([]string, 0, phaseCount)
	for _, p := range t.ActivePhases() {
		parts = append(parts, strconv.Itoa(t.durations[p]))
	}
	return strings.Join(parts, "-")
}

func (t Technique) validate() error {
	_, err := NewTechnique(t.ID, t.Name, t.durations[Inhale], t.durations[HoldAfterInhale], t.durations[Exhale], t.durations[HoldAfterExhale])
	return err
}
