package breath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(s State, n int) State {
	for i := 0; i < n; i++ {
		s = Tick(s)
	}
	return s
}

func TestCreateIsIdleAnchor(t *testing.T) {
	s := Create(Relaxing)
	assert.False(t, s.Running)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Remaining)
	assert.Equal(t, Relaxing, s.Technique)
}

func TestTickIdleIsNoop(t *testing.T) {
	for _, tech := range DefaultTechniques() {
		s := Create(tech)
		assert.Equal(t, s, Tick(s), tech.ID)
		assert.Equal(t, s, tickN(s, 25), tech.ID)
	}
}

func TestBoxScenario(t *testing.T) {
	s := ToggleRunning(Create(Box))
	require.True(t, s.Running)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Remaining)

	steps := []struct {
		phase     Phase
		remaining int
	}{
		{HoldAfterInhale, 4},
		{Exhale, 4},
		{HoldAfterExhale, 4},
		{Inhale, 4},
	}
	for _, step := range steps {
		s = tickN(s, 4)
		assert.Equal(t, step.phase, s.Phase)
		assert.Equal(t, step.remaining, s.Remaining)
		assert.True(t, s.Running)
	}
}

func TestSkippedHoldsScenario(t *testing.T) {
	s := ToggleRunning(Create(Calm))

	s = tickN(s, 3)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 1, s.Remaining)

	s = Tick(s)
	assert.Equal(t, Exhale, s.Phase)
	assert.Equal(t, 6, s.Remaining)

	s = tickN(s, 6)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Remaining)
}

func TestCycleIsPeriodic(t *testing.T) {
	for _, tech := range DefaultTechniques() {
		start := ToggleRunning(Create(tech))
		period := tech.CycleLength()
		s := tickN(start, period)
		assert.Equal(t, start, s, "%s after one cycle", tech.ID)
		s = tickN(s, period)
		assert.Equal(t, start, s, "%s after two cycles", tech.ID)

		// One tick short of the period the cycle has not wrapped yet.
		s = tickN(start, period-1)
		assert.NotEqual(t, start, s, tech.ID)
		assert.Equal(t, 1, s.Remaining, tech.ID)
	}
}

func TestZeroPhasesNeverObserved(t *testing.T) {
	onlyInhale := MustTechnique("sigh", "Sigh", 3, 0, 0, 0)
	for _, tech := range append(DefaultTechniques(), onlyInhale) {
		s := ToggleRunning(Create(tech))
		for i := 0; i < 3*tech.CycleLength(); i++ {
			require.Positive(t, tech.Duration(s.Phase), "%s tick %d landed on %s", tech.ID, i, s.Phase.Key())
			require.GreaterOrEqual(t, s.Remaining, 1)
			require.LessOrEqual(t, s.Remaining, tech.Duration(s.Phase))
			s = Tick(s)
		}
	}
}

func TestDoubleToggleReturnsToAnchor(t *testing.T) {
	s := Create(Box)
	assert.Equal(t, s, ToggleRunning(ToggleRunning(s)))
}

func TestPauseDiscardsProgress(t *testing.T) {
	s := tickN(ToggleRunning(Create(Relaxing)), 9)
	require.Equal(t, HoldAfterInhale, s.Phase)

	paused := ToggleRunning(s)
	assert.False(t, paused.Running)
	assert.Equal(t, Inhale, paused.Phase)
	assert.Equal(t, 4, paused.Remaining)

	resumed := ToggleRunning(paused)
	assert.True(t, resumed.Running)
	assert.Equal(t, Inhale, resumed.Phase)
	assert.Equal(t, 4, resumed.Remaining)
}

func TestSelectWhileRunningResets(t *testing.T) {
	s := tickN(ToggleRunning(Create(Box)), 6)
	require.Equal(t, HoldAfterInhale, s.Phase)

	next := SelectTechnique(s, Coherent)
	assert.False(t, next.Running)
	assert.Equal(t, Inhale, next.Phase)
	assert.Equal(t, 5, next.Remaining)
	assert.Equal(t, Coherent, next.Technique)
}

func TestNextPhase(t *testing.T) {
	assert.Equal(t, HoldAfterInhale, NextPhase(Box, Inhale))
	assert.Equal(t, Inhale, NextPhase(Box, HoldAfterExhale))
	assert.Equal(t, Exhale, NextPhase(Calm, Inhale))
	assert.Equal(t, Inhale, NextPhase(Calm, Exhale))
	assert.Equal(t, Exhale, NextPhase(Relaxing, HoldAfterInhale))
	assert.Equal(t, Inhale, NextPhase(Relaxing, Exhale))
	assert.Equal(t, Inhale, NextPhase(MustTechnique("in", "", 2, 0, 0, 0), Inhale))
}

func TestProgress(t *testing.T) {
	s := Create(Box)
	assert.Zero(t, s.Progress())

	s = ToggleRunning(s)
	assert.Zero(t, s.Progress())
	s = Tick(s)
	assert.InDelta(t, 0.25, s.Progress(), 1e-9)
	s = tickN(s, 2)
	assert.InDelta(t, 0.75, s.Progress(), 1e-9)
	assert.True(t, s.BoundaryNext())

	var zero State
	zero.Running = true
	assert.Zero(t, zero.Progress())
}
