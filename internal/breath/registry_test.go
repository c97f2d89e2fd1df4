package breath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	r := DefaultRegistry()
	require.GreaterOrEqual(t, r.Len(), 3)
	for _, tech := range r.List() {
		assert.Positive(t, tech.Duration(Inhale), tech.ID)
		assert.NotEmpty(t, tech.Name, tech.ID)
	}
	assert.Same(t, r, DefaultRegistry())
}

func TestListIsStableCopy(t *testing.T) {
	r := DefaultRegistry()
	first := r.List()
	first[0] = Calm
	second := r.List()
	assert.Equal(t, Box, second[0])
	assert.Equal(t, DefaultTechniques(), second)
}

func TestGet(t *testing.T) {
	r := DefaultRegistry()
	got, err := r.Get("relaxing")
	require.NoError(t, err)
	assert.Equal(t, Relaxing, got)

	_, err = r.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTechnique))
	var te *TechniqueError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "nope", te.ID)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := DefaultRegistry()
	got, ok := r.Resolve("calm")
	assert.True(t, ok)
	assert.Equal(t, Calm, got)

	got, ok = r.Resolve("")
	assert.False(t, ok)
	assert.Equal(t, r.Default(), got)
}

func TestAtWraps(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, Box, r.At(0))
	assert.Equal(t, Coherent, r.At(-1))
	assert.Equal(t, Box, r.At(r.Len()))
	assert.Equal(t, 2, r.Index("calm"))
	assert.Equal(t, -1, r.Index("missing"))
}

func TestNewTechniqueRejectsInvalid(t *testing.T) {
	cases := []struct {
		name                            string
		id                              string
		inhale, holdIn, exhale, holdOut int
	}{
		{"zero inhale", "a", 0, 4, 4, 4},
		{"negative inhale", "b", -1, 0, 4, 0},
		{"negative hold", "c", 4, -2, 4, 0},
		{"empty id", " ", 4, 0, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTechnique(tc.id, "x", tc.inhale, tc.holdIn, tc.exhale, tc.holdOut)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvariantViolation))
		})
	}
}

func TestNewRegistryRejectsBadCatalogs(t *testing.T) {
	_, err := NewRegistry()
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = NewRegistry(Box, Box)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = NewRegistry(Box, Technique{ID: "broken"})
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestTechniqueHelpers(t *testing.T) {
	assert.Equal(t, "4-4-4-4", Box.Pattern())
	assert.Equal(t, "4-7-8", Relaxing.Pattern())
	assert.Equal(t, "4-6", Calm.Pattern())
	assert.Equal(t, 16, Box.CycleLength())
	assert.Equal(t, 19, Relaxing.CycleLength())
	assert.Equal(t, []Phase{Inhale, Exhale}, Calm.ActivePhases())
	assert.Equal(t, [4]int{5, 0, 5, 0}, Coherent.Durations())
	assert.Zero(t, Box.Duration(Phase(9)))

	tech, err := NewTechnique("quiet", "", 3, 0, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "quiet", tech.Name)
}

func TestPhaseLabels(t *testing.T) {
	assert.Equal(t, "Inhale", Inhale.String())
	assert.Equal(t, "Hold", HoldAfterInhale.String())
	assert.Equal(t, "Hold", HoldAfterExhale.String())
	assert.Equal(t, "Exhale", Exhale.String())
	assert.Equal(t, "hold_out", HoldAfterExhale.Key())
}
