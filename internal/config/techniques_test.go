package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTechniques = `
techniques:
  - id: triangle
    name: Triangle
    inhale: 4
    hold_after_inhale: 4
    exhale: 4
  - id: long-exhale
    inhale: 3
    exhale: 9
`

func TestParseTechniques(t *testing.T) {
	got, err := ParseTechniques(strings.NewReader(sampleTechniques))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "triangle", got[0].ID)
	assert.Equal(t, "Triangle", got[0].Name)
	assert.Equal(t, [4]int{4, 4, 4, 0}, got[0].Durations())
	assert.Equal(t, "long-exhale", got[1].Name)
	assert.Equal(t, []breath.Phase{breath.Inhale, breath.Exhale}, got[1].ActivePhases())
}

func TestParseTechniques_RejectsZeroInhale(t *testing.T) {
	_, err := ParseTechniques(strings.NewReader("techniques:\n  - id: still\n    exhale: 4\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTechniquesFile)
	assert.ErrorIs(t, err, breath.ErrInvariantViolation)
}

func TestParseTechniques_RejectsUnknownFields(t *testing.T) {
	_, err := ParseTechniques(strings.NewReader("techniques:\n  - id: x\n    inhale: 4\n    tempo: fast\n"))
	assert.ErrorIs(t, err, ErrInvalidTechniquesFile)
}

func TestParseTechniques_Empty(t *testing.T) {
	got, err := ParseTechniques(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadTechniques(t *testing.T) {
	got, err := LoadTechniques("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = LoadTechniques(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrInvalidTechniquesFile)
}

func TestCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "techniques.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTechniques), 0o600))

	cfg := Defaults()
	cfg.TechniquesFile = path
	reg, err := cfg.Catalog()
	require.NoError(t, err)

	assert.Equal(t, len(breath.DefaultTechniques())+2, reg.Len())
	assert.Equal(t, breath.Box, reg.Default())
	tri, err := reg.Get("triangle")
	require.NoError(t, err)
	assert.Equal(t, 12, tri.CycleLength())
}

func TestCatalog_DuplicateBuiltInRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "techniques.yaml")
	require.NoError(t, os.WriteFile(path, []byte("techniques:\n  - id: box\n    inhale: 2\n"), 0o600))

	cfg := Defaults()
	cfg.TechniquesFile = path
	_, err := cfg.Catalog()
	assert.ErrorIs(t, err, breath.ErrInvariantViolation)
}
