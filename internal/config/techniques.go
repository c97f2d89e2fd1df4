package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"gopkg.in/yaml.v3"
)

// TechniqueSpec is one technique as written in the techniques file.
type TechniqueSpec struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Inhale          int    `yaml:"inhale"`
	HoldAfterInhale int    `yaml:"hold_after_inhale"`
	Exhale          int    `yaml:"exhale"`
	HoldAfterExhale int    `yaml:"hold_after_exhale"`
}

// TechniquesFile is the document layout of the techniques file.
type TechniquesFile struct {
	Techniques []TechniqueSpec `yaml:"techniques"`
}

// ParseTechniques decodes and validates techniques from r.
func ParseTechniques(r io.Reader) ([]breath.Technique, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc TechniquesFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTechniquesFile, err)
	}

	out := make([]breath.Technique, 0, len(doc.Techniques))
	for i, spec := range doc.Techniques {
		t, err := breath.NewTechnique(spec.ID, spec.Name, spec.Inhale, spec.HoldAfterInhale, spec.Exhale, spec.HoldAfterExhale)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidTechniquesFile, i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// LoadTechniques reads the techniques file at path. An empty path yields no
// techniques.
func LoadTechniques(path string) ([]breath.Technique, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTechniquesFile, err)
	}
	defer f.Close()
	return ParseTechniques(f)
}

// Catalog builds the technique registry: the built-in techniques followed by
// those from the configured file.
func (cfg *Config) Catalog() (*breath.Registry, error) {
	extra, err := LoadTechniques(cfg.TechniquesFile)
	if err != nil {
		return nil, err
	}
	return breath.NewRegistry(append(breath.DefaultTechniques(), extra...)...)
}
