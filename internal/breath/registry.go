package breath

import (
	"fmt"
	"sync"
)

// Built-in techniques, in catalog order.
var (
	Box      = MustTechnique("box", "Box Breathing", 4, 4, 4, 4)
	Relaxing = MustTechnique("relaxing", "4-7-8 Relaxing", 4, 7, 8, 0)
	Calm     = MustTechnique("calm", "Calm Exhale", 4, 0, 6, 0)
	Coherent = MustTechnique("coherent", "Coherent", 5, 0, 5, 0)
)

// DefaultTechniques returns the built-in catalog.
func DefaultTechniques() []Technique {
	return []Technique{Box, Relaxing, Calm, Coherent}
}

// Registry is an ordered, read-only catalog of techniques. It is safe for
// concurrent use once built.
type Registry struct {
	techniques []Technique
	index      map[string]int
}

// NewRegistry validates the techniques and keeps them in the given order.
// Duplicate ids and techniques that cannot drive a cycle are rejected.
func NewRegistry(techniques ...Technique) (*Registry, error) {
	if len(techniques) == 0 {
		return nil, &TechniqueError{Op: "load", Err: fmt.Errorf("%w: catalog is empty", ErrInvariantViolation)}
	}
	r := &Registry{
		techniques: make([]Technique, 0, len(techniques)),
		index:      make(map[string]int, len(techniques)),
	}
	for _, t := range techniques {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[t.ID]; dup {
			return nil, &TechniqueError{Op: "load", ID: t.ID, Err: fmt.Errorf("%w: duplicate id", ErrInvariantViolation)}
		}
		r.index[t.ID] = len(r.techniques)
		r.techniques = append(r.techniques, t)
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide built-in catalog.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(DefaultTechniques()...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// List returns the techniques in catalog order.
func (r *Registry) List() []Technique {
	out := make([]Technique, len(r.techniques))
	copy(out, r.techniques)
	return out
}

// Len is the number of techniques in the catalog.
func (r *Registry) Len() int {
	return len(r.techniques)
}

// Get looks a technique up by id.
func (r *Registry) Get(id string) (Technique, error) {
	i, ok := r.index[id]
	if !ok {
		return Technique{}, &TechniqueError{Op: "get", ID: id, Err: ErrInvalidTechnique}
	}
	return r.techniques[i], nil
}

// At returns the technique at position i, wrapping around in both directions.
func (r *Registry) At(i int) Technique {
	n := len(r.techniques)
	i %= n
	if i < 0 {
		i += n
	}
	return r.techniques[i]
}

// Index returns the catalog position of id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Default returns the first technique in the catalog.
func (r *Registry) Default() Technique {
	return r.techniques[0]
}

// Resolve returns the technique for id, falling back to Default when id is
// empty or unknown. The second value reports whether id was found.
func (r *Registry) Resolve(id string) (Technique, bool) {
	if t, err := r.Get(id); err == nil {
		return t, true
	}
	return r.Default(), false
}
