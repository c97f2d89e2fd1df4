package breath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTechnique is returned when a technique id is not in the catalog.
	ErrInvalidTechnique = errors.New("unknown technique")
	// ErrInvariantViolation is returned when a technique cannot drive a cycle.
	ErrInvariantViolation = errors.New("technique invariant violated")
)

// TechniqueError carries the technique id alongside a catalog error.
type TechniqueError struct {
	Op  string
	ID  string
	Err error
}

func (e *TechniqueError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s technique %q: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s technique: %v", e.Op, e.Err)
}

func (e *TechniqueError) Unwrap() error { return e.Err }

func invariantErr(id, format string, args ...any) error {
	return &TechniqueError{
		Op:  "validate",
		ID:  id,
		Err: fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)),
	}
}
