package config

import "errors"

var (
	// ErrInvalidConfig indicates a resolved configuration that cannot start
	// the application.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidTechniquesFile indicates a techniques file that cannot be
	// parsed or contains invalid techniques.
	ErrInvalidTechniquesFile = errors.New("invalid techniques file")
)
