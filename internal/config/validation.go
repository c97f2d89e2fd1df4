package config

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/calmtide/internal/logger"
)

// Validate checks the merged configuration.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("%w: data dir is empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.DefaultTechnique) == "" {
		return fmt.Errorf("%w: default technique is empty", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
