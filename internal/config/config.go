// Package config resolves calmtide settings from command-line flags,
// CALMTIDE_* environment variables and built-in defaults, and loads
// user-defined breathing techniques from YAML.
package config

import (
	"path/filepath"
)

// Config is the resolved application configuration. Fields left empty by
// every source are filled from defaults; DBPath and LogFile default to files
// inside DataDir.
type Config struct {
	// DataDir holds the database and log file.
	// Env: CALMTIDE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DBPath overrides the sqlite history location.
	// Env: CALMTIDE_DB_PATH
	DBPath string `env:"DB_PATH"`

	// TechniquesFile is an optional YAML file with extra techniques.
	// Env: CALMTIDE_TECHNIQUES_FILE
	TechniquesFile string `env:"TECHNIQUES_FILE"`

	// DefaultTechnique is the technique selected on start when no
	// preference has been saved.
	// Env: CALMTIDE_DEFAULT_TECHNIQUE
	DefaultTechnique string `env:"DEFAULT_TECHNIQUE"`

	// Theme names the TUI color theme.
	// Env: CALMTIDE_THEME
	Theme string `env:"THEME"`

	// LogLevel is a zerolog level name.
	// Env: CALMTIDE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile overrides the log location.
	// Env: CALMTIDE_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Load merges flags over environment over defaults and validates the result.
func Load(flags Config) (*Config, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withDefaults().
		build()
}

func (cfg *Config) resolvePaths() {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, DBFileName)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, LogFileName)
	}
}
