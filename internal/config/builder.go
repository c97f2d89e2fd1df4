package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/akyairhashvil/calmtide/internal/util"
)

// configBuilder collects partial configs in priority order; earlier sources
// win because mergo only fills fields that are still empty.
type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.resolvePaths()

	return config, config.Validate()
}

func (b *configBuilder) withFlags(flags Config) *configBuilder {
	b.configs = append(b.configs, &flags)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DataDir:          util.DataDir(AppName),
		DefaultTechnique: DefaultTechniqueID,
		Theme:            DefaultTheme,
		LogLevel:         DefaultLogLevel,
	}
}
