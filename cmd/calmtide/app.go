package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/calmtide/internal/breath"
	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/database"
	"github.com/akyairhashvil/calmtide/internal/logger"
	"github.com/spf13/cobra"
)

// app holds the resources shared by the commands.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *database.Database
	registry *breath.Registry
}

func openApp(ctx context.Context, flags *config.Config) (*app, error) {
	cfg, err := config.Load(*flags)
	if err != nil {
		return nil, err
	}
	log, err := logger.NewFile(cfg.LogFile, config.AppName, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	registry, err := cfg.Catalog()
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	db, err := database.Open(ctx, cfg.DBPath, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	log.Info().
		Str("db", db.Path()).
		Int("techniques", registry.Len()).
		Msg("started")
	return &app{cfg: cfg, log: log, db: db, registry: registry}, nil
}

func (a *app) Close() error {
	err := a.db.Close()
	return errors.Join(err, a.log.Close())
}

// preference resolves a user choice: an explicit flag or environment value
// wins, then the saved setting, then the configured default.
func (a *app) preference(ctx context.Context, cmd *cobra.Command, flag, envKey, settingKey, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return fallback
	}
	if _, ok := os.LookupEnv(config.EnvPrefix + envKey); ok {
		return fallback
	}
	if saved, ok := a.db.GetSetting(ctx, settingKey); ok && saved != "" {
		return saved
	}
	return fallback
}

func (a *app) startTechnique(ctx context.Context, cmd *cobra.Command) breath.Technique {
	id := a.preference(ctx, cmd, "technique", "DEFAULT_TECHNIQUE", database.SettingLastTechnique, a.cfg.DefaultTechnique)
	t, ok := a.registry.Resolve(id)
	if !ok {
		a.log.Warn().Str("technique", id).Msg("unknown technique, using default")
	}
	return t
}

func (a *app) theme(ctx context.Context, cmd *cobra.Command) string {
	return a.preference(ctx, cmd, "theme", "THEME", database.SettingTheme, a.cfg.Theme)
}

func withApp(flags *config.Config, run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), flags)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "close: %v\n", cerr)
			}
		}()
		return run(cmd, args, a)
	}
}
