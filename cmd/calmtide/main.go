package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Config{}
	breathe := newBreatheCmd(flags)

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Guided breathing in the terminal",
		Long: `calmtide paces a breathing technique one second at a time:
inhale, hold, exhale, hold. Sessions are kept in a local history.

Running calmtide without a command starts the interactive breathing screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          breathe.RunE,
	}
	rootCmd.Flags().AddFlagSet(breathe.Flags())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.DataDir, "data-dir", "", "Directory for the history database and log (env CALMTIDE_DATA_DIR)")
	pf.StringVar(&flags.DBPath, "db", "", "History database path (env CALMTIDE_DB_PATH)")
	pf.StringVar(&flags.TechniquesFile, "techniques", "", "YAML file with extra techniques (env CALMTIDE_TECHNIQUES_FILE)")
	pf.StringVar(&flags.DefaultTechnique, "technique", "", "Technique to start with (env CALMTIDE_DEFAULT_TECHNIQUE)")
	pf.StringVar(&flags.Theme, "theme", "", "Color theme: default|dracula (env CALMTIDE_THEME)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level (env CALMTIDE_LOG_LEVEL)")
	pf.StringVar(&flags.LogFile, "log-file", "", "Log file path (env CALMTIDE_LOG_FILE)")

	rootCmd.AddCommand(breathe)
	rootCmd.AddCommand(newTechniquesCmd(flags))
	rootCmd.AddCommand(newHistoryCmd(flags))
	rootCmd.AddCommand(newReportCmd(flags))
	rootCmd.AddCommand(newThemeCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
