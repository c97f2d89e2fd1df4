package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newTechniquesCmd(flags *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "techniques",
		Short: "List the available breathing techniques",
		Long: `List the built-in techniques followed by those loaded from the
techniques file. The pattern lists the phase lengths in seconds
(inhale-hold-exhale-hold), leaving out holds of zero seconds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*flags)
			if err != nil {
				return err
			}
			registry, err := cfg.Catalog()
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "ID", "NAME", "PATTERN", "CYCLE")
			for i, tech := range registry.List() {
				t.Row(
					strconv.Itoa(i+1),
					tech.ID,
					tech.Name,
					tech.Pattern(),
					util.FormatDuration(time.Duration(tech.CycleLength())*time.Second),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}
