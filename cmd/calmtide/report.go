package main

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/report"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/spf13/cobra"
)

func newReportCmd(flags *config.Config) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF summary of the session history",
		RunE: withApp(flags, func(cmd *cobra.Command, args []string, a *app) error {
			if dir == "" {
				dir = util.ReportsDir(config.AppName)
			}
			path, err := report.GeneratePDF(cmd.Context(), a.db, dir, time.Now())
			if err != nil {
				return err
			}
			a.log.Info().Str("path", path).Msg("report written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "Output directory (default: Documents/calmtide)")
	return cmd
}
