package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/database"
	"github.com/akyairhashvil/calmtide/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newHistoryCmd(flags *config.Config) *cobra.Command {
	var (
		limit     int
		technique string
		days      int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded breathing sessions",
		RunE: withApp(flags, func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			q := database.NewSessionQuery().WhereTechnique(technique).Limit(limit)
			if days > 0 {
				q.WhereSince(time.Now().AddDate(0, 0, -days))
			}
			if asJSON {
				return a.db.ExportSessions(ctx, out, q)
			}
			sessions, err := a.db.QuerySessions(ctx, q)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				if technique != "" || days > 0 {
					fmt.Fprintln(out, "No matching sessions.")
					return nil
				}
				fmt.Fprintln(out, "No sessions recorded yet.")
				return nil
			}
			stats, err := a.db.SessionStats(ctx)
			if err != nil {
				return err
			}

			totals := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("TECHNIQUE", "SESSIONS", "TIME", "CYCLES")
			for _, s := range stats {
				totals.Row(s.TechniqueName, strconv.Itoa(s.Sessions), util.FormatDuration(s.Total()), strconv.Itoa(s.TotalCycles))
			}
			fmt.Fprintln(out, totals.String())

			recent := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("STARTED", "TECHNIQUE", "LENGTH", "CYCLES", "ENDED BY")
			for _, s := range sessions {
				recent.Row(
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					s.TechniqueName,
					util.FormatClock(s.Duration()),
					strconv.Itoa(s.Cycles),
					string(s.Status),
				)
			}
			fmt.Fprintln(out, recent.String())
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", config.HistoryLimit, "Number of sessions to show (0 for all)")
	cmd.Flags().StringVar(&technique, "only", "", "Only show sessions of this technique id")
	cmd.Flags().IntVar(&days, "days", 0, "Only show sessions from the last N days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the matching sessions as JSON")
	cmd.AddCommand(newHistoryClearCmd(flags))
	return cmd
}

func newHistoryClearCmd(flags *config.Config) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded sessions",
		RunE: withApp(flags, func(cmd *cobra.Command, args []string, a *app) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, "Delete all recorded sessions? [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if reply := strings.ToLower(strings.TrimSpace(answer)); reply != "y" && reply != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}
			n, err := a.db.ClearSessions(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Info().Int64("removed", n).Msg("history cleared")
			fmt.Fprintf(out, "Removed %s.\n", util.Plural(int(n), "session", "sessions"))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
