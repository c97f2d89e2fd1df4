package main

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/calmtide/internal/config"
	"github.com/akyairhashvil/calmtide/internal/database"
	"github.com/akyairhashvil/calmtide/internal/tui"
	"github.com/spf13/cobra"
)

func newThemeCmd(flags *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or save the color theme",
		Long: `Without an argument, print the available themes and mark the one in
use. With a name, save it as the theme for future sessions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: withApp(flags, func(cmd *cobra.Command, args []string, a *app) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				current := a.theme(cmd.Context(), cmd)
				for _, name := range tui.ThemeNames() {
					marker := " "
					if name == current {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s\n", marker, name)
				}
				return nil
			}
			name := strings.ToLower(args[0])
			if _, ok := tui.Themes[name]; !ok {
				return fmt.Errorf("%w: unknown theme %q (have %s)", config.ErrInvalidConfig, name, strings.Join(tui.ThemeNames(), ", "))
			}
			if err := a.db.SetSetting(cmd.Context(), database.SettingTheme, name); err != nil {
				return err
			}
			fmt.Fprintf(out, "Theme set to %s.\n", name)
			return nil
		}),
	}
}
