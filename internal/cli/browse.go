package cli

import (
	"calgrid/internal/tui"

	"github.com/spf13/cobra"
)

// runBrowser starts the interactive program.
var runBrowser = tui.Run

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse months interactively (←/→ to move, t for today, q to quit)",
		Long:  "Browse months interactively. Starts at --year/--month when given, otherwise at the current month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := nowFunc()
			start, err := app.month(cmd, now)
			if err != nil {
				return err
			}
			return runBrowser(now, start, app.renderOptions())
		},
	}
}
