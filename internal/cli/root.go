package cli

import (
	"os"
	"strings"
	"time"

	"calgrid/internal/calendar"
	"calgrid/internal/format"
	"calgrid/internal/render"

	"github.com/spf13/cobra"
)

// nowFunc is the clock used to decide the current month and day.
var nowFunc = time.Now

type App struct {
	Year    int
	Month   int
	Lang    string
	Format  string
	Pretty  bool
	NoColor bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "calgrid",
		Short:        "Print the current month as a calendar grid",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Current month
  calgrid

  # Another month, Portuguese labels
  calgrid --year 2024 --month 2 --lang pt

  # Machine-readable
  calgrid --format json --pretty

  # Interactive browser
  calgrid browse
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := nowFunc()
			m, err := app.month(cmd, now)
			if err != nil {
				return err
			}
			if format.Structured(app.Format) {
				return format.Write(cmd.OutOrStdout(), newMonthPayload(m, app.lang()), app.Format, app.Pretty)
			}
			if f := strings.ToLower(strings.TrimSpace(app.Format)); f != "" && f != "text" {
				return errUsage("unknown format: %s (want text|json|edn)", app.Format)
			}
			return render.Write(cmd.OutOrStdout(), m, app.renderOptions())
		},
	}

	cmd.PersistentFlags().StringVar(&app.Lang, "lang", envOr("CALGRID_LANG", "en"), "Label language (en|pt)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", envOr("NO_COLOR", "") != "", "Disable colors and text styling")

	cmd.PersistentFlags().IntVar(&app.Year, "year", 0, "Year to show (default: current year)")
	cmd.PersistentFlags().IntVar(&app.Month, "month", 0, "Month to show, 1-12 (default: current month)")
	cmd.Flags().StringVar(&app.Format, "format", envOr("CALGRID_FORMAT", "text"), "Output format (text|json|edn)")
	cmd.Flags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print json/edn output")

	cmd.AddCommand(newBrowseCmd(app))

	return cmd
}

// month resolves --year/--month against now. Unset flags fall back to now.
func (app *App) month(cmd *cobra.Command, now time.Time) (calendar.Month, error) {
	year, month := now.Year(), int(now.Month())
	if cmd.Flags().Changed("year") {
		year = app.Year
	}
	if cmd.Flags().Changed("month") {
		if !calendar.ValidMonth(app.Month) {
			return calendar.Month{}, errUsage("invalid --month %d (want 1-12)", app.Month)
		}
		month = app.Month
	}
	return calendar.NewMonth(year, month, now), nil
}

func (app *App) lang() calendar.Lang {
	return calendar.ParseLang(app.Lang)
}

func (app *App) renderOptions() render.Options {
	return render.Options{Lang: app.lang(), Color: !app.NoColor}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
