package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/calendar"
)

// MonthOptions holds flags for the month command.
type MonthOptions struct {
	*RootOptions
	Offset int
}

// NewMonthCommand creates the month command.
func NewMonthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MonthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month calendar colored by severity",
		Long: `Show a month calendar with each day colored by its recorded
pain severity per time slot. Future days and days without entries
show as placeholders.

The --offset flag navigates relative to the current month: -1 is
last month, 1 is next month.

Example:
  paintrack month
  paintrack month --offset -1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "month offset from the current month")

	return cmd
}

func runMonth(opts *MonthOptions, cmd *cobra.Command) error {
	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	today := a.tracker.Today()
	// Month navigation is pure view state: an offset from now, never
	// persisted.
	target := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, opts.Offset, 0)

	grid := calendar.Render(
		a.tracker.Log(),
		target.Year(),
		target.Month(),
		today,
		calendar.ThemeByName(a.cfg.Theme),
	)
	return a.out.Text(grid)
}
