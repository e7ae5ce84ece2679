package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/painlog"
)

// TodayOptions holds flags for the today command.
type TodayOptions struct {
	*RootOptions
	Date string
}

// todayData is the JSON payload for the today command.
type todayData struct {
	Date     string            `json:"date"`
	Slots    map[string]string `json:"slots"`
	Exercise bool              `json:"exercise"`
}

// NewTodayCommand creates the today command.
func NewTodayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TodayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day's recorded entries",
		Long: `Show the recorded pain levels and training mark for a day.

Example:
  paintrack today
  paintrack today --date 2025-04-18`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "day to show (yyyy-MM-dd), default today")

	return cmd
}

func runToday(opts *TodayOptions, cmd *cobra.Command) error {
	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	at, err := resolveInstant(opts.Date, a.tracker)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid date", err)
	}

	day := painlog.DayOf(at)
	rec := a.tracker.Lookup(at)

	if opts.Format == "json" {
		data := todayData{
			Date:     day.String(),
			Slots:    map[string]string{},
			Exercise: rec.Trained(),
		}
		for _, slot := range painlog.Slots() {
			if level, ok := rec.Level(slot); ok {
				data.Slots[slot.String()] = level.String()
			}
		}
		return a.out.Success(data)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", day)
	for _, slot := range painlog.Slots() {
		if level, ok := rec.Level(slot); ok {
			fmt.Fprintf(&b, "  %-10s %s\n", slot.String(), level)
		} else {
			fmt.Fprintf(&b, "  %-10s not logged\n", slot.String())
		}
	}
	if rec.Trained() {
		b.WriteString("  Training   yes")
	} else {
		b.WriteString("  Training   no")
	}
	return a.out.Text(b.String())
}
