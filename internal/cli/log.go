package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/painlog"
	"github.com/roach88/paintrack/internal/tracker"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Slot string
	Date string
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log <level>",
		Short: "Record a pain level for a time slot",
		Long: `Record a pain level for one of the three daily time slots.

The level is one of none, mild, moderate or severe (or 0-3). The slot
defaults to the one covering the current time of day. Future days
cannot be logged.

Example:
  paintrack log moderate
  paintrack log severe --slot night --date 2025-04-18`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Slot, "slot", "", "time slot (morning|afternoon|night), default by current time")
	cmd.Flags().StringVar(&opts.Date, "date", "", "day to log (yyyy-MM-dd), default today")

	return cmd
}

func runLog(opts *LogOptions, levelArg string, cmd *cobra.Command) error {
	level, err := painlog.ParseLevel(levelArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid level", err)
	}

	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	at, err := resolveInstant(opts.Date, a.tracker)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid date", err)
	}

	slot := painlog.SlotAt(at)
	if opts.Slot != "" {
		slot, err = painlog.ParseSlot(opts.Slot)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid slot", err)
		}
	}

	if err := a.tracker.RecordEntry(cmd.Context(), at, slot, level); err != nil {
		if errors.Is(err, tracker.ErrFutureDay) {
			return WrapExitError(ExitFailure, "day not loggable", err)
		}
		return WrapExitError(ExitCommandError, "failed to record entry", err)
	}

	return a.out.Success(fmt.Sprintf("Logged %s pain for %s (%s)",
		level, painlog.DayOf(at), slot))
}

// resolveInstant turns an optional yyyy-MM-dd flag into an instant:
// noon of the given day, or the tracker's current time when empty.
// Noon keeps the instant safely inside the intended calendar day.
func resolveInstant(date string, tr *tracker.Tracker) (time.Time, error) {
	if date == "" {
		return tr.Now(), nil
	}
	day, err := painlog.ParseDay(date)
	if err != nil {
		return time.Time{}, err
	}
	return day.Time(time.Local).Add(12 * time.Hour), nil
}
