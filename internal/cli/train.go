package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/painlog"
	"github.com/roach88/paintrack/internal/tracker"
)

// TrainOptions holds flags for the train command.
type TrainOptions struct {
	*RootOptions
	Off  bool
	Date string
}

// NewTrainCommand creates the train command.
func NewTrainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrainOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Mark a day as a training day",
		Long: `Mark a day as a training day, or clear the mark with --off.

The flag is stored per day and exported in the CSV Exercise column.

Example:
  paintrack train
  paintrack train --off --date 2025-04-18`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Off, "off", false, "clear the training mark instead of setting it")
	cmd.Flags().StringVar(&opts.Date, "date", "", "day to mark (yyyy-MM-dd), default today")

	return cmd
}

func runTrain(opts *TrainOptions, cmd *cobra.Command) error {
	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	at, err := resolveInstant(opts.Date, a.tracker)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid date", err)
	}

	trained := !opts.Off
	if err := a.tracker.SetTrained(cmd.Context(), at, trained); err != nil {
		if errors.Is(err, tracker.ErrFutureDay) {
			return WrapExitError(ExitFailure, "day not loggable", err)
		}
		return WrapExitError(ExitCommandError, "failed to set training flag", err)
	}

	day := painlog.DayOf(at)
	if trained {
		return a.out.Success(fmt.Sprintf("Marked %s as a training day", day))
	}
	return a.out.Success(fmt.Sprintf("Cleared training mark for %s", day))
}
