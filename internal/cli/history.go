package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// historyEntry is the JSON payload for one journal row.
type historyEntry struct {
	Seq        int64  `json:"seq"`
	Day        string `json:"day"`
	Kind       string `json:"kind"`
	Slot       string `json:"slot,omitempty"`
	Level      string `json:"level,omitempty"`
	Trained    *bool  `json:"trained,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent log activity",
		Long: `Show the most recent mutations from the journal, newest first.

The journal is an audit trail of what was recorded when; the log
itself keeps only the latest value per day and slot.

Example:
  paintrack history
  paintrack history --limit 50`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of entries to show (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	entries, err := a.store.ReadJournal(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read journal", err)
	}

	if opts.Format == "json" {
		payload := make([]historyEntry, 0, len(entries))
		for _, e := range entries {
			he := historyEntry{
				Seq:        e.Seq,
				Day:        e.Day.String(),
				Kind:       string(e.Kind),
				RecordedAt: e.RecordedAt.Format(time.RFC3339),
			}
			if e.Kind == store.KindPain {
				he.Slot = e.Slot.String()
				he.Level = e.Level.String()
			} else {
				trained := e.Trained
				he.Trained = &trained
			}
			payload = append(payload, he)
		}
		return a.out.Success(payload)
	}

	if len(entries) == 0 {
		return a.out.Text("No activity recorded yet.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch e.Kind {
		case store.KindPain:
			fmt.Fprintf(&b, "%s  %s  %-10s %s", e.RecordedAt.Format("2006-01-02 15:04"), e.Day, e.Slot, e.Level)
		case store.KindTraining:
			state := "off"
			if e.Trained {
				state = "on"
			}
			fmt.Fprintf(&b, "%s  %s  training   %s", e.RecordedAt.Format("2006-01-02 15:04"), e.Day, state)
		}
	}
	return a.out.Text(b.String())
}
