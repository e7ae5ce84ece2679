package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// exportFileName is the fixed default export file name.
const exportFileName = "PainLog.csv"

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Out string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the pain log as CSV",
		Long: `Export the full pain log as CSV.

Columns: Date, Morning, Afternoon, Night (raw level values 0-3) and
Exercise (1 for training days). By default the file is written as
PainLog.csv in the configured export directory; use --out to choose
a path, or --out - to write to stdout.

Example:
  paintrack export
  paintrack export --out ./pain.csv
  paintrack export --out -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output path, or - for stdout (default PainLog.csv in the export directory)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	a, err := openApp(cmd.Context(), opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if opts.Out == "-" {
		if err := a.tracker.ExportCSV(cmd.OutOrStdout()); err != nil {
			return WrapExitError(ExitFailure, "export failed", err)
		}
		return nil
	}

	path := opts.Out
	if path == "" {
		path = filepath.Join(a.cfg.ExportDir, exportFileName)
	}

	// Export failure is a visible command failure, never silent.
	f, err := os.Create(path)
	if err != nil {
		return WrapExitError(ExitFailure, "export failed", err)
	}
	if err := a.tracker.ExportCSV(f); err != nil {
		f.Close()
		return WrapExitError(ExitFailure, "export failed", err)
	}
	if err := f.Close(); err != nil {
		return WrapExitError(ExitFailure, "export failed", err)
	}

	return a.out.Success(fmt.Sprintf("Exported pain log to %s", path))
}
