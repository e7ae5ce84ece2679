package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/paintrack/internal/testutil"
)

// testNow pins "today" to 2025-04-18 for all command tests.
var testNow = time.Date(2025, time.April, 18, 12, 0, 0, 0, time.UTC)

// newTestOptions builds root options against a throwaway database and
// a fixed clock. The config path points at a nonexistent file so the
// defaults apply.
func newTestOptions(t *testing.T) *RootOptions {
	t.Helper()
	dir := t.TempDir()
	return &RootOptions{
		Format:     "text",
		Database:   filepath.Join(dir, "test.db"),
		ConfigPath: filepath.Join(dir, "no-config.yaml"),
		Clock:      testutil.NewFixedClock(testNow),
	}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLogCommand_RecordsEntry(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewLogCommand(opts), "moderate", "--slot", "morning", "--date", "2025-04-18")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged Moderate pain for 2025-04-18 (Morning)")

	// The entry is visible to a fresh command over the same database.
	out, err = execute(t, NewTodayCommand(opts), "--date", "2025-04-18")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning    Moderate")
	assert.Contains(t, out, "Afternoon  not logged")
}

func TestLogCommand_DefaultSlotFromClock(t *testing.T) {
	opts := newTestOptions(t)

	// testNow is noon, which falls in the Afternoon slot.
	out, err := execute(t, NewLogCommand(opts), "mild")
	require.NoError(t, err)
	assert.Contains(t, out, "(Afternoon)")
}

func TestLogCommand_RejectsFutureDate(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewLogCommand(opts), "mild", "--date", "2025-04-19")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLogCommand_RejectsBadLevel(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewLogCommand(opts), "agonizing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTrainCommand_SetAndClear(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewTrainCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Marked 2025-04-18 as a training day")

	out, err = execute(t, NewTodayCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Training   yes")

	_, err = execute(t, NewTrainCommand(opts), "--off")
	require.NoError(t, err)

	out, err = execute(t, NewTodayCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Training   no")
}

func TestExportCommand_Stdout(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewLogCommand(opts), "moderate", "--slot", "morning", "--date", "2025-04-18")
	require.NoError(t, err)

	out, err := execute(t, NewExportCommand(opts), "--out", "-")
	require.NoError(t, err)
	assert.Equal(t, "Date,Morning,Afternoon,Night,Exercise\n2025-04-18,2,0,0,0\n", out)
}

func TestExportCommand_WritesFile(t *testing.T) {
	opts := newTestOptions(t)
	path := filepath.Join(t.TempDir(), "PainLog.csv")

	_, err := execute(t, NewLogCommand(opts), "severe", "--slot", "night", "--date", "2025-04-17")
	require.NoError(t, err)

	out, err := execute(t, NewExportCommand(opts), "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported pain log to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Morning,Afternoon,Night,Exercise\n2025-04-17,0,0,3,0\n", string(data))
}

func TestExportCommand_FailureIsVisible(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewExportCommand(opts), "--out", "/nonexistent/dir/PainLog.csv")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "export failed")
}

func TestHistoryCommand_Empty(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewHistoryCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "No activity recorded yet.")
}

func TestHistoryCommand_NewestFirst(t *testing.T) {
	opts := newTestOptions(t)

	_, err := execute(t, NewLogCommand(opts), "mild", "--slot", "morning", "--date", "2025-04-17")
	require.NoError(t, err)
	_, err = execute(t, NewTrainCommand(opts))
	require.NoError(t, err)

	out, err := execute(t, NewHistoryCommand(opts))
	require.NoError(t, err)

	lines := nonEmptyLines(out)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "training   on")
	assert.Contains(t, lines[1], "Morning    Mild")
}

func TestMonthCommand_RendersCalendar(t *testing.T) {
	opts := newTestOptions(t)

	out, err := execute(t, NewMonthCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "April 2025")
	assert.Contains(t, out, "Mo")

	out, err = execute(t, NewMonthCommand(opts), "--offset", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "March 2025")
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
