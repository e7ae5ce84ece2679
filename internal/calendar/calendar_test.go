package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/paintrack/internal/painlog"
)

// plainRender renders with color stripped and an unstyled theme so the
// output is stable plain text regardless of the test terminal.
func plainRender(t *testing.T, l *painlog.Log, year int, month time.Month, today painlog.Day) string {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	return Render(l, year, month, today, Theme{})
}

func TestRender_April2025(t *testing.T) {
	l := painlog.NewLog()
	today := painlog.NewDay(2025, time.April, 18)
	l.Record(today, painlog.SlotMorning, painlog.LevelModerate)

	got := plainRender(t, l, 2025, time.April, today)

	want := strings.Join([]string{
		"April 2025",
		"Mo     Tu     We     Th     Fr     Sa     Su",
		"        1 ···  2 ···  3 ···  4 ···  5 ···  6 ··· ",
		" 7 ···  8 ···  9 ··· 10 ··· 11 ··· 12 ··· 13 ··· ",
		"14 ··· 15 ··· 16 ··· 17 ··· 18 ▄·· 19 ··· 20 ··· ",
		"21 ··· 22 ··· 23 ··· 24 ··· 25 ··· 26 ··· 27 ··· ",
		"28 ··· 29 ··· 30 ··· ",
		"▄ None  ▄ Mild  ▄ Moderate  ▄ Severe",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_EmptyAndFutureDaysLookAlike(t *testing.T) {
	l := painlog.NewLog()
	today := painlog.NewDay(2025, time.April, 18)

	got := plainRender(t, l, 2025, time.April, today)
	lines := strings.Split(got, "\n")

	// 17th is past and empty, the 25th is future: both placeholder.
	require.Contains(t, lines[4], "17 ··· ")
	require.Contains(t, lines[5], "25 ··· ")
}

func TestRender_AllSlotsLogged(t *testing.T) {
	l := painlog.NewLog()
	today := painlog.NewDay(2025, time.April, 18)
	day := painlog.NewDay(2025, time.April, 10)
	l.Record(day, painlog.SlotMorning, painlog.LevelNone)
	l.Record(day, painlog.SlotAfternoon, painlog.LevelMild)
	l.Record(day, painlog.SlotNight, painlog.LevelSevere)

	got := plainRender(t, l, 2025, time.April, today)
	assert.Contains(t, got, "10 ▄▄▄ ")
}

func TestRender_MonthStartingOnMonday(t *testing.T) {
	// September 2025 starts on a Monday: no leading gap.
	l := painlog.NewLog()
	today := painlog.NewDay(2025, time.September, 15)

	got := plainRender(t, l, 2025, time.September, today)
	lines := strings.Split(got, "\n")
	require.True(t, strings.HasPrefix(lines[2], " 1 "), "first cell starts the row: %q", lines[2])
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, LightTheme(), ThemeByName("light"))
	assert.Equal(t, DarkTheme(), ThemeByName("dark"))
	assert.Equal(t, DarkTheme(), ThemeByName(""), "unknown names fall back to dark")
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 0, mondayIndex(time.Monday))
	assert.Equal(t, 5, mondayIndex(time.Saturday))
	assert.Equal(t, 6, mondayIndex(time.Sunday))
}
