// Package calendar renders the month view: a seven-column grid with one
// cell per day, each cell carrying the day number and a three-glyph
// Morning/Afternoon/Night severity strip colored via the painlog
// display colors.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/paintrack/internal/painlog"
)

const (
	// cellWidth fits "dd ███" plus a trailing gap.
	cellWidth = 7
	// glyphLogged marks a slot with a recorded level.
	glyphLogged = "▄"
	// glyphEmpty marks an unlogged slot or a placeholder day.
	glyphEmpty = "·"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Theme holds the non-severity styles of the grid. Severity colors come
// from the painlog levels and are not themeable.
type Theme struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Today       lipgloss.Style
	Placeholder lipgloss.Style
}

// DarkTheme returns the default theme for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Today:       lipgloss.NewStyle().Bold(true).Underline(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(string(painlog.ColorPlaceholder))),
	}
}

// LightTheme returns the theme for light terminals.
func LightTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("#101F38")),
		Today:       lipgloss.NewStyle().Bold(true).Underline(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD")),
	}
}

// ThemeByName resolves a config theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Render produces the month grid for the given year and month, judging
// future days against today. Weeks start on Monday.
func Render(l *painlog.Log, year int, month time.Month, today painlog.Day, theme Theme) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", month, year)
	b.WriteString(theme.Title.Render(title))
	b.WriteByte('\n')

	for i, wd := range weekdayHeader {
		cell := wd
		if i < len(weekdayHeader)-1 {
			cell = pad(cell, cellWidth)
		}
		b.WriteString(theme.Header.Render(cell))
	}
	b.WriteByte('\n')

	day := painlog.NewDay(year, month, 1)
	col := mondayIndex(day.Weekday())
	b.WriteString(strings.Repeat(" ", col*cellWidth))

	for day.Month() == month {
		b.WriteString(renderCell(l, day, today, theme))
		col++
		if col == 7 {
			b.WriteByte('\n')
			col = 0
		}
		day = day.Next()
	}
	if col != 0 {
		b.WriteByte('\n')
	}

	b.WriteString(legend())
	return b.String()
}

// renderCell produces one fixed-width day cell: the day number followed
// by the severity strip from ColorsForDay.
func renderCell(l *painlog.Log, day, today painlog.Day, theme Theme) string {
	number := fmt.Sprintf("%2d", day.DayOfMonth())
	if day == today {
		number = theme.Today.Render(number)
	}

	var strip strings.Builder
	for _, color := range painlog.ColorsForDay(l, day, today) {
		switch color {
		case painlog.ColorPlaceholder:
			strip.WriteString(theme.Placeholder.Render(glyphEmpty))
		case painlog.ColorUnlogged:
			strip.WriteString(glyphEmpty)
		default:
			strip.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(string(color))).Render(glyphLogged))
		}
	}

	return number + " " + strip.String() + " "
}

// legend lists each level label in its display color.
func legend() string {
	parts := make([]string, 0, 4)
	for _, level := range painlog.Levels() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(string(level.Color())))
		parts = append(parts, style.Render(glyphLogged)+" "+level.String())
	}
	return strings.Join(parts, "  ")
}

// mondayIndex maps a weekday to its Monday-first column (Mo=0 .. Su=6).
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// pad right-pads s with spaces to width columns. Styled cells are padded
// before styling, so ANSI sequences never skew the count.
func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
