package painlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestColorsForDay_FuturePlaceholder(t *testing.T) {
	l := NewLog()
	today := NewDay(2025, time.April, 18)
	tomorrow := today.Next()

	// Even logged content cannot color a future day.
	l.Record(tomorrow, SlotMorning, LevelSevere)

	want := [3]Color{ColorPlaceholder, ColorPlaceholder, ColorPlaceholder}
	assert.Equal(t, want, ColorsForDay(l, tomorrow, today))
	assert.Equal(t, want, ColorsForDay(l, NewDay(2026, time.January, 1), today))
}

func TestColorsForDay_EmptyPastDayMatchesFuture(t *testing.T) {
	l := NewLog()
	today := NewDay(2025, time.April, 18)
	pastEmpty := NewDay(2025, time.April, 1)

	// A past day with no entries is indistinguishable from a future
	// day. Preserved behavior of the original calendar; see DESIGN.md.
	assert.Equal(t, ColorsForDay(l, today.Next(), today), ColorsForDay(l, pastEmpty, today))
}

func TestColorsForDay_SlotColors(t *testing.T) {
	l := NewLog()
	today := NewDay(2025, time.April, 18)
	day := NewDay(2025, time.April, 10)

	l.Record(day, SlotMorning, LevelModerate)
	l.Record(day, SlotNight, LevelNone)

	got := ColorsForDay(l, day, today)
	assert.Equal(t, LevelModerate.Color(), got[0])
	assert.Equal(t, ColorUnlogged, got[1], "unlogged slot renders transparent")
	assert.Equal(t, LevelNone.Color(), got[2], "explicit none renders its own color")
}

func TestColorsForDay_TodayIsLoggable(t *testing.T) {
	l := NewLog()
	today := NewDay(2025, time.April, 18)
	l.Record(today, SlotAfternoon, LevelMild)

	got := ColorsForDay(l, today, today)
	assert.Equal(t, LevelMild.Color(), got[1])
}

func TestColorsForDay_TrainedOnlyDayCollapses(t *testing.T) {
	l := NewLog()
	today := NewDay(2025, time.April, 18)
	day := NewDay(2025, time.April, 10)
	l.SetTrained(day, true)

	want := [3]Color{ColorPlaceholder, ColorPlaceholder, ColorPlaceholder}
	assert.Equal(t, want, ColorsForDay(l, day, today),
		"a day with training but no pain entries still shows no data")
}
