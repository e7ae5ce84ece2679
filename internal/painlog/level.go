package painlog

import (
	"fmt"
	"strings"
)

// Level is an ordered pain severity. The set is closed: exactly four
// levels exist, totally ordered by raw value.
type Level int

const (
	LevelNone Level = iota
	LevelMild
	LevelModerate
	LevelSevere
)

// Color is a display color in #RRGGBB hex form. The empty string is the
// "transparent" placeholder for slots that were never logged.
type Color string

// Placeholder colors used by ColorsForDay.
const (
	// ColorUnlogged marks a slot with no entry on an otherwise logged day.
	ColorUnlogged Color = ""
	// ColorPlaceholder marks future days and days with no entries at all.
	ColorPlaceholder Color = "#9E9E9E"
)

// Levels returns all levels in ascending severity order.
func Levels() [4]Level {
	return [4]Level{LevelNone, LevelMild, LevelModerate, LevelSevere}
}

// String returns the fixed display label for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelMild:
		return "Mild"
	case LevelModerate:
		return "Moderate"
	case LevelSevere:
		return "Severe"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Color returns the fixed display color for the level.
func (l Level) Color() Color {
	switch l {
	case LevelNone:
		return "#4CAF50"
	case LevelMild:
		return "#FFEB3B"
	case LevelModerate:
		return "#FF9800"
	case LevelSevere:
		return "#F44336"
	default:
		return ColorUnlogged
	}
}

// Raw returns the level's raw integer value (0-3), the representation
// used in the storage blob and in CSV export.
func (l Level) Raw() int {
	return int(l)
}

// LevelFromRaw converts a raw integer back to a Level.
// Returns false for values outside 0-3; callers drop such values
// rather than treating them as an error (forward-compatibility policy).
func LevelFromRaw(raw int) (Level, bool) {
	if raw < int(LevelNone) || raw > int(LevelSevere) {
		return 0, false
	}
	return Level(raw), true
}

// ParseLevel parses a level from its display label (case-insensitive)
// or its raw integer form ("0"-"3").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return LevelNone, nil
	case "mild", "1":
		return LevelMild, nil
	case "moderate", "2":
		return LevelModerate, nil
	case "severe", "3":
		return LevelSevere, nil
	}
	return 0, fmt.Errorf("unknown pain level %q: must be one of none, mild, moderate, severe", s)
}
