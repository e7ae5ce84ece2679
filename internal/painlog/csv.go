package painlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed export header. Column order mirrors the slot
// display order.
var csvHeader = []string{"Date", "Morning", "Afternoon", "Night", "Exercise"}

// WriteCSV writes the log to w in CSV form: the header row followed by
// one row per day with at least one slot entry, in ascending date order.
//
// Slot fields carry the raw level value (0-3). An unlogged slot renders
// as 0, the same literal as an explicit "None" entry; the distinction
// exists in the model but collapses at this boundary. The Exercise
// column is 1 when the day's training flag is set, else 0. A trained
// day with no pain entries emits no row.
func WriteCSV(w io.Writer, l *Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, day := range l.Days() {
		rec := l.Lookup(day)
		if !rec.Logged() {
			continue
		}
		row := make([]string, 0, len(csvHeader))
		row = append(row, day.String())
		for _, slot := range Slots() {
			level, _ := rec.Level(slot) // unlogged reads as LevelNone
			row = append(row, strconv.Itoa(level.Raw()))
		}
		row = append(row, boolField(rec.Trained()))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", day, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
