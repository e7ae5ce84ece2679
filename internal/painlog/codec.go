package painlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Marshal encodes the log as a canonical JSON blob:
//
//	{"days":{"2025-04-18":{"Morning":2}},"trained":["2025-04-18"]}
//
// Keys are emitted in sorted order at every level, so encoding the same
// log always yields identical bytes regardless of map iteration order.
// Days with no slot entries appear only in "trained" (when flagged);
// empty, untrained records are not persisted.
func Marshal(l *Log) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"days":{`)

	first := true
	for _, day := range l.Days() {
		rec := l.Lookup(day)
		if !rec.Logged() {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(canonicalString(day.String()))
		buf.WriteByte(':')
		writeDayObject(&buf, rec)
	}

	buf.WriteString(`},"trained":[`)
	writeTrainedList(&buf, l)
	buf.WriteString(`]}`)
	return buf.Bytes()
}

// writeDayObject emits one day's slot map with keys in sorted order.
func writeDayObject(buf *bytes.Buffer, rec DayRecord) {
	names := make([]string, 0, slotCount)
	levels := make(map[string]Level, slotCount)
	for _, slot := range Slots() {
		if level, ok := rec.Level(slot); ok {
			name := slot.String()
			names = append(names, name)
			levels[name] = level
		}
	}
	sort.Strings(names)

	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(canonicalString(name))
		fmt.Fprintf(buf, ":%d", levels[name].Raw())
	}
	buf.WriteByte('}')
}

func writeTrainedList(buf *bytes.Buffer, l *Log) {
	var days []string
	for _, day := range l.Days() {
		if l.Lookup(day).Trained() {
			days = append(days, day.String())
		}
	}
	sort.Strings(days)
	for i, d := range days {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(canonicalString(d))
	}
}

// Unmarshal decodes a blob produced by Marshal. The contract is
// deliberately forgiving:
//
//   - empty input yields an empty log with no error
//   - malformed input yields an empty log and a non-nil error for the
//     caller to report; decoding never fails the caller outright
//   - unrecognized slot names and out-of-range level values are dropped
//     without disturbing other entries in the same record
//   - a legacy blob holding a bare day->slot->level map (no "days"
//     wrapper) is accepted
func Unmarshal(blob []byte) (*Log, error) {
	l := NewLog()
	if len(bytes.TrimSpace(blob)) == 0 {
		return l, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(blob, &top); err != nil {
		return NewLog(), fmt.Errorf("decode pain log: %w", err)
	}

	daysRaw, hasDays := top["days"]
	trainedRaw, hasTrained := top["trained"]
	if !hasDays && !hasTrained {
		// Legacy shape: the whole document is the day map.
		if err := decodeDays(l, blob); err != nil {
			return NewLog(), err
		}
		return l, nil
	}

	if hasDays {
		if err := decodeDays(l, daysRaw); err != nil {
			return NewLog(), err
		}
	}
	if hasTrained {
		if err := decodeTrained(l, trainedRaw); err != nil {
			return NewLog(), err
		}
	}
	return l, nil
}

func decodeDays(l *Log, raw json.RawMessage) error {
	var days map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("decode pain log days: %w", err)
	}
	for dayKey, slots := range days {
		day, err := ParseDay(dayKey)
		if err != nil {
			continue // unrecognized day key, drop
		}
		for slotName, levelRaw := range slots {
			slot, ok := SlotFromName(slotName)
			if !ok {
				continue
			}
			var num json.Number
			if err := json.Unmarshal(levelRaw, &num); err != nil {
				continue
			}
			value, err := num.Int64()
			if err != nil {
				continue
			}
			level, ok := LevelFromRaw(int(value))
			if !ok {
				continue
			}
			l.Record(day, slot, level)
		}
	}
	return nil
}

func decodeTrained(l *Log, raw json.RawMessage) error {
	var days []json.RawMessage
	if err := json.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("decode pain log trained days: %w", err)
	}
	for _, entry := range days {
		var s string
		if err := json.Unmarshal(entry, &s); err != nil {
			continue
		}
		day, err := ParseDay(s)
		if err != nil {
			continue
		}
		l.SetTrained(day, true)
	}
	return nil
}
