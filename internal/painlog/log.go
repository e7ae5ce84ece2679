package painlog

import "sort"

// slotEntry is one slot's state within a DayRecord. Logged distinguishes
// "never logged" from an explicit LevelNone entry.
type slotEntry struct {
	level  Level
	logged bool
}

// DayRecord holds one day's entries: at most one level per slot, plus
// the day's training flag. The zero value is an empty record.
//
// DayRecord has value semantics; Log hands out copies on read.
type DayRecord struct {
	slots   [slotCount]slotEntry
	trained bool
}

// Level returns the level logged for the slot, and whether the slot was
// logged at all.
func (r DayRecord) Level(s Slot) (Level, bool) {
	if s < 0 || int(s) >= slotCount {
		return 0, false
	}
	e := r.slots[s]
	return e.level, e.logged
}

// Logged reports whether at least one slot has an entry. Training alone
// does not count: row existence in exports is governed by slot entries.
func (r DayRecord) Logged() bool {
	for _, e := range r.slots {
		if e.logged {
			return true
		}
	}
	return false
}

// Trained reports the day's training flag.
func (r DayRecord) Trained() bool {
	return r.trained
}

// Log is the full pain history: a mapping from calendar day to DayRecord.
// Iteration order for display and export is ascending day order via Days.
type Log struct {
	days map[Day]DayRecord
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{days: make(map[Day]DayRecord)}
}

// Record upserts a level into the day's slot, creating the DayRecord if
// absent. Last write wins; no history is kept. Always succeeds.
func (l *Log) Record(day Day, slot Slot, level Level) {
	if slot < 0 || int(slot) >= slotCount {
		return
	}
	rec := l.days[day]
	rec.slots[slot] = slotEntry{level: level, logged: true}
	l.days[day] = rec
}

// SetTrained upserts the day's training flag.
func (l *Log) SetTrained(day Day, trained bool) {
	rec := l.days[day]
	rec.trained = trained
	l.days[day] = rec
}

// Lookup returns the record for the day, or an empty record if the day
// was never logged. Pure read.
func (l *Log) Lookup(day Day) DayRecord {
	return l.days[day]
}

// Contains reports whether the day has a record.
func (l *Log) Contains(day Day) bool {
	_, ok := l.days[day]
	return ok
}

// Days returns all recorded days in ascending order.
func (l *Log) Days() []Day {
	days := make([]Day, 0, len(l.days))
	for d := range l.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Len returns the number of recorded days.
func (l *Log) Len() int {
	return len(l.days)
}
