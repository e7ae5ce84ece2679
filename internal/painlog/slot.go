package painlog

import (
	"fmt"
	"strings"
	"time"
)

// Slot is one of the three fixed daily periods. The set is closed and
// ordered: Morning, Afternoon, Night.
type Slot int

const (
	SlotMorning Slot = iota
	SlotAfternoon
	SlotNight
)

const slotCount = 3

// Slots returns the three slots in display order.
func Slots() [slotCount]Slot {
	return [slotCount]Slot{SlotMorning, SlotAfternoon, SlotNight}
}

// String returns the slot's fixed identifier, used as the storage key
// and the CSV column name.
func (s Slot) String() string {
	switch s {
	case SlotMorning:
		return "Morning"
	case SlotAfternoon:
		return "Afternoon"
	case SlotNight:
		return "Night"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// SlotFromName converts a stored slot identifier back to a Slot.
// Returns false for unrecognized names; callers drop such entries.
func SlotFromName(name string) (Slot, bool) {
	switch name {
	case "Morning":
		return SlotMorning, true
	case "Afternoon":
		return SlotAfternoon, true
	case "Night":
		return SlotNight, true
	}
	return 0, false
}

// ParseSlot parses a slot from user input, case-insensitively.
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return SlotMorning, nil
	case "afternoon":
		return SlotAfternoon, nil
	case "night":
		return SlotNight, nil
	}
	return 0, fmt.Errorf("unknown time slot %q: must be morning, afternoon or night", s)
}

// SlotAt returns the slot covering the given instant's time of day:
// Morning until noon, Afternoon until 18:00, Night otherwise.
func SlotAt(t time.Time) Slot {
	switch h := t.Hour(); {
	case h < 12:
		return SlotMorning
	case h < 18:
		return SlotAfternoon
	default:
		return SlotNight
	}
}
