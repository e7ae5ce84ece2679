package painlog

// ColorsForDay returns the three display colors for a calendar cell, in
// Morning, Afternoon, Night order.
//
// A day strictly after today returns the placeholder triple regardless
// of log contents: future days are not loggable. A past day with no
// slot entries collapses to the same placeholder triple, making it
// indistinguishable from a future day. That matches the observed
// calendar behavior and is preserved deliberately; see DESIGN.md.
func ColorsForDay(l *Log, day, today Day) [slotCount]Color {
	if day.After(today) {
		return placeholderTriple()
	}
	rec := l.Lookup(day)
	if !rec.Logged() {
		return placeholderTriple()
	}
	var colors [slotCount]Color
	for i, slot := range Slots() {
		if level, ok := rec.Level(slot); ok {
			colors[i] = level.Color()
		} else {
			colors[i] = ColorUnlogged
		}
	}
	return colors
}

func placeholderTriple() [slotCount]Color {
	return [slotCount]Color{ColorPlaceholder, ColorPlaceholder, ColorPlaceholder}
}
