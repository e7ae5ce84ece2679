package painlog

import (
	"fmt"
	"time"
)

// dayFormat is the storage and CSV date layout.
const dayFormat = "2006-01-02"

// Day identifies one calendar day: an instant truncated to midnight in
// its own location. Day is comparable and usable as a map key; two
// instants within the same local calendar day yield equal Days.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf truncates an instant to its calendar day.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// NewDay constructs a Day from its components.
func NewDay(year int, month time.Month, day int) Day {
	// Normalize through time.Date so e.g. Feb 30 rolls over consistently.
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a yyyy-MM-dd date string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns the day's midnight in the given location.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// String formats the day as yyyy-MM-dd.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Year returns the day's year.
func (d Day) Year() int { return d.year }

// Month returns the day's month.
func (d Day) Month() time.Month { return d.month }

// DayOfMonth returns the day's day-of-month (1-31).
func (d Day) DayOfMonth() int { return d.day }

// Before reports whether d is strictly before o.
func (d Day) Before(o Day) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// After reports whether d is strictly after o.
func (d Day) After(o Day) bool {
	return o.Before(d)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day's weekday.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}
