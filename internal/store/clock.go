package store

import "sync/atomic"

// Clock is the monotonic logical clock stamping journal rows.
//
// All journal ordering uses seq numbers from this clock, never wall
// time: reopening the database resumes the clock from the highest
// persisted seq, so ordering survives process restarts and clock skew.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the store's single-user design means one caller at a time.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence number.
// Used at Open to resume from the last persisted position.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
