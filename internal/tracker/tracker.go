// Package tracker owns the live pain log: the in-memory model loaded
// once at startup, written back to the store synchronously after every
// mutation, and observed through an explicit notification list.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/paintrack/internal/painlog"
	"github.com/roach88/paintrack/internal/store"
)

// ErrFutureDay is returned when a mutation targets a day strictly
// after today. Future days are not loggable.
var ErrFutureDay = errors.New("cannot log a future day")

// Clock supplies the current instant. Production uses SystemClock;
// tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// EventKind discriminates observer notifications.
type EventKind int

const (
	// EventEntryRecorded fires after a pain entry upsert.
	EventEntryRecorded EventKind = iota
	// EventTrainingSet fires after a training-flag change.
	EventTrainingSet
)

// Event describes one completed mutation.
type Event struct {
	Kind    EventKind
	Day     painlog.Day
	Slot    painlog.Slot  // valid for EventEntryRecorded
	Level   painlog.Level // valid for EventEntryRecorded
	Trained bool          // valid for EventTrainingSet
}

// Tracker binds the in-memory log to its store. Not safe for
// concurrent use; the application is single-user and synchronous.
type Tracker struct {
	log       *painlog.Log
	store     *store.Store
	clock     Clock
	logger    *slog.Logger
	observers []func(Event)
}

// Open loads the pain log from the store. A missing blob starts an
// empty log; a corrupt blob also starts an empty log, with a warning
// logged rather than an error returned (decode failure is non-fatal
// by contract, but never silent).
func Open(ctx context.Context, st *store.Store, clock Clock, logger *slog.Logger) (*Tracker, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	blob, ok, err := st.Get(ctx, store.KeyPainLog)
	if err != nil {
		return nil, fmt.Errorf("load pain log: %w", err)
	}

	log := painlog.NewLog()
	if ok {
		log, err = painlog.Unmarshal(blob)
		if err != nil {
			logger.Warn("pain log blob is corrupt, starting empty", "error", err)
		}
	}

	return &Tracker{
		log:    log,
		store:  st,
		clock:  clock,
		logger: logger,
	}, nil
}

// Subscribe registers an observer invoked after every completed
// mutation. Observers run synchronously in registration order.
func (t *Tracker) Subscribe(fn func(Event)) {
	t.observers = append(t.observers, fn)
}

// Now returns the current instant per the tracker's clock.
func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

// Today returns the current calendar day per the tracker's clock.
func (t *Tracker) Today() painlog.Day {
	return painlog.DayOf(t.clock.Now())
}

// RecordEntry upserts a pain level for the instant's day and the given
// slot, persists the log, journals the mutation and notifies
// observers. Rejects days strictly after today with ErrFutureDay.
func (t *Tracker) RecordEntry(ctx context.Context, at time.Time, slot painlog.Slot, level painlog.Level) error {
	day := painlog.DayOf(at)
	if day.After(t.Today()) {
		return fmt.Errorf("record %s: %w", day, ErrFutureDay)
	}

	t.log.Record(day, slot, level)
	if err := t.persist(ctx); err != nil {
		return fmt.Errorf("record %s: %w", day, err)
	}
	if _, err := t.store.AppendPain(ctx, day, slot, level, t.clock.Now()); err != nil {
		return fmt.Errorf("record %s: %w", day, err)
	}

	t.logger.Debug("entry recorded", "day", day.String(), "slot", slot.String(), "level", level.String())
	t.notify(Event{Kind: EventEntryRecorded, Day: day, Slot: slot, Level: level})
	return nil
}

// SetTrained sets the training flag for the instant's day. Same
// persistence and notification contract as RecordEntry.
func (t *Tracker) SetTrained(ctx context.Context, at time.Time, trained bool) error {
	day := painlog.DayOf(at)
	if day.After(t.Today()) {
		return fmt.Errorf("set training for %s: %w", day, ErrFutureDay)
	}

	t.log.SetTrained(day, trained)
	if err := t.persist(ctx); err != nil {
		return fmt.Errorf("set training for %s: %w", day, err)
	}
	if _, err := t.store.AppendTraining(ctx, day, trained, t.clock.Now()); err != nil {
		return fmt.Errorf("set training for %s: %w", day, err)
	}

	t.logger.Debug("training flag set", "day", day.String(), "trained", trained)
	t.notify(Event{Kind: EventTrainingSet, Day: day, Trained: trained})
	return nil
}

// Lookup returns the record for the instant's day. Pure read.
func (t *Tracker) Lookup(at time.Time) painlog.DayRecord {
	return t.log.Lookup(painlog.DayOf(at))
}

// Colors returns the calendar colors for a day, judged against the
// tracker's current today.
func (t *Tracker) Colors(day painlog.Day) [3]painlog.Color {
	return painlog.ColorsForDay(t.log, day, t.Today())
}

// ExportCSV writes the full log to w in CSV form.
func (t *Tracker) ExportCSV(w io.Writer) error {
	return painlog.WriteCSV(w, t.log)
}

// Log exposes the underlying model for read-only consumers such as the
// calendar renderer.
func (t *Tracker) Log() *painlog.Log {
	return t.log
}

func (t *Tracker) persist(ctx context.Context) error {
	return t.store.Put(ctx, store.KeyPainLog, painlog.Marshal(t.log))
}

func (t *Tracker) notify(e Event) {
	for _, fn := range t.observers {
		fn(e)
	}
}
