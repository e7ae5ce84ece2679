package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/paintrack/internal/painlog"
)

// EntryKind discriminates journal rows.
type EntryKind string

const (
	// KindPain marks a recorded pain entry (day, slot, level).
	KindPain EntryKind = "pain"
	// KindTraining marks a training-flag change (day, trained).
	KindTraining EntryKind = "training"
)

// JournalEntry is one row of the mutation journal.
type JournalEntry struct {
	ID         string
	Seq        int64
	Day        painlog.Day
	Kind       EntryKind
	Slot       painlog.Slot   // valid for KindPain
	Level      painlog.Level  // valid for KindPain
	Trained    bool           // valid for KindTraining
	RecordedAt time.Time      // wall time, display only
}

// AppendPain appends a pain-entry row and returns it with its assigned
// id and seq. IDs are time-sortable UUIDv7, matching the seq order
// under normal operation.
func (s *Store) AppendPain(ctx context.Context, day painlog.Day, slot painlog.Slot, level painlog.Level, at time.Time) (JournalEntry, error) {
	entry := JournalEntry{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Seq:        s.clock.Next(),
		Day:        day,
		Kind:       KindPain,
		Slot:       slot,
		Level:      level,
		RecordedAt: at,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal (id, seq, day, kind, slot, level, trained, recorded_at)
		VALUES (?, ?, ?, 'pain', ?, ?, NULL, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		entry.ID,
		entry.Seq,
		entry.Day.String(),
		entry.Slot.String(),
		entry.Level.Raw(),
		entry.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("append pain entry: %w", err)
	}

	return entry, nil
}

// AppendTraining appends a training-flag row.
func (s *Store) AppendTraining(ctx context.Context, day painlog.Day, trained bool, at time.Time) (JournalEntry, error) {
	entry := JournalEntry{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Seq:        s.clock.Next(),
		Day:        day,
		Kind:       KindTraining,
		Trained:    trained,
		RecordedAt: at,
	}

	trainedInt := 0
	if trained {
		trainedInt = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal (id, seq, day, kind, slot, level, trained, recorded_at)
		VALUES (?, ?, ?, 'training', NULL, NULL, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		entry.ID,
		entry.Seq,
		entry.Day.String(),
		trainedInt,
		entry.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("append training entry: %w", err)
	}

	return entry, nil
}

// ReadJournal returns the most recent journal entries, newest first,
// ordered by seq. limit <= 0 means no limit.
//
// Returns an empty slice (not nil) when the journal is empty.
func (s *Store) ReadJournal(ctx context.Context, limit int) ([]JournalEntry, error) {
	query := `
		SELECT id, seq, day, kind, slot, level, trained, recorded_at
		FROM journal
		ORDER BY seq DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	entries := []JournalEntry{}
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}

	return entries, nil
}

func scanJournalEntry(rows *sql.Rows) (JournalEntry, error) {
	var (
		entry      JournalEntry
		dayStr     string
		kind       string
		slotStr    sql.NullString
		levelRaw   sql.NullInt64
		trainedRaw sql.NullInt64
		recordedAt string
	)
	if err := rows.Scan(&entry.ID, &entry.Seq, &dayStr, &kind, &slotStr, &levelRaw, &trainedRaw, &recordedAt); err != nil {
		return JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}

	day, err := painlog.ParseDay(dayStr)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}
	entry.Day = day
	entry.Kind = EntryKind(kind)

	if entry.Kind == KindPain {
		slot, ok := painlog.SlotFromName(slotStr.String)
		if !ok {
			return JournalEntry{}, fmt.Errorf("scan journal entry: unknown slot %q", slotStr.String)
		}
		level, ok := painlog.LevelFromRaw(int(levelRaw.Int64))
		if !ok {
			return JournalEntry{}, fmt.Errorf("scan journal entry: unknown level %d", levelRaw.Int64)
		}
		entry.Slot = slot
		entry.Level = level
	}
	entry.Trained = trainedRaw.Valid && trainedRaw.Int64 != 0

	at, err := time.Parse(time.RFC3339, recordedAt)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}
	entry.RecordedAt = at

	return entry, nil
}
