package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/paintrack/internal/painlog"
)

func TestJournal_AppendAssignsIncreasingSeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := painlog.NewDay(2025, time.April, 18)
	at := time.Date(2025, time.April, 18, 9, 30, 0, 0, time.UTC)

	e1, err := s.AppendPain(ctx, day, painlog.SlotMorning, painlog.LevelModerate, at)
	if err != nil {
		t.Fatalf("AppendPain() failed: %v", err)
	}
	e2, err := s.AppendTraining(ctx, day, true, at)
	if err != nil {
		t.Fatalf("AppendTraining() failed: %v", err)
	}

	if e1.Seq <= 0 {
		t.Errorf("first seq = %d, expected > 0", e1.Seq)
	}
	if e2.Seq != e1.Seq+1 {
		t.Errorf("second seq = %d, expected %d", e2.Seq, e1.Seq+1)
	}
	if e1.ID == e2.ID {
		t.Error("entries must get distinct ids")
	}
}

func TestJournal_ReadNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, time.April, 18, 9, 30, 0, 0, time.UTC)

	days := []painlog.Day{
		painlog.NewDay(2025, time.April, 16),
		painlog.NewDay(2025, time.April, 17),
		painlog.NewDay(2025, time.April, 18),
	}
	for _, day := range days {
		if _, err := s.AppendPain(ctx, day, painlog.SlotNight, painlog.LevelMild, at); err != nil {
			t.Fatalf("AppendPain() failed: %v", err)
		}
	}

	entries, err := s.ReadJournal(ctx, 0)
	if err != nil {
		t.Fatalf("ReadJournal() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Seq <= entries[i].Seq {
			t.Errorf("entries not in descending seq order: %d then %d", entries[i-1].Seq, entries[i].Seq)
		}
	}
	if entries[0].Day != days[2] {
		t.Errorf("newest entry day = %s, want %s", entries[0].Day, days[2])
	}
}

func TestJournal_ReadLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := painlog.NewDay(2025, time.April, 18)
	at := time.Date(2025, time.April, 18, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := s.AppendPain(ctx, day, painlog.SlotMorning, painlog.LevelMild, at); err != nil {
			t.Fatalf("AppendPain() failed: %v", err)
		}
	}

	entries, err := s.ReadJournal(ctx, 2)
	if err != nil {
		t.Fatalf("ReadJournal() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestJournal_Empty(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.ReadJournal(context.Background(), 10)
	if err != nil {
		t.Fatalf("ReadJournal() failed: %v", err)
	}
	if entries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestJournal_FieldsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day := painlog.NewDay(2025, time.April, 18)
	at := time.Date(2025, time.April, 18, 21, 15, 0, 0, time.UTC)

	if _, err := s.AppendPain(ctx, day, painlog.SlotNight, painlog.LevelSevere, at); err != nil {
		t.Fatalf("AppendPain() failed: %v", err)
	}
	if _, err := s.AppendTraining(ctx, day, true, at); err != nil {
		t.Fatalf("AppendTraining() failed: %v", err)
	}

	entries, err := s.ReadJournal(ctx, 0)
	if err != nil {
		t.Fatalf("ReadJournal() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	training, pain := entries[0], entries[1]
	if training.Kind != KindTraining || !training.Trained {
		t.Errorf("training entry = %+v", training)
	}
	if pain.Kind != KindPain || pain.Slot != painlog.SlotNight || pain.Level != painlog.LevelSevere {
		t.Errorf("pain entry = %+v", pain)
	}
	if !pain.RecordedAt.Equal(at) {
		t.Errorf("recorded_at = %s, want %s", pain.RecordedAt, at)
	}
}

func TestJournal_ClockResumesAfterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()
	day := painlog.NewDay(2025, time.April, 18)
	at := time.Date(2025, time.April, 18, 9, 0, 0, 0, time.UTC)

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	e1, err := s1.AppendPain(ctx, day, painlog.SlotMorning, painlog.LevelMild, at)
	if err != nil {
		t.Fatalf("AppendPain() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	e2, err := s2.AppendPain(ctx, day, painlog.SlotNight, painlog.LevelMild, at)
	if err != nil {
		t.Fatalf("AppendPain() after reopen failed: %v", err)
	}
	if e2.Seq != e1.Seq+1 {
		t.Errorf("seq after reopen = %d, want %d", e2.Seq, e1.Seq+1)
	}
}
