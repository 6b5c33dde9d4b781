package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	runs := []Run{
		{
			ID: "run-1", FileName: "erste.txt", StartedAt: base,
			Duration: 120 * time.Millisecond,
			RawLines: 40, Cleaned: 30, Selected: 12, Ranked: 8,
			Mean: 11.5, Mode: 11, StdDev: 1.2,
		},
		{
			ID: "run-2", FileName: "zweite.txt", StartedAt: base.Add(time.Minute),
			Duration:   300 * time.Millisecond,
			RawLines:   10,
			ErrMessage: "no qualifying sentences",
		},
	}
	for _, run := range runs {
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("RecordRun(%s) error: %v", run.ID, err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d runs, want 2", len(got))
	}
	// Most recent first.
	if got[0].ID != "run-2" || got[1].ID != "run-1" {
		t.Errorf("order = [%s %s], want [run-2 run-1]", got[0].ID, got[1].ID)
	}
	first := got[1]
	if first.FileName != "erste.txt" || first.Ranked != 8 || first.Mean != 11.5 {
		t.Errorf("round trip lost fields: %+v", first)
	}
	if !first.StartedAt.Equal(base) {
		t.Errorf("StartedAt = %v, want %v", first.StartedAt, base)
	}
	if first.Duration != 120*time.Millisecond {
		t.Errorf("Duration = %v, want 120ms", first.Duration)
	}
	if got[0].ErrMessage != "no qualifying sentences" {
		t.Errorf("ErrMessage = %q", got[0].ErrMessage)
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		run := Run{
			ID:        "run-" + string(rune('a'+i)),
			FileName:  "datei.txt",
			StartedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("RecordRun() error: %v", err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Recent(3) returned %d runs, want 3", len(got))
	}
}

func TestRecordRunRequiresID(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordRun(context.Background(), Run{FileName: "x.txt"}); err == nil {
		t.Error("RecordRun() accepted a run without an id")
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := store.RecordRun(context.Background(), Run{ID: "r", FileName: "f.txt", StartedAt: time.Now()}); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Recent() after reopen returned %d runs, want 1", len(runs))
	}
}
