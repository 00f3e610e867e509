package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveVolume(0.3); err != nil {
		t.Fatalf("SaveVolume() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	v, err := store.Volume(1)
	if err != nil {
		t.Fatalf("Volume() failed: %v", err)
	}
	if v != 0.3 {
		t.Errorf("Volume() = %v after reopen, expected 0.3", v)
	}
}

func TestStoreVolume(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Volume(0.8)
	if err != nil {
		t.Fatalf("Volume() failed: %v", err)
	}
	if v != 0.8 {
		t.Errorf("Volume() = %v with nothing stored, expected default 0.8", v)
	}

	for _, want := range []float64{0.5, 0, 1} {
		if err := store.SaveVolume(want); err != nil {
			t.Fatalf("SaveVolume(%v) failed: %v", want, err)
		}
		got, err := store.Volume(0.8)
		if err != nil {
			t.Fatalf("Volume() failed: %v", err)
		}
		if got != want {
			t.Errorf("Volume() = %v, expected %v", got, want)
		}
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Level: "Olympus", Outcome: OutcomeDied, Cause: "monster", Duration: 12 * time.Second, Throws: 3},
		{Level: "Olympus", Outcome: OutcomeWin, Duration: 95 * time.Second, Kills: 2, Throws: 9},
		{Level: "Olympus", Outcome: OutcomeWin, Duration: 80*time.Second + 250*time.Millisecond, Kills: 1},
		{Level: "Test", Outcome: OutcomeQuit, Duration: time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Level != "Test" || recent[1].Duration != 80*time.Second+250*time.Millisecond {
		t.Errorf("RecentRuns() should be newest first, got %+v", recent)
	}

	best, err := store.BestRuns("Olympus", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 wins, got %d", len(best))
	}
	if best[0].Duration > best[1].Duration {
		t.Errorf("BestRuns() should be fastest first, got %v then %v", best[0].Duration, best[1].Duration)
	}

	all, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	died := all[len(all)-1]
	if died.Cause != "monster" || died.Throws != 3 {
		t.Errorf("first run = %+v", died)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Level: "Olympus", Outcome: OutcomeDied, Duration: 5 * time.Second})
	store.SaveRun(RunEntry{Level: "Olympus", Outcome: OutcomeWin, Duration: 60 * time.Second, Kills: 2})
	store.SaveRun(RunEntry{Level: "Olympus", Outcome: OutcomeWin, Duration: 50 * time.Second, Kills: 1})
	store.SaveRun(RunEntry{Level: "Test", Outcome: OutcomeQuit, Duration: time.Second})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}

	o := stats[0]
	if o.Level != "Olympus" || o.Runs != 3 || o.Wins != 2 || o.Deaths != 1 || o.Kills != 3 {
		t.Errorf("Olympus stats = %+v", o)
	}
	if o.BestTime != 50*time.Second {
		t.Errorf("BestTime = %v, expected 50s", o.BestTime)
	}

	if stats[1].BestTime != 0 {
		t.Errorf("a level without wins should have no best time, got %v", stats[1].BestTime)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Level: "Olympus", Outcome: OutcomeWin})
	store.SaveRun(RunEntry{Level: "Test", Outcome: OutcomeWin})

	if err := store.ClearRuns("Olympus"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Level != "Test" {
		t.Errorf("runs after clearing Olympus = %+v", runs)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(all) failed: %v", err)
	}
	runs, _ = store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	dir, err := os.MkdirTemp(home, ".ontop-test-")
	if err != nil {
		t.Skip("home directory not writable")
	}
	defer os.RemoveAll(dir)

	rel, err := filepath.Rel(home, dir)
	if err != nil {
		t.Fatal(err)
	}
	store, err := Open(filepath.Join("~", rel, "runs.db"))
	if err != nil {
		t.Fatalf("Open(~) failed: %v", err)
	}
	store.Close()

	if _, err := os.Stat(filepath.Join(dir, "runs.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
