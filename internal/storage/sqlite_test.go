package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRun(1, "world: {}", 3, []Frame{{Delta: 0.016}})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Run(id); err != nil {
		t.Errorf("Run(%d) after reopen failed: %v", id, err)
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	frames := []Frame{
		{Delta: 0, Jump: false},
		{Delta: 0.016, Jump: true},
		{Delta: 0.1, Jump: false},
		{Delta: 0.0172, Jump: true},
	}

	id, err := store.SaveRun(42, "obstacles:\n  gap: 130\n", 7, frames)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if run.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", run.Seed)
	}
	if run.Score != 7 {
		t.Errorf("Score = %d, expected 7", run.Score)
	}
	if run.ConfigYAML != "obstacles:\n  gap: 130\n" {
		t.Errorf("ConfigYAML = %q", run.ConfigYAML)
	}
	if run.FrameCount != len(frames) {
		t.Errorf("FrameCount = %d, expected %d", run.FrameCount, len(frames))
	}
	if len(run.Frames) != len(frames) {
		t.Fatalf("Loaded %d frames, expected %d", len(run.Frames), len(frames))
	}
	for i := range frames {
		if run.Frames[i] != frames[i] {
			t.Errorf("Frame %d = %+v, expected %+v", i, run.Frames[i], frames[i])
		}
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Run(999)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run(999) error = %v, expected ErrRunNotFound", err)
	}

	if err := store.DeleteRun(999); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("DeleteRun(999) error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		if _, err := store.SaveRun(int64(i), "", i, nil); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"explicit limit", 5, 5},
		{"default limit", 0, 20},
		{"limit above count", 100, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.RecentRuns(tc.limit)
			if err != nil {
				t.Fatalf("RecentRuns() failed: %v", err)
			}
			if len(runs) != tc.expected {
				t.Fatalf("Expected %d runs, got %d", tc.expected, len(runs))
			}
			// Newest first
			if runs[0].Seed != 24 {
				t.Errorf("First run seed = %d, expected 24", runs[0].Seed)
			}
			if runs[0].Frames != nil {
				t.Error("Listings should not load frames")
			}
		})
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(1, "", 2, []Frame{{Delta: 0.02}, {Delta: 0.02, Jump: true}})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.Run(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run after delete error = %v, expected ErrRunNotFound", err)
	}

	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM run_frames WHERE run_id = ?", id).Scan(&n); err != nil {
		t.Fatalf("Count frames failed: %v", err)
	}
	if n != 0 {
		t.Errorf("%d frames left after delete", n)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
