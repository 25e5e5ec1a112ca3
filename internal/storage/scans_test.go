package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	v, err := db.Version()
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("Version = %d, want %d", v, len(migrations))
	}

	// reopening must not re-run migrations
	again, err := Open(db.Path())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	again.Close()
}

func TestScanRepository(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))
	labels := []string{"OGW", "OWB", "WGR", "YGO", "WRB", "RGY", "BYO", "YBR"}
	const state = uint64(0x070D160304020910)

	id, err := repo.Create(labels, state, "U=W F=O R=G D=Y B=R L=B", "morning scramble")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a stored scan")
	}
	if got.State != state {
		t.Errorf("State = %#x, want %#x", got.State, state)
	}
	if len(got.Labels) != 8 || got.Labels[7] != "YBR" {
		t.Errorf("Labels = %v", got.Labels)
	}
	if got.Note == nil || *got.Note != "morning scramble" {
		t.Errorf("Note = %v", got.Note)
	}
	if time.Since(got.CreatedAt) > time.Minute {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}

	if _, err := repo.Create(labels, state, "", ""); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	matches, err := repo.FindByState(state)
	if err != nil {
		t.Fatalf("FindByState failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("FindByState found %d scans, want 2", len(matches))
	}
	if matches[1].Note != nil {
		t.Errorf("empty note should be stored as NULL, got %q", *matches[1].Note)
	}

	n, err := repo.Count()
	if err != nil || n != 2 {
		t.Errorf("Count = %d, %v; want 2", n, err)
	}

	list, err := repo.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List(1) returned %d scans", len(list))
	}
}

func TestGetMissingScan(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))
	s, err := repo.Get("does-not-exist")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s != nil {
		t.Errorf("Get = %+v, want nil", s)
	}
}
