package db

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSaveAndListEntries(t *testing.T) {
	database := openTestDB(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		err := database.SaveEntry(fmt.Sprintf("id-%d", i), fmt.Sprintf("%d + 1", i), fmt.Sprint(i+1), base.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}

	entries, err := database.ListEntries(3)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "id-4" || entries[2].ID != "id-2" {
		t.Errorf("entries not newest first: %s ... %s", entries[0].ID, entries[2].ID)
	}
	if entries[0].Expression != "4 + 1" || entries[0].Result != "5" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if !entries[0].CreatedAt.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("unexpected timestamp: %v", entries[0].CreatedAt)
	}
}

func TestTrimEntries(t *testing.T) {
	database := openTestDB(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		if err := database.SaveEntry(fmt.Sprintf("id-%d", i), "1 + 1", "2", base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}

	removed, err := database.TrimEntries(20)
	if err != nil {
		t.Fatalf("TrimEntries failed: %v", err)
	}
	if removed != 5 {
		t.Errorf("expected 5 removed, got %d", removed)
	}

	count, err := database.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	if count != 20 {
		t.Errorf("expected 20 entries, got %d", count)
	}

	entries, err := database.ListEntries(100)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if entries[len(entries)-1].ID != "id-5" {
		t.Errorf("oldest kept entry should be id-5, got %s", entries[len(entries)-1].ID)
	}
}

func TestClearEntriesAndStats(t *testing.T) {
	database := openTestDB(t)
	if err := database.SaveEntry("a", "2 × 3", "6", time.Now()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	stats, err := database.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.EntryCount != 1 || stats.DBSizeBytes <= 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	if err := database.ClearEntries(); err != nil {
		t.Fatalf("ClearEntries failed: %v", err)
	}
	if err := database.Vacuum(); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}

	entries, err := database.ListEntries(10)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := first.SaveEntry("a", "7 + 3", "10", time.Now()); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	first.Close()

	second, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	entries, err := second.ListEntries(20)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Result != "10" {
		t.Errorf("unexpected entries after reopen: %v", entries)
	}
}
