package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndRecent(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lines := []string{"7 / 2", "x = 3", "x + 1"}
	for i, line := range lines {
		if err := store.Append(line, "ok", base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Line != "x = 3" || recs[1].Line != "x + 1" {
		t.Fatalf("got %q, %q", recs[0].Line, recs[1].Line)
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	if err := store.Append("x", "y", time.Now()); err != nil {
		t.Fatalf("Append on nil store: %v", err)
	}
	if recs, err := store.Recent(5); err != nil || recs != nil {
		t.Fatalf("Recent on nil store = %v, %v", recs, err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil store: %v", err)
	}
}
