package analytics

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndCount(t *testing.T) {
	s := setupTestStore(t)

	views := []struct{ path, ip string }{
		{"/", "203.0.113.10"},
		{"/", "203.0.113.11"},
		{"/posts/a/", "203.0.113.10"},
	}
	for _, v := range views {
		if err := s.RecordView(v.path, v.ip); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}

	counts, err := s.ViewCounts()
	if err != nil {
		t.Fatalf("ViewCounts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("ViewCounts len = %d, want 2", len(counts))
	}
	if counts[0].Path != "/" || counts[0].Views != 2 {
		t.Errorf("counts[0] = %+v, want {/ 2}", counts[0])
	}
	if counts[1].Path != "/posts/a/" || counts[1].Views != 1 {
		t.Errorf("counts[1] = %+v, want {/posts/a/ 1}", counts[1])
	}
}

func TestViewCountsEmpty(t *testing.T) {
	s := setupTestStore(t)

	counts, err := s.ViewCounts()
	if err != nil {
		t.Fatalf("ViewCounts failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("ViewCounts on empty store = %v, want empty", counts)
	}
}

func TestPrune(t *testing.T) {
	s := setupTestStore(t)

	if err := s.RecordView("/", "203.0.113.10"); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if err := s.Prune(0); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	counts, err := s.ViewCounts()
	if err != nil {
		t.Fatalf("ViewCounts failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("expected all views pruned, got %v", counts)
	}
}

func TestHashIPStable(t *testing.T) {
	if hashIP("203.0.113.10") != hashIP("203.0.113.10") {
		t.Error("hashIP should be deterministic")
	}
	if hashIP("203.0.113.10") == hashIP("203.0.113.11") {
		t.Error("different IPs should hash differently")
	}
	if hashIP("203.0.113.10") == "203.0.113.10" {
		t.Error("hash must not be the raw IP")
	}
}
