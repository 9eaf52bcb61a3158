package goblog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCacheServesListing(t *testing.T) {
	s := setupTestStore(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: \"2020-01-01\"\n---\nbody",
		"b.md": "---\ntitle: B\ndate: \"2021-06-01\"\n---\nbody",
	})
	c := NewPostCache(s)

	posts, err := c.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "b" {
		t.Fatalf("unexpected listing: %v", posts)
	}

	again, err := c.ListPosts()
	if err != nil {
		t.Fatalf("second ListPosts failed: %v", err)
	}
	if len(again) != 2 {
		t.Fatalf("cached listing len = %d, want 2", len(again))
	}
}

func TestCacheSeesNewFiles(t *testing.T) {
	s := setupTestStore(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: \"2020-01-01\"\n---\nbody",
	})
	c := NewPostCache(s)

	posts, err := c.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("initial listing len = %d, want 1", len(posts))
	}

	newFile := filepath.Join(s.Dir(), "b.md")
	if err := os.WriteFile(newFile, []byte("---\ntitle: B\ndate: \"2022-01-01\"\n---\nbody"), 0o644); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}

	posts, err = c.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts after add failed: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "b" {
		t.Errorf("listing after add = %v, want b first of 2", posts)
	}
}

func TestCacheSeesChangedFiles(t *testing.T) {
	s := setupTestStore(t, map[string]string{
		"a.md": "---\ntitle: Before\ndate: \"2020-01-01\"\n---\nbody",
	})
	c := NewPostCache(s)

	if _, err := c.ListPosts(); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	// Different length guarantees a different fingerprint even when the
	// filesystem's mtime granularity is coarse.
	path := filepath.Join(s.Dir(), "a.md")
	if err := os.WriteFile(path, []byte("---\ntitle: After the edit\ndate: \"2020-01-01\"\n---\nbody"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	posts, err := c.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts after edit failed: %v", err)
	}
	if posts[0].Title != "After the edit" {
		t.Errorf("Title = %q, want the edited title", posts[0].Title)
	}
}

func TestCacheInvalidate(t *testing.T) {
	s := setupTestStore(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: \"2020-01-01\"\n---\nbody",
	})
	c := NewPostCache(s)

	if _, err := c.ListPosts(); err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	c.Invalidate()
	posts, err := c.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts after Invalidate failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("listing after Invalidate len = %d, want 1", len(posts))
	}
}

func TestCacheMissingDir(t *testing.T) {
	c := NewPostCache(NewPostStore(filepath.Join(t.TempDir(), "nope")))

	_, err := c.ListPosts()
	if !errors.Is(err, ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
}
