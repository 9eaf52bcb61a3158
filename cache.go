package goblog

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// PostCache caches the sorted post listing, keyed by a fingerprint of the
// content directory (file names, sizes, and modification times). Every read
// re-stats the directory, so a changed, added, or removed file invalidates
// the cache on the next call; only the parse work is saved, never freshness.
type PostCache struct {
	mu    sync.RWMutex
	posts []PostMeta
	stamp string
	store *PostStore
}

// NewPostCache creates a PostCache backed by the given PostStore.
func NewPostCache(s *PostStore) *PostCache {
	return &PostCache{store: s}
}

// fingerprint summarizes the current directory state. Any edit observable
// through stat produces a different string.
func (c *PostCache) fingerprint() (string, error) {
	entries, err := os.ReadDir(c.store.Dir())
	if err != nil {
		return "", fmt.Errorf("%w: read dir %s: %v", ErrStorage, c.store.Dir(), err)
	}
	var b strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", fmt.Errorf("%w: stat %s: %v", ErrStorage, entry.Name(), err)
		}
		fmt.Fprintf(&b, "%s|%d|%d\n", entry.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.stamp = ""
	c.mu.Unlock()
}

// ListPosts returns the date-sorted listing, reloading from disk if the
// directory changed since the last call. It tries a read lock first and
// only takes the write lock when a reload is needed.
func (c *PostCache) ListPosts() ([]PostMeta, error) {
	stamp, err := c.fingerprint()
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.posts != nil && c.stamp == stamp {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.posts != nil && c.stamp == stamp {
		return c.posts, nil
	}
	posts, err := c.store.ListPosts()
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.stamp = stamp
	return posts, nil
}

// GetPost reads a single post. Detail fetches are uncached: the rendered
// body is a pure function of the file bytes and pages are read far less
// often than the listing.
func (c *PostCache) GetPost(id string) (Post, error) {
	return c.store.GetPost(id)
}
