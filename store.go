package goblog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rama5789/goblog/markdown"
)

// Sentinel errors returned by PostStore operations.
var (
	// ErrNotFound is returned when a requested post id has no content file.
	ErrNotFound = errors.New("post not found")

	// ErrStorage is returned when the content directory is unreadable or a
	// content file cannot be parsed.
	ErrStorage = errors.New("content storage error")

	// ErrRender is returned when a post body cannot be rendered to HTML.
	ErrRender = errors.New("render error")
)

// postExts are the file extensions recognized as content files. The id of a
// post is its file base name with the extension stripped.
var postExts = []string{".md", ".markdown"}

// PostStore reads posts from a directory of front-matter markdown files.
// It holds no state beyond the directory path: every call re-reads from
// disk, so edits to content files are visible on the next call and
// concurrent calls need no coordination.
type PostStore struct {
	dir string
}

// NewPostStore creates a PostStore over the given content directory. The
// directory is not checked here; a missing directory surfaces as ErrStorage
// on the first read.
func NewPostStore(dir string) *PostStore {
	return &PostStore{dir: dir}
}

// Dir returns the content directory this store reads from.
func (s *PostStore) Dir() string {
	return s.dir
}

// ListPostIDs returns one id per content file, in directory scan order.
// Dot-prefixed files are not content files and are skipped, so every
// returned id resolves back through GetPost. Two files mapping to the
// same id is a configuration error.
func (s *PostStore) ListPostIDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir %s: %v", ErrStorage, s.dir, err)
	}
	seen := make(map[string]string)
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := postExt(name)
		if ext == "" {
			continue
		}
		id := strings.TrimSuffix(name, ext)
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate post id %q (%s and %s)", ErrStorage, id, prev, name)
		}
		seen[id] = name
		ids = append(ids, id)
	}
	return ids, nil
}

// ListPosts parses the front-matter of every content file and returns the
// collection sorted by date descending, ties broken by id ascending. Bodies
// are not rendered here; listing stays cheap regardless of post length.
// A single unparseable file fails the whole listing.
func (s *PostStore) ListPosts() ([]PostMeta, error) {
	ids, err := s.ListPostIDs()
	if err != nil {
		return nil, err
	}
	posts := make([]PostMeta, 0, len(ids))
	for _, id := range ids {
		meta, _, err := s.readPost(id)
		if err != nil {
			return nil, err
		}
		posts = append(posts, meta)
	}
	// ISO-8601 dates order lexicographically, so no re-parse is needed.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

// GetPost reads a single post by id and renders its body to HTML.
func (s *PostStore) GetPost(id string) (Post, error) {
	meta, body, err := s.readPost(id)
	if err != nil {
		return Post{}, err
	}
	html, err := markdown.Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("%w: post %s: %v", ErrRender, id, err)
	}
	return Post{PostMeta: meta, HTML: html}, nil
}

// readPost locates the content file for id, parses it, and returns the
// metadata and raw body.
func (s *PostStore) readPost(id string) (PostMeta, []byte, error) {
	path, err := s.resolve(id)
	if err != nil {
		return PostMeta{}, nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return PostMeta{}, nil, fmt.Errorf("%w: read %s: %v", ErrStorage, path, err)
	}
	doc, err := markdown.Parse(source)
	if err != nil {
		return PostMeta{}, nil, fmt.Errorf("%w: %s: %v", ErrStorage, filepath.Base(path), err)
	}
	meta := PostMeta{
		ID:    id,
		Title: doc.Title,
		Date:  doc.Date,
		Extra: doc.Extra,
		Link:  "/posts/" + id + "/",
	}
	return meta, doc.Body, nil
}

// resolve maps an id back to its content file, the inverse of the
// derivation in ListPostIDs.
func (s *PostStore) resolve(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	for _, ext := range postExts {
		path := filepath.Join(s.dir, id+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, id)
}

func postExt(name string) string {
	for _, ext := range postExts {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}
