// Package analytics records page views in SQLite and aggregates per-path
// counts. Visitor IPs are stored only as truncated hashes.
package analytics

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for page-view analytics.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at path, ensures the
// data directory exists, and bootstraps the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// WAL lets the request path write while stats reads run; busy_timeout
	// makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS views (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    ip_hash TEXT NOT NULL,
    timestamp DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_views_path ON views(path);
CREATE INDEX IF NOT EXISTS idx_views_timestamp ON views(timestamp);
`)
	return err
}

// RecordView stores a single page view.
func (s *Store) RecordView(path, ip string) error {
	_, err := s.db.Exec(`INSERT INTO views (path, ip_hash, timestamp) VALUES (?, ?, ?)`,
		path, hashIP(ip), time.Now().UTC())
	return err
}

// PathCount is the aggregate view count for one path.
type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// ViewCounts returns per-path view totals, most viewed first.
func (s *Store) ViewCounts() ([]PathCount, error) {
	rows, err := s.db.Query(`SELECT path, COUNT(*) FROM views GROUP BY path ORDER BY COUNT(*) DESC, path ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []PathCount{}
	for rows.Next() {
		var c PathCount
		if err := rows.Scan(&c.Path, &c.Views); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Prune deletes views older than the retention period.
func (s *Store) Prune(retention time.Duration) error {
	_, err := s.db.Exec(`DELETE FROM views WHERE timestamp < ?`, time.Now().UTC().Add(-retention))
	return err
}

// hashIP stores a truncated SHA-256 of the visitor IP rather than the IP
// itself.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}
