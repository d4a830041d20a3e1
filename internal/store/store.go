// Package store provides the sqlite-backed local store: auth token
// persistence and the response cache.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the local sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveToken stores one named token, replacing any previous value.
func (s *Store) SaveToken(name, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO tokens (name, value) VALUES (?, ?)`, name, value)
	return err
}

// Token returns the named token, or "" when none is stored.
func (s *Store) Token(name string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM tokens WHERE name = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// ClearTokens removes all stored tokens.
func (s *Store) ClearTokens() error {
	_, err := s.db.Exec("DELETE FROM tokens")
	return err
}

// SaveResponse caches a normalized response body under key.
func (s *Store) SaveResponse(key string, body []byte, fetchedAt time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO responses (cache_key, body, fetched_at) VALUES (?, ?, ?)`,
		key, body, fetchedAt.UTC().Format(time.RFC3339))
	return err
}

// Response returns the cached body for key if it is younger than maxAge.
// The second return reports whether a fresh entry was found.
func (s *Store) Response(key string, maxAge time.Duration) ([]byte, bool, error) {
	var body []byte
	var fetchedStr string
	err := s.db.QueryRow("SELECT body, fetched_at FROM responses WHERE cache_key = ?", key).
		Scan(&body, &fetchedStr)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	fetchedAt, err := time.Parse(time.RFC3339, fetchedStr)
	if err != nil || time.Since(fetchedAt) > maxAge {
		return nil, false, nil
	}
	return body, true, nil
}

// InvalidateResponses drops every cached response whose key starts with
// prefix. Mutations call this so stale lists are not served afterwards.
func (s *Store) InvalidateResponses(prefix string) error {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	_, err := s.db.Exec(`DELETE FROM responses WHERE cache_key LIKE ? ESCAPE '\'`, escaped+"%")
	return err
}
