// Package history persists a transcript of REPL evaluations in SQLite.
package history

import (
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store records evaluated lines and their rendered results.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Entry is one recorded evaluation.
type Entry struct {
	ID     int64
	Input  string
	Result string
	At     time.Time
}

// Open opens (or creates) a history database at path.  An empty path opens an
// in-memory database that lasts for the store's lifetime.
func Open(path string) (*Store, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one connection: a pooled second connection would see a different
	// ":memory:" database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			result TEXT NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.ensureVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureVersion() error {
	var version string
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = 'schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`INSERT INTO metadata (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	}
	return err
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Record appends one evaluated line with its rendered result.
func (s *Store) Record(input, result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO history (input, result, at) VALUES (?, ?, ?)`,
		input, result, time.Now().Unix(),
	)
	return err
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, input, result, at FROM history ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &e.Input, &e.Result, &at); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
