// Package history records cmd/abwconvert's conversion attempts to a
// sqlite3 table, queryable later (through Recent/ForPath, or by hand) to
// see what was converted, when, and whether it succeeded.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Attempt is one recorded conversion attempt.
type Attempt struct {
	ID        int64
	Path      string
	StartedAt time.Time
	OK        bool
	Error     string
}

// History wraps a sqlite3 database of conversion attempts.
type History struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite3 database at path and
// ensures its schema exists.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	path        TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	ok          INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT ''
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: schema: %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) Close() error { return h.db.Close() }

// Record appends one attempt. startedAt should be stamped by the caller
// (this package never calls time.Now() itself, so callers control the
// clock dependency explicitly).
func (h *History) Record(path string, startedAt time.Time, convErr error) error {
	ok := convErr == nil
	msg := ""
	if convErr != nil {
		msg = convErr.Error()
	}
	_, err := h.db.Exec(
		`INSERT INTO attempts (path, started_at, ok, error) VALUES (?, ?, ?, ?)`,
		path, startedAt.UTC().Format(time.RFC3339Nano), ok, msg,
	)
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns the most recent limit attempts, newest first.
func (h *History) Recent(limit int) ([]Attempt, error) {
	rows, err := h.db.Query(
		`SELECT id, path, started_at, ok, error FROM attempts ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var startedAt string
		if err := rows.Scan(&a.ID, &a.Path, &startedAt, &a.OK, &a.Error); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		a.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

// ForPath returns every recorded attempt for path, newest first.
func (h *History) ForPath(path string) ([]Attempt, error) {
	rows, err := h.db.Query(
		`SELECT id, path, started_at, ok, error FROM attempts WHERE path = ? ORDER BY id DESC`, path,
	)
	if err != nil {
		return nil, fmt.Errorf("history: for_path: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var startedAt string
		if err := rows.Scan(&a.ID, &a.Path, &startedAt, &a.OK, &a.Error); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		a.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		out = append(out, a)
	}
	return out, rows.Err()
}
