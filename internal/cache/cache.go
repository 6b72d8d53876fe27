// Package cache persists pass-one results (table geometry and collected
// binary data) keyed by a document's content hash, so a batch run over an
// unchanged corpus can skip pass one on repeat conversions.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is the pass-one result recorded for one content hash: the
// measured table widths by id, and the indexed binary blobs by name.
type Entry struct {
	TableWidths map[int]int       `json:"table_widths"`
	Data        map[string][]byte `json:"data"`
}

// Cache wraps a sqlite3 database of content-hash -> Entry.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite3 database at path and
// ensures its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS pass_one (
	content_hash TEXT PRIMARY KEY,
	entry_json   BLOB NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Get returns the cached entry for hash, or ok=false if none is recorded.
func (c *Cache) Get(hash string) (Entry, bool, error) {
	var blob []byte
	err := c.db.QueryRow(`SELECT entry_json FROM pass_one WHERE content_hash = ?`, hash).Scan(&blob)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache: get: %w", err)
	}
	var e Entry
	if err := json.Unmarshal(blob, &e); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode: %w", err)
	}
	return e, true, nil
}

// Put records (or replaces) the pass-one entry for hash.
func (c *Cache) Put(hash string, e Entry) error {
	blob, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	_, err = c.db.Exec(`INSERT INTO pass_one (content_hash, entry_json) VALUES (?, ?)
		ON CONFLICT(content_hash) DO UPDATE SET entry_json = excluded.entry_json`, hash, blob)
	if err != nil {
		return fmt.Errorf("cache: put: %w", err)
	}
	return nil
}
