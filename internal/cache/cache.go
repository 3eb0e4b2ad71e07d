// Package cache implements mirc's incremental-compile cache (the -cache
// flag): a small persistent side-store keyed by source hash, recording the
// prior run's diagnostic count and MIR dump digest so the driver can skip
// recompiling/re-dumping a file that hasn't changed. Modeled on the
// lookup/store shape of the teacher's internal/ext.Cache, backed by
// modernc.org/sqlite (pure Go, no cgo) instead of files on disk.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache is a handle to the sqlite-backed store. Not safe for concurrent
// use from multiple processes beyond what sqlite itself serializes; mirc
// runs one compile per process (spec.md §5), so no further locking is
// needed.
type Cache struct {
	db *sql.DB
}

// Entry is what a prior run recorded for one source file.
type Entry struct {
	DiagCount int
	MIRDigest string
}

// Open opens (creating if absent) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	source_hash TEXT PRIMARY KEY,
	diag_count  INTEGER NOT NULL,
	mir_digest  TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// HashSource returns the cache key for a source file's contents.
func HashSource(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// DigestMIR returns the cache's digest of a MIR module's textual dump, used
// to detect whether the last run's generated MIR actually changed even
// when the cache key (source hash) did.
func DigestMIR(dump string) string {
	sum := sha256.Sum256([]byte(dump))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the prior run recorded for sourceHash, if any.
func (c *Cache) Lookup(sourceHash string) (Entry, bool, error) {
	var e Entry
	row := c.db.QueryRow(`SELECT diag_count, mir_digest FROM runs WHERE source_hash = ?`, sourceHash)
	switch err := row.Scan(&e.DiagCount, &e.MIRDigest); err {
	case nil:
		return e, true, nil
	case sql.ErrNoRows:
		return Entry{}, false, nil
	default:
		return Entry{}, false, fmt.Errorf("cache: lookup: %w", err)
	}
}

// Store records this run's result for sourceHash, replacing any prior
// entry.
func (c *Cache) Store(sourceHash string, e Entry) error {
	_, err := c.db.Exec(
		`INSERT INTO runs (source_hash, diag_count, mir_digest) VALUES (?, ?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET diag_count = excluded.diag_count, mir_digest = excluded.mir_digest`,
		sourceHash, e.DiagCount, e.MIRDigest,
	)
	if err != nil {
		return fmt.Errorf("cache: store: %w", err)
	}
	return nil
}
