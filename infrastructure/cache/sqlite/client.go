// ABOUTME: SQLite cache implementation for single-node persistent caching
// ABOUTME: Survives restarts without requiring an external cache server

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when a key is not found or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER
);
CREATE INDEX IF NOT EXISTS idx_cache_expires ON cache_entries(expires_at);
`

// SQLiteCache implements the Cache interface on a local SQLite file.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (and if needed initializes) the cache database at the
// given path. Use ":memory:" for an ephemeral store.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		return nil, errors.New("sqlite cache path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteCache{db: db}, nil
}

// Get retrieves a value, treating expired rows as misses and removing them.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt sql.NullInt64

	row := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM cache_entries WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	if expiresAt.Valid && time.Now().Unix() > expiresAt.Int64 {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
		return nil, ErrCacheMiss
	}
	return value, nil
}

// Set stores a value with the given TTL. A zero TTL stores the value without
// expiration.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt interface{}
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt)
	return err
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
	return err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
