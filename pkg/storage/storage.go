// Package storage holds the in-memory session cache for scan results. The
// database lives entirely in memory and dies with the process; nothing is
// ever written to disk.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// ErrMiss is returned when no fresh entry exists for a surface/term pair.
var ErrMiss = errors.New("cache miss")

type Cache struct {
	sql *sql.DB
	ttl time.Duration
}

// Open creates the session cache. The shared-cache memory DSN plus a single
// connection keeps every query on the same in-memory database.
func Open(ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", "file:webradar?mode=memory&cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS scan_cache (
  surface    TEXT NOT NULL,
  term       TEXT NOT NULL,
  payload    BLOB NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (surface, term)
);
    `); err != nil {
		return nil, err
	}
	return &Cache{sql: db, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.sql == nil {
		return nil
	}
	return c.sql.Close()
}

// Get returns the cached payload for a surface/term pair, or ErrMiss when
// the entry is absent or older than the TTL.
func (c *Cache) Get(ctx context.Context, surface, term string) ([]byte, error) {
	var (
		payload   []byte
		createdAt time.Time
	)
	err := c.sql.QueryRowContext(ctx,
		"SELECT payload, created_at FROM scan_cache WHERE surface = ? AND term = ?",
		surface, term).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if c.ttl > 0 && time.Since(createdAt) > c.ttl {
		return nil, ErrMiss
	}
	return payload, nil
}

// Put stores or replaces the payload for a surface/term pair.
func (c *Cache) Put(ctx context.Context, surface, term string, payload []byte) error {
	_, err := c.sql.ExecContext(ctx,
		"INSERT INTO scan_cache(surface, term, payload, created_at) VALUES(?,?,?,CURRENT_TIMESTAMP) ON CONFLICT(surface, term) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at",
		surface, term, payload)
	return err
}

// Purge drops every entry older than the TTL.
func (c *Cache) Purge(ctx context.Context) error {
	if c.ttl <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().Add(-c.ttl)
	_, err := c.sql.ExecContext(ctx, "DELETE FROM scan_cache WHERE created_at < ?", cutoff)
	return err
}
