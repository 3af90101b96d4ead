package dictionary

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache stores raw dictionary responses by word.
type Cache interface {
	Get(ctx context.Context, word string) ([]byte, bool, error)
	Put(ctx context.Context, word string, body []byte) error
}

// SQLiteCache keeps responses in a SQLite database file. Entries older
// than the TTL are treated as missing.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenSQLiteCache opens (and creates if needed) the cache database at path.
// A zero ttl keeps entries forever.
func OpenSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		word TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &SQLiteCache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached response for word.
func (c *SQLiteCache) Get(ctx context.Context, word string) ([]byte, bool, error) {
	var body []byte
	var fetchedAt int64

	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM responses WHERE word = ?`, word,
	).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	if c.ttl > 0 && c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}

	return body, true, nil
}

// Put stores body as the response for word.
func (c *SQLiteCache) Put(ctx context.Context, word string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (word, body, fetched_at) VALUES (?, ?, ?)`,
		word, body, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
