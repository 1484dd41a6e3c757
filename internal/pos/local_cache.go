package pos

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// cacheKeyPrefix namespaces every cache key, mirroring the key layout the
// terminal has always used so existing caches keep working after upgrades.
const cacheKeyPrefix = "reidolanche"

func collectionKey(accountID, collection string) string {
	return fmt.Sprintf("%s:%s:%s", cacheKeyPrefix, accountID, collection)
}

func migratedKey(accountID string) string {
	return fmt.Sprintf("%s:%s:migrated", cacheKeyPrefix, accountID)
}

func historyClearKey(accountID string) string {
	return fmt.Sprintf("%s:%s:pos_history_clear_time", cacheKeyPrefix, accountID)
}

// LocalCache is the terminal's durable key-value cache. One key holds one
// collection serialized as JSON, plus a handful of per-account flags.
type LocalCache struct {
	db *sql.DB
}

// OpenCache opens or creates the cache database at path. ":memory:" is
// accepted for tests.
func OpenCache(path string) (*LocalCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening local cache: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL on local cache: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating local cache table: %w", err)
	}
	return &LocalCache{db: db}, nil
}

// Get returns the value for key and whether the key exists.
func (c *LocalCache) Get(key string) (string, bool, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading local cache key %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes or replaces the value for key.
func (c *LocalCache) Set(key, value string) error {
	_, err := c.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing local cache key %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (c *LocalCache) Delete(key string) error {
	if _, err := c.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting local cache key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *LocalCache) Close() error {
	return c.db.Close()
}
