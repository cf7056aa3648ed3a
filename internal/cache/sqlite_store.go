package cache

import (
	"database/sql"
	"log"
	"time"
)

// SQLiteStore persists cache entries in a SQLite key-value table, so a cache
// survives process restarts and can be shared by multiple workers on one
// host. Same contract as the in-process store.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore wraps an opened cache database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Get returns the stored value, or false when absent or expired.
func (s *SQLiteStore) Get(key string) ([]byte, bool) {
	var value []byte
	var expiresAt int64
	err := s.db.QueryRow(
		"SELECT value, expires_at FROM cache_entries WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("cache read failed for key %s: %v", key, err)
		}
		return nil, false
	}
	if s.now().Unix() > expiresAt {
		return nil, false
	}
	return value, true
}

// Set stores the value with the given time-to-live. A failed write only
// costs a recompute on the next request, so it is logged and swallowed.
func (s *SQLiteStore) Set(key string, value []byte, ttl time.Duration) {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, s.now().Add(ttl).Unix(),
	)
	if err != nil {
		log.Printf("cache write failed for key %s: %v", key, err)
	}
}

// Purge removes expired entries and reports how many were dropped.
func (s *SQLiteStore) Purge() int {
	res, err := s.db.Exec(
		"DELETE FROM cache_entries WHERE expires_at < ?", s.now().Unix(),
	)
	if err != nil {
		log.Printf("cache purge failed: %v", err)
		return 0
	}
	n, _ := res.RowsAffected()
	return int(n)
}
