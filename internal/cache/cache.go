// Package cache memoizes expensive pure computations keyed by filter
// specification. It is purely a performance layer: results are identical
// whether or not a cache sits in front, and tests exercise the engine
// without one.
package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Store is a TTL key-value backend. Implementations must be safe for
// concurrent use; duplicate concurrent computes for one key are acceptable,
// last write wins.
type Store interface {
	// Get returns the stored value, or false when absent or expired.
	Get(key string) ([]byte, bool)
	// Set stores the value with the given time-to-live.
	Set(key string, value []byte, ttl time.Duration)
	// Purge removes expired entries and reports how many were dropped.
	Purge() int
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Values round-trip through JSON, so both in-process and external
// stores satisfy the same contract. Compute errors are returned untouched
// and never cached.
func GetOrCompute[T any](s Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if data, ok := s.Get(key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		// Undecodable entry: fall through and recompute
	}

	v, err := compute()
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return v, fmt.Errorf("failed to encode cache entry: %w", err)
	}
	s.Set(key, data, ttl)
	return v, nil
}
