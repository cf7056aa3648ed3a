package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/civiclens/protest-backend-go/internal/cache"
)

// StartCacheSweeper schedules a periodic purge of expired cache entries.
// Expired entries are already invisible to readers; the sweep just reclaims
// space, which matters for the SQLite-backed store. Returns the scheduler so
// the caller can Stop it on shutdown.
func StartCacheSweeper(store cache.Store) *cron.Cron {
	c := cron.New()

	// Every 5 minutes
	_, err := c.AddFunc("*/5 * * * *", func() {
		if dropped := store.Purge(); dropped > 0 {
			log.Printf("cache sweep removed %d expired entries", dropped)
		}
	})
	if err != nil {
		log.Println("Error scheduling cache sweep:", err)
	}

	c.Start()
	return c
}
