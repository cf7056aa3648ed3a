package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/civiclens/protest-backend-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// rateLimiter tracks request times per client IP over a sliding window.
type rateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
	swept  time.Time
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	// Drop idle IPs once per window instead of a background goroutine;
	// export traffic is far too light to need one.
	if now.Sub(rl.swept) > rl.window {
		for ip, times := range rl.seen {
			if len(times) == 0 || times[len(times)-1].Before(cutoff) {
				delete(rl.seen, ip)
			}
		}
		rl.swept = now
	}

	times := rl.seen[ip]
	valid := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) >= rl.limit {
		rl.seen[ip] = valid
		return false
	}
	rl.seen[ip] = append(valid, now)
	return true
}

// RateLimit limits requests per client IP to limit per window. Used on the
// export endpoint, where each request renders the full CSV.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		swept:  time.Now(),
	}

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
