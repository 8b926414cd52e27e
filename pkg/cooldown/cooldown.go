// Package cooldown provides a per-key rate gate for command hosts, built on
// golang.org/x/time/rate. A typical use is a command Condition that rejects
// an invocation when the command (or user) fired too recently.
package cooldown

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Gate tracks one token-bucket limiter per key, e.g. per command name or
// per user id. Thread-safe.
type Gate struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

// New builds a Gate allowing perMinute events per key with the given burst.
// Non-positive inputs fall back to one event per minute and a burst of one.
func New(perMinute float64, burst int) *Gate {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &Gate{
		limit:    rate.Every(time.Duration(float64(time.Minute) / perMinute)),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether another event for key fits the rate right now.
func (g *Gate) Allow(key string) bool {
	return g.limiter(key).Allow()
}

// Reset drops the limiter state for key, lifting any active cooldown.
func (g *Gate) Reset(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.limiters, key)
}

func (g *Gate) limiter(key string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()
	lim, ok := g.limiters[key]
	if !ok {
		lim = rate.NewLimiter(g.limit, g.burst)
		g.limiters[key] = lim
	}
	return lim
}
