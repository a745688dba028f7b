package middleware

import (
	"sync"
	"time"

	appErrors "github.com/crewhq/crewhq-backend/internal/errors"
	"github.com/crewhq/crewhq-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// staleClientAfter is how long an idle client keeps its limiter before the
// sweep drops it.
const staleClientAfter = 10 * time.Minute

// sweepInterval is how often stale client buckets are collected.
const sweepInterval = time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address. It is the only
// long-lived in-process state the server carries.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
	stop    chan struct{}
}

// NewRateLimiter creates a RateLimiter allowing rps sustained requests with
// the given burst per client address, and starts its sweeper.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		stop:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Close stops the sweeper goroutine.
func (rl *RateLimiter) Close() {
	close(rl.stop)
}

// Allow reports whether a request from the given client address may proceed.
func (rl *RateLimiter) Allow(clientAddr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cl, ok := rl.clients[clientAddr]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[clientAddr] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

// sweep periodically drops limiters for clients that have gone quiet so the
// map does not grow without bound, until Close is called.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.removeStale(time.Now())
		}
	}
}

// removeStale drops every client bucket idle since before now minus the
// stale window.
func (rl *RateLimiter) removeStale(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for addr, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > staleClientAfter {
			delete(rl.clients, addr)
		}
	}
}

// Middleware rejects requests that exceed the client's bucket immediately,
// with no queueing or retry scheduling.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			apiErr := appErrors.ErrRateLimitExceeded
			utils.RespondError(c, apiErr.Status, apiErr.Code, apiErr.Message)
			return
		}
		c.Next()
	}
}
