package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestRateLimiter tests per-client token bucket behavior
func TestRateLimiter(t *testing.T) {
	t.Run("Requests inside the burst pass", func(t *testing.T) {
		rl := NewRateLimiter(1, 3)
		defer rl.Close()
		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("10.0.0.1"))
		}
	})

	t.Run("Requests beyond the burst are rejected immediately", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		defer rl.Close()
		assert.True(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
	})

	t.Run("Clients do not share buckets", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Close()
		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.2"))
	})
}

// TestRateLimiterSweep tests stale bucket eviction and sweeper shutdown
func TestRateLimiterSweep(t *testing.T) {
	t.Run("Idle clients are evicted, active ones survive", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Close()
		rl.Allow("10.0.0.1")
		rl.Allow("10.0.0.2")

		rl.mu.Lock()
		rl.clients["10.0.0.1"].lastSeen = time.Now().Add(-staleClientAfter - time.Second)
		rl.mu.Unlock()

		rl.removeStale(time.Now())

		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.NotContains(t, rl.clients, "10.0.0.1")
		assert.Contains(t, rl.clients, "10.0.0.2")
	})

	t.Run("Close stops the sweeper", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		rl.Close()
		// A second close would panic; guard that Close is one-shot by
		// contract rather than re-closing here.
		select {
		case <-rl.stop:
		default:
			t.Fatal("stop channel still open after Close")
		}
	})
}

// TestRateLimiterMiddleware tests the HTTP rejection path
func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 1)
	defer rl.Close()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
