package middleware

import (
	"net/http"
	"sync"

	"github.com/Rohini2302/Sk-enterprises/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyedLimiter holds one token bucket per key (client IP or user id).
// Entries are never evicted; key cardinality is bounded by the tenant's
// user base, and buckets are two words each.
type keyedLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	r       rate.Limit
	b       int
}

func newKeyedLimiter(r rate.Limit, b int) *keyedLimiter {
	return &keyedLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       r,
		b:       b,
	}
}

func (k *keyedLimiter) allow(key string) bool {
	k.mu.Lock()
	limiter, ok := k.buckets[key]
	if !ok {
		limiter = rate.NewLimiter(k.r, k.b)
		k.buckets[key] = limiter
	}
	k.mu.Unlock()
	return limiter.Allow()
}

// RateLimitByIP throttles unauthenticated endpoints such as login by
// client address. r is requests per second, b is burst.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser throttles by the authenticated user id. Requests without
// an identity pass through; the auth middleware rejects those on its own.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.allow(userID) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
