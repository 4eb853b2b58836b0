package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-attendees/pkg/response"
)

// rateLimiter keeps one token bucket per client, evicted after 5 minutes idle.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed the configured per-minute budget with 429.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.rateLimiter == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !mw.rateLimiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
