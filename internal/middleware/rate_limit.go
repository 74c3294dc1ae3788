package middleware

import (
	"context"
	"sync"
	"time"

	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const visitorTTL = 10 * time.Minute

type rateLimiter struct {
	visitors  map[string]*visitor
	mutex     sync.Mutex
	perMinute int
	now       func() time.Time
}

type visitor struct {
	limiter  *tokenBucket
	lastSeen time.Time
}

// tokenBucket refills continuously at capacity tokens per minute.
type tokenBucket struct {
	tokens     float64
	capacity   float64
	lastRefill time.Time
}

func newRateLimiter(requestsPerMinute int, now func() time.Time) *rateLimiter {
	return &rateLimiter{
		visitors:  make(map[string]*visitor),
		perMinute: requestsPerMinute,
		now:       now,
	}
}

// RateLimitMiddleware limits each client IP to requestsPerMinute. A value of
// zero or below disables limiting. Stale visitors are swept until ctx is done.
func RateLimitMiddleware(ctx context.Context, requestsPerMinute int) gin.HandlerFunc {
	if requestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newRateLimiter(requestsPerMinute, time.Now)
	go limiter.cleanupRoutine(ctx, visitorTTL)

	return limiter.handle
}

func (rl *rateLimiter) handle(c *gin.Context) {
	if !rl.allow(c.ClientIP()) {
		utils.TooManyRequests(c)
		c.Abort()
		return
	}
	c.Next()
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{
			limiter: &tokenBucket{
				tokens:     float64(rl.perMinute),
				capacity:   float64(rl.perMinute),
				lastRefill: now,
			},
		}
		rl.visitors[ip] = v
	}

	v.lastSeen = now
	return v.limiter.take(now)
}

func (tb *tokenBucket) take(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill)
	if elapsed > 0 {
		tb.tokens += elapsed.Minutes() * tb.capacity
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

func (rl *rateLimiter) sweep() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *rateLimiter) cleanupRoutine(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
