package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter keeps one token bucket per user in process memory.
// Used standalone in single-instance deployments and as the fallback
// behind Redis.
type MemoryRateLimiter struct {
	limiters sync.Map // map[int64]*rate.Limiter
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{}
}

func (r *MemoryRateLimiter) Allow(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error) {
	return r.getLimiter(userID, limit, window).Allow(), nil
}

func (r *MemoryRateLimiter) getLimiter(userID int64, limit int, window time.Duration) *rate.Limiter {
	if v, ok := r.limiters.Load(userID); ok {
		return v.(*rate.Limiter)
	}

	burst := limit
	if burst <= 0 {
		burst = 1
	}

	lim := rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), burst)
	actual, loaded := r.limiters.LoadOrStore(userID, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}
