// Package ratelimiter keeps one token bucket per key and forgets keys that
// have been idle for a while.
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter *rate.Limiter
	timer   *time.Timer
}

// UserRateLimiter manages rate limiting for many keys (IPs, emails).
type UserRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*entry
	limit          rate.Limit
	burst          int
	expirationTime time.Duration
}

// New allows limit events per second per key with the given burst. Keys are
// dropped after expirationTime without requests.
func New(limit rate.Limit, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*entry),
		limit:          limit,
		burst:          burst,
		expirationTime: expirationTime,
	}
}

// PerMinute builds a limiter allowing n events per minute per key.
func PerMinute(n float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	if n <= 0 {
		return New(rate.Inf, burst, expirationTime)
	}
	return New(rate.Limit(n/60), burst, expirationTime)
}

func (u *UserRateLimiter) get(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	e, ok := u.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.limiters[key] = e
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(u.expirationTime, func() { u.cleanup(key, e) })
	return e.limiter
}

func (u *UserRateLimiter) cleanup(key string, e *entry) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.limiters[key] == e {
		delete(u.limiters, key)
	}
}

// Allow reports whether one more event for key may happen now.
func (u *UserRateLimiter) Allow(key string) bool {
	return u.get(key).Allow()
}

// Len returns the number of tracked keys.
func (u *UserRateLimiter) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.limiters)
}

// Stop cancels all expiry timers.
func (u *UserRateLimiter) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, e := range u.limiters {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
}
