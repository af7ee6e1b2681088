// Package ratelimiter limits how often an operation may run.
package ratelimiter

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Limiter is a fixed-window rate limiter keyed by an arbitrary string
// (a client IP, typically). It never blocks; callers decide what an
// over-limit attempt means.
type Limiter struct {
	limit    int           // attempts allowed per window
	interval time.Duration // window length

	mu      sync.Mutex
	windows map[string]*window
}

// window tracks attempts for one key inside the current interval.
type window struct {
	count int
	start time.Time
}

// NewLimiter creates a new Limiter allowing limit attempts per interval
// per key.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// NewLoginLimiter builds the login-attempt limiter from LOGIN_RATE_LIMIT
// (attempts per minute, default 10).
func NewLoginLimiter() *Limiter {
	limit := 10
	if v, err := strconv.Atoi(os.Getenv("LOGIN_RATE_LIMIT")); err == nil && v > 0 {
		limit = v
	}
	return NewLimiter(limit, time.Minute)
}

// Allow reports whether the key may perform another attempt in the
// current window, counting this attempt.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		return true
	}
	w.count++
	return w.count <= l.limit
}
