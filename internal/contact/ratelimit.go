package contact

import (
	"sync"
	"time"
)

// RateLimiter decides whether a submission from the given client key may
// proceed at the given time. Implementations record the attempt when they
// allow it, so a single call both checks and consumes a slot.
type RateLimiter interface {
	Allow(key string, now time.Time) bool
}

// SlidingWindowLimiter enforces a per-key quota over a moving time window.
//
// Each key holds the timestamps of its recent submissions. Stamps older than
// the window are pruned lazily on each check; a rejected attempt does not
// consume a slot. Keys are never evicted, only their stale stamps are, so the
// ledger grows with the number of distinct clients over the process lifetime.
// This is a single-instance, best-effort limiter by design.
type SlidingWindowLimiter struct {
	window time.Duration
	max    int

	mu     sync.Mutex
	ledger map[string][]time.Time
}

// NewSlidingWindowLimiter creates a limiter allowing max submissions per key
// within the window.
func NewSlidingWindowLimiter(window time.Duration, max int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		window: window,
		max:    max,
		ledger: make(map[string][]time.Time),
	}
}

// Allow reports whether the key is under quota and, if so, records the attempt.
func (l *SlidingWindowLimiter) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.ledger[key][:0:0]
	for _, ts := range l.ledger[key] {
		if now.Sub(ts) < l.window {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.ledger[key] = recent
		return false
	}

	l.ledger[key] = append(recent, now)
	return true
}
