// Package ratelimit implements per-client request admission over a fixed
// time window.
package ratelimit

import (
	"sync"
	"time"
)

// windowState tracks admissions for one client identity. The pair is replaced
// wholesale when the window has fully elapsed, never decayed.
type windowState struct {
	count       int
	windowStart time.Time
}

// FixedWindowLimiter admits up to limit requests per identity per window.
// A single mutex guards the whole map; Allow is atomic with respect to the
// read-modify-write of an identity's state.
//
// Entries are never evicted, so the map holds one entry per distinct client
// identity for the lifetime of the process.
type FixedWindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	states map[string]windowState
}

// Option configures a FixedWindowLimiter.
type Option func(*FixedWindowLimiter)

// WithClock overrides the limiter's time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindowLimiter) {
		l.now = now
	}
}

// NewFixedWindowLimiter creates a limiter admitting limit requests per window.
func NewFixedWindowLimiter(limit int, window time.Duration, opts ...Option) *FixedWindowLimiter {
	l := &FixedWindowLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		states: make(map[string]windowState),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether a request from identity is admitted. Exactly limit
// requests are admitted per window; the window boundary is a hard reset that
// discards the prior count.
func (l *FixedWindowLimiter) Allow(identity string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[identity]
	if !ok {
		state = windowState{count: 0, windowStart: now}
	}

	if now.Sub(state.windowStart) >= l.window {
		l.states[identity] = windowState{count: 1, windowStart: now}
		return true
	}

	if state.count >= l.limit {
		return false
	}

	state.count++
	l.states[identity] = state
	return true
}
