package http

import (
	"sync"
	"time"
)

// Circuit breaker defaults.
const (
	DefaultBreakerThreshold = 5
	DefaultBreakerCooldown  = 5 * time.Minute
)

// Breaker counts consecutive failed fetch cycles and rejects calls for a
// cool-down period once the threshold is reached.
//
// After the cool-down the next cycle is let through. The counter is only
// reset by a success, so a failure right after the cool-down reopens the
// breaker immediately.
type Breaker struct {
	mu        sync.Mutex
	failures  int
	openUntil time.Time

	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

// BreakerOption configures a Breaker.
type BreakerOption func(*Breaker)

// WithClock replaces time.Now for the breaker.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		b.now = now
	}
}

// WithThreshold sets the number of consecutive failures that opens the breaker.
func WithThreshold(n int) BreakerOption {
	return func(b *Breaker) {
		b.threshold = n
	}
}

// WithCooldown sets how long the breaker stays open.
func WithCooldown(d time.Duration) BreakerOption {
	return func(b *Breaker) {
		b.cooldown = d
	}
}

// NewBreaker creates a Breaker with a threshold of 5 and a 5 minute cool-down.
func NewBreaker(opts ...BreakerOption) *Breaker {
	b := &Breaker{
		threshold: DefaultBreakerThreshold,
		cooldown:  DefaultBreakerCooldown,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Allow returns a *CircuitOpenError while the breaker is open.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.openUntil.IsZero() && b.now().Before(b.openUntil) {
		return &CircuitOpenError{Until: b.openUntil}
	}
	return nil
}

// Success closes the breaker and clears the failure count.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.openUntil = time.Time{}
}

// Failure records a failed cycle. It reports true when this failure opened
// the breaker.
func (b *Breaker) Failure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.failures >= b.threshold {
		b.openUntil = b.now().Add(b.cooldown)
		return true
	}
	return false
}

// Failures returns the current count of consecutive failed cycles.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}
