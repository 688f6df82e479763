// Package ratelimit throttles credential operations per key (email or IP).
package ratelimit

import (
	"sync"
	"time"

	"authhub/config"
	domainerrors "authhub/internal/domain/errors"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMinute = 10
	defaultBurst             = 5
	staleAfter               = 10 * time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key. A disabled Limiter allows everything.
type Limiter struct {
	enabled bool
	limit   rate.Limit
	burst   int
	clock   clockwork.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

// New creates a limiter from the rateLimit config section.
func New(cfg *config.Config, clk clockwork.Clock) *Limiter {
	l := &Limiter{
		limit:   rate.Every(time.Minute / defaultRequestsPerMinute),
		burst:   defaultBurst,
		clock:   clk,
		buckets: make(map[string]*bucket),
	}

	rl := cfg.RateLimit
	if rl == nil {
		return l
	}
	l.enabled = rl.Enabled
	if rl.RequestsPerMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(rl.RequestsPerMinute))
	}
	if rl.Burst > 0 {
		l.burst = rl.Burst
	}

	return l
}

// Allow consumes one attempt for key. When the bucket is empty it returns a
// *errors.RateLimitError with the wait until the next attempt is allowed.
func (l *Limiter) Allow(key string) error {
	if !l.enabled {
		return nil
	}

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	reservation := b.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)

		return domainerrors.NewRateLimitError(delay, 0)
	}

	return nil
}

// Remaining reports how many attempts key may make right now.
func (l *Limiter) Remaining(key string) int {
	if !l.enabled {
		return -1
	}

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		return l.burst
	}

	return int(b.limiter.TokensAt(now))
}

// Reset forgets key, typically after a successful login.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
}

// Prune drops buckets unused for a while and returns how many were dropped.
func (l *Limiter) Prune() int {
	cutoff := l.clock.Now().Add(-staleAfter)

	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := 0
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			pruned++
		}
	}

	return pruned
}
