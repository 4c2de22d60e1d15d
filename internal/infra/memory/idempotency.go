package memory

import (
	"context"
	"sync"
	"time"
)

// IdempotencyGuard is an in-process token claimer for dev mode and tests.
type IdempotencyGuard struct {
	ttl   time.Duration
	clock func() time.Time

	mu     sync.Mutex
	claims map[string]time.Time // token -> expiry
}

func NewIdempotencyGuard(ttl time.Duration) *IdempotencyGuard {
	return NewIdempotencyGuardWithClock(ttl, time.Now)
}

// NewIdempotencyGuardWithClock allows deterministic expiry in tests.
func NewIdempotencyGuardWithClock(ttl time.Duration, clock func() time.Time) *IdempotencyGuard {
	return &IdempotencyGuard{
		ttl:    ttl,
		clock:  clock,
		claims: make(map[string]time.Time),
	}
}

// TryClaim inserts the token if absent or expired. Check and set happen under
// one lock so concurrent callers cannot both claim.
func (g *IdempotencyGuard) TryClaim(_ context.Context, token string) (bool, error) {
	now := g.clock()

	g.mu.Lock()
	defer g.mu.Unlock()

	if expiry, ok := g.claims[token]; ok && expiry.After(now) {
		return false, nil
	}
	g.claims[token] = now.Add(g.ttl)
	return true, nil
}
