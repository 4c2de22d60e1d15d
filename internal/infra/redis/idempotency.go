package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "idempotency:"

// IdempotencyGuard claims tokens with a single SET NX round trip, so the
// check and the insert cannot race across concurrent callers or instances.
type IdempotencyGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyGuard(client *redis.Client, ttl time.Duration) *IdempotencyGuard {
	return &IdempotencyGuard{client: client, ttl: ttl}
}

func (g *IdempotencyGuard) TryClaim(ctx context.Context, token string) (bool, error) {
	return g.client.SetNX(ctx, idempotencyKeyPrefix+token, "1", g.ttl).Result()
}
