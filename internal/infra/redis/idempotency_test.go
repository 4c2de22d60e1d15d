package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestIdempotencyGuardClaims(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	guard := NewIdempotencyGuard(client, 24*time.Hour)
	ctx := context.Background()

	claimed, err := guard.TryClaim(ctx, "token-1")
	if err != nil || !claimed {
		t.Fatalf("expected first claim to succeed, got %v/%v", claimed, err)
	}
	if !mr.Exists("idempotency:token-1") {
		t.Fatalf("expected claim key in redis")
	}

	claimed, err = guard.TryClaim(ctx, "token-1")
	if err != nil || claimed {
		t.Fatalf("expected replay to be rejected, got %v/%v", claimed, err)
	}
}

func TestIdempotencyGuardTTL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	guard := NewIdempotencyGuard(client, 24*time.Hour)
	ctx := context.Background()

	if claimed, _ := guard.TryClaim(ctx, "token-1"); !claimed {
		t.Fatalf("first claim must succeed")
	}

	mr.FastForward(24*time.Hour + time.Minute)

	if claimed, _ := guard.TryClaim(ctx, "token-1"); !claimed {
		t.Fatalf("token must be claimable again after the window")
	}
}
