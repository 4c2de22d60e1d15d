package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/domain"
	"brainbolt-service/internal/infra/memory"
)

type countingRanking struct {
	app.RankingCache
	mu    sync.Mutex
	calls int
}

func (r *countingRanking) TopByScore(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	return r.RankingCache.TopByScore(ctx, limit)
}

func TestLeaderboardServiceCachesSnapshots(t *testing.T) {
	ctx := context.Background()
	ranking := &countingRanking{RankingCache: memory.NewRankingCache()}
	_ = ranking.Upsert(ctx, "u1", 30, 3)
	_ = ranking.Upsert(ctx, "u2", 20, 5)

	service := app.NewLeaderboardService(ranking, time.Minute)

	first, err := service.TopByScore(ctx, 10)
	if err != nil {
		t.Fatalf("top by score: %v", err)
	}
	if len(first) != 2 || first[0].UserID != "u1" {
		t.Fatalf("unexpected entries: %+v", first)
	}

	if _, err := service.TopByScore(ctx, 10); err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if ranking.calls != 1 {
		t.Fatalf("expected one backend read, got %d", ranking.calls)
	}

	// A different limit is a different snapshot.
	if _, err := service.TopByScore(ctx, 1); err != nil {
		t.Fatalf("limited read: %v", err)
	}
	if ranking.calls != 2 {
		t.Fatalf("expected second backend read, got %d", ranking.calls)
	}
}

func TestLeaderboardSnapshotNotSharedWithCallers(t *testing.T) {
	ctx := context.Background()
	ranking := memory.NewRankingCache()
	_ = ranking.Upsert(ctx, "u1", 30, 3)
	_ = ranking.Upsert(ctx, "u2", 20, 5)

	service := app.NewLeaderboardService(ranking, time.Minute)

	first, err := service.TopByScore(ctx, 10)
	if err != nil {
		t.Fatalf("top by score: %v", err)
	}
	first[0] = domain.RankEntry{UserID: "mangled", Value: -1}

	second, err := service.TopByScore(ctx, 10)
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if second[0].UserID != "u1" || second[0].Value != 30 {
		t.Fatalf("caller mutation leaked into the cached snapshot: %+v", second)
	}
}

func TestLeaderboardOrderingNonIncreasing(t *testing.T) {
	ctx := context.Background()
	ranking := memory.NewRankingCache()
	_ = ranking.Upsert(ctx, "u1", 30, 1)
	_ = ranking.Upsert(ctx, "u2", 50, 9)
	_ = ranking.Upsert(ctx, "u3", 40, 4)

	service := app.NewLeaderboardService(ranking, 0)

	for _, fetch := range []func() ([]domain.RankEntry, error){
		func() ([]domain.RankEntry, error) { return service.TopByScore(ctx, 10) },
		func() ([]domain.RankEntry, error) { return service.TopByStreak(ctx, 10) },
	} {
		entries, err := fetch()
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Value > entries[i-1].Value {
				t.Fatalf("ordering violated at %d: %+v", i, entries)
			}
		}
	}
}
