package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"brainbolt-service/internal/domain"
)

// Leaderboard metric names as they appear in routes and stream payloads.
const (
	MetricScore  = "score"
	MetricStreak = "streak"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// LeaderboardService serves top-N reads through a short-lived snapshot cache.
// Concurrent identical reads collapse onto one ranking-cache round trip.
type LeaderboardService struct {
	ranking RankingCache
	ttl     time.Duration
	clock   func() time.Time
	sf      singleflight.Group

	mu    sync.RWMutex
	cache map[string]cachedBoard
}

type cachedBoard struct {
	entries   []domain.RankEntry
	expiresAt time.Time
}

func NewLeaderboardService(ranking RankingCache, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{
		ranking: ranking,
		ttl:     ttl,
		clock:   time.Now,
		cache:   make(map[string]cachedBoard),
	}
}

// TopByScore returns up to limit users ordered by total score descending.
func (s *LeaderboardService) TopByScore(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	limit = clampLimit(limit)
	return s.top(ctx, MetricScore, limit, func(ctx context.Context) ([]domain.RankEntry, error) {
		return s.ranking.TopByScore(ctx, limit)
	})
}

// TopByStreak returns up to limit users ordered by streak descending.
func (s *LeaderboardService) TopByStreak(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	limit = clampLimit(limit)
	return s.top(ctx, MetricStreak, limit, func(ctx context.Context) ([]domain.RankEntry, error) {
		return s.ranking.TopByStreak(ctx, limit)
	})
}

func (s *LeaderboardService) top(ctx context.Context, metric string, limit int, fetch func(ctx context.Context) ([]domain.RankEntry, error)) ([]domain.RankEntry, error) {
	key := fmt.Sprintf("%s:%d", metric, limit)
	now := s.clock()

	if s.ttl > 0 {
		s.mu.RLock()
		entry, ok := s.cache[key]
		s.mu.RUnlock()
		if ok && entry.expiresAt.After(now) {
			return copyEntries(entry.entries), nil
		}
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		entries, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if s.ttl > 0 {
			s.mu.Lock()
			s.cache[key] = cachedBoard{entries: copyEntries(entries), expiresAt: s.clock().Add(s.ttl)}
			s.mu.Unlock()
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers get their own slice; the cached snapshot must stay pristine.
	return copyEntries(result.([]domain.RankEntry)), nil
}

func copyEntries(entries []domain.RankEntry) []domain.RankEntry {
	out := make([]domain.RankEntry, len(entries))
	copy(out, entries)
	return out
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		return maxLeaderboardLimit
	}
	return limit
}
