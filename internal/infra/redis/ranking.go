package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"brainbolt-service/internal/domain"
)

const (
	scoreKey  = "leaderboard:score"
	streakKey = "leaderboard:streak"
)

// RankingCache keeps the two leaderboards in Redis sorted sets. ZADD is an
// idempotent upsert: replaying the same final score leaves the set unchanged.
type RankingCache struct {
	client *redis.Client
}

func NewRankingCache(client *redis.Client) *RankingCache {
	return &RankingCache{client: client}
}

// Upsert writes both leaderboard entries in one pipeline.
func (c *RankingCache) Upsert(ctx context.Context, userID string, totalScore int64, streak int) error {
	pipe := c.client.Pipeline()
	pipe.ZAdd(ctx, scoreKey, redis.Z{Score: float64(totalScore), Member: userID})
	pipe.ZAdd(ctx, streakKey, redis.Z{Score: float64(streak), Member: userID})
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RankingCache) TopByScore(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	return c.top(ctx, scoreKey, limit)
}

func (c *RankingCache) TopByStreak(ctx context.Context, limit int) ([]domain.RankEntry, error) {
	return c.top(ctx, streakKey, limit)
}

func (c *RankingCache) ScoreRank(ctx context.Context, userID string) (int64, bool, error) {
	return c.rank(ctx, scoreKey, userID)
}

func (c *RankingCache) StreakRank(ctx context.Context, userID string) (int64, bool, error) {
	return c.rank(ctx, streakKey, userID)
}

func (c *RankingCache) top(ctx context.Context, key string, limit int) ([]domain.RankEntry, error) {
	if limit < 1 {
		limit = 1
	}
	members, err := c.client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.RankEntry, 0, len(members))
	for _, member := range members {
		userID, ok := member.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.RankEntry{UserID: userID, Value: int64(member.Score)})
	}
	return entries, nil
}

// rank returns the 1-based descending position, or ok=false when the user has
// no entry yet.
func (c *RankingCache) rank(ctx context.Context, key, userID string) (int64, bool, error) {
	rank, err := c.client.ZRevRank(ctx, key, userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rank + 1, true, nil
}
