package memory

import (
	"context"
	"sort"
	"sync"

	"brainbolt-service/internal/domain"
)

// RankingCache is an in-process stand-in for the Redis sorted sets.
type RankingCache struct {
	mu      sync.RWMutex
	scores  map[string]int64
	streaks map[string]int64
}

func NewRankingCache() *RankingCache {
	return &RankingCache{
		scores:  make(map[string]int64),
		streaks: make(map[string]int64),
	}
}

func (c *RankingCache) Upsert(_ context.Context, userID string, totalScore int64, streak int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scores[userID] = totalScore
	c.streaks[userID] = int64(streak)
	return nil
}

func (c *RankingCache) TopByScore(_ context.Context, limit int) ([]domain.RankEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return topN(c.scores, limit), nil
}

func (c *RankingCache) TopByStreak(_ context.Context, limit int) ([]domain.RankEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return topN(c.streaks, limit), nil
}

func (c *RankingCache) ScoreRank(_ context.Context, userID string) (int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return rankOf(c.scores, userID)
}

func (c *RankingCache) StreakRank(_ context.Context, userID string) (int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return rankOf(c.streaks, userID)
}

func topN(values map[string]int64, limit int) []domain.RankEntry {
	entries := sortedEntries(values)
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

func rankOf(values map[string]int64, userID string) (int64, bool, error) {
	if _, ok := values[userID]; !ok {
		return 0, false, nil
	}
	for i, entry := range sortedEntries(values) {
		if entry.UserID == userID {
			return int64(i + 1), true, nil
		}
	}
	return 0, false, nil
}

// sortedEntries orders by value descending, member ascending on ties, so
// repeated reads are deterministic.
func sortedEntries(values map[string]int64) []domain.RankEntry {
	entries := make([]domain.RankEntry, 0, len(values))
	for userID, value := range values {
		entries = append(entries, domain.RankEntry{UserID: userID, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].UserID < entries[j].UserID
	})
	return entries
}
