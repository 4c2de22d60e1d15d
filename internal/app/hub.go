package app

import (
	"sync"

	"brainbolt-service/internal/domain"
)

// LeaderboardHub fans leaderboard snapshots out to subscribers (one per
// websocket connection). Slow consumers never block a publish: the stale
// snapshot in a full channel is dropped in favor of the newest one.
type LeaderboardHub struct {
	mu          sync.Mutex
	subscribers map[chan domain.Leaderboard]struct{}
}

func NewLeaderboardHub() *LeaderboardHub {
	return &LeaderboardHub{
		subscribers: make(map[chan domain.Leaderboard]struct{}),
	}
}

// Subscribe registers a consumer. The caller must invoke the returned cancel
// function to avoid leaks.
func (h *LeaderboardHub) Subscribe() (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers a snapshot to every subscriber without blocking.
func (h *LeaderboardHub) Publish(lb domain.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- lb:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}
