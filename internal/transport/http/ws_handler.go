package http

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"brainbolt-service/internal/app"
	"brainbolt-service/internal/domain"
)

// WSHandler streams leaderboard snapshots to websocket clients as submissions
// land. Clients may filter on one metric via ?metric=score|streak.
type WSHandler struct {
	hub      *app.LeaderboardHub
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *app.LeaderboardHub, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage struct {
	Type    string             `json:"type"`
	Payload domain.Leaderboard `json:"payload"`
}

// ServeWS upgrades the request and relays hub snapshots until the client
// disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric != "" && metric != app.MetricScore && metric != app.MetricStreak {
		http.Error(w, "metric must be score or streak", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel := h.hub.Subscribe()
	defer cancel()

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		// Inbound payloads are ignored; reading only detects disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if metric != "" && update.Metric != metric {
				continue
			}
			if err := conn.WriteJSON(outboundMessage{Type: "leaderboard", Payload: update}); err != nil {
				h.logger.Warn("ws write failed", zap.Error(err))
				return
			}
		case <-readerDone:
			return
		}
	}
}
