package server

import (
	"net/http"

	"TickGate/internal/delivery"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from dashboards on other origins;
		// authentication is handled at the edge.
		return true
	},
}

// handleSubscriptionSocket upgrades GET /ws/subscriptions/{id} and pushes
// the subscription's ticks until either side goes away.
func (s *GRPCServer) handleSubscriptionSocket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "subscription id is required", http.StatusBadRequest)
		return
	}

	rec, err := s.deps.Subscriptions.Get(id)
	if err != nil {
		http.Error(w, "subscription not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		s.deps.Log.Debug().Err(err).Str("id", id).Msg("websocket upgrade failed")
		return
	}

	sess := delivery.NewPushSession(conn, rec,
		s.deps.HeartbeatInterval, s.deps.RateCeiling, s.deps.Metrics, s.deps.Log)
	sess.Run(r.Context())
}
