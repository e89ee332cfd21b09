package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/subscription"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// DefaultHeartbeatInterval is how often a ping goes out on an open
	// WebSocket connection.
	DefaultHeartbeatInterval = 20 * time.Second

	// DefaultRateCeiling caps tick frames per second per connection.
	DefaultRateCeiling = 50

	writeWait = 5 * time.Second
)

// tickFrame is the JSON envelope written to WebSocket consumers.
type tickFrame struct {
	Type string     `json:"type"`
	Tick quote.Tick `json:"tick"`
}

// PushSession pushes one subscription's ticks over one WebSocket
// connection. All data frames are written by the drain loop; the heartbeat
// goroutine only sends control frames, serialized by writeMu.
type PushSession struct {
	conn      *websocket.Conn
	rec       *subscription.Record
	metrics   *observability.Metrics
	log       zerolog.Logger
	heartbeat time.Duration
	throttle  *Throttle

	writeMu sync.Mutex
}

// NewPushSession wraps an upgraded connection. rateCeiling <= 0 disables
// the per-connection rate limit.
func NewPushSession(conn *websocket.Conn, rec *subscription.Record, heartbeat time.Duration, rateCeiling int, metrics *observability.Metrics, log zerolog.Logger) *PushSession {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeatInterval
	}
	return &PushSession{
		conn:      conn,
		rec:       rec,
		metrics:   metrics,
		log:       log.With().Str("subscription_id", rec.ID).Logger(),
		heartbeat: heartbeat,
		throttle: NewThrottle(rateCeiling, func() {
			metrics.TicksDropped.WithLabelValues("rate_limit").Inc()
		}),
	}
}

// Run drives the session until the consumer disconnects, the context ends,
// or the subscription's queue closes. It always closes the connection
// before returning.
func (s *PushSession) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	s.metrics.StreamSessions.WithLabelValues("websocket").Inc()
	defer s.metrics.StreamSessions.WithLabelValues("websocket").Dec()

	pongWait := 2 * s.heartbeat
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The read pump discards inbound frames. Its only job is running the
	// pong handler and noticing the peer is gone.
	go func() {
		defer cancel()
		for {
			if _, _, err := s.conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go s.heartbeatLoop(ctx, cancel)

	s.drain(ctx)

	s.writeMu.Lock()
	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	s.writeMu.Unlock()
}

func (s *PushSession) heartbeatLoop(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(s.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.writeMu.Unlock()
			if err != nil {
				cancel()
				return
			}
			s.metrics.HeartbeatsSent.Inc()
		}
	}
}

func (s *PushSession) drain(ctx context.Context) {
	q := s.rec.Queue()
	for {
		if t, ok := s.throttle.Next(time.Now()); ok {
			if err := s.writeTick(t); err != nil {
				return
			}
		}

		wait := s.throttle.Wait(time.Now(), s.heartbeat)
		t, err := q.PopBlocking(ctx, wait)
		switch {
		case err == nil:
			s.throttle.Offer(t)

		case errors.Is(err, subscription.ErrQueueTimeout):
			// Nothing new; the top of the loop flushes any held tick. If
			// the subscription was cancelled in the meantime, flush and
			// stop rather than idle on a dead record.
			if !s.rec.IsActive() {
				if t, ok := s.throttle.Flush(); ok {
					s.writeTick(t)
				}
				return
			}

		case errors.Is(err, subscription.ErrQueueClosed):
			if t, ok := s.throttle.Flush(); ok {
				s.writeTick(t)
			}
			return

		default:
			return
		}
	}
}

func (s *PushSession) writeTick(t quote.Tick) error {
	payload, err := json.Marshal(tickFrame{Type: "tick", Tick: t})
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return err
	}
	s.metrics.ItemsDelivered.WithLabelValues("websocket").Inc()
	return nil
}
