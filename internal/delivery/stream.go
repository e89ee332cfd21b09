package delivery

import (
	"context"
	"errors"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/subscription"
)

// DefaultKeepAliveInterval is how long a stream may sit idle before a
// keep-alive frame goes out.
const DefaultKeepAliveInterval = 15 * time.Second

// StreamQueue drains rec's queue into sink until the consumer disconnects,
// the context ends, or the subscription is cancelled and its queue runs
// dry. A sink error is a normal disconnect, not a failure: the return is
// always nil so transport handlers treat every exit the same way.
func StreamQueue(ctx context.Context, rec *subscription.Record, sink Sink, keepalive time.Duration, metrics *observability.Metrics, transport string) {
	if keepalive <= 0 {
		keepalive = DefaultKeepAliveInterval
	}

	metrics.StreamSessions.WithLabelValues(transport).Inc()
	defer metrics.StreamSessions.WithLabelValues(transport).Dec()

	q := rec.Queue()
	for {
		t, err := q.PopBlocking(ctx, keepalive)
		switch {
		case err == nil:
			if sink.Send(t) != nil {
				return
			}
			metrics.ItemsDelivered.WithLabelValues(transport).Inc()

		case errors.Is(err, subscription.ErrQueueTimeout):
			// An idle queue on a cancelled subscription means the stream
			// outlived its record; stop instead of keeping it alive.
			if !rec.IsActive() {
				return
			}
			if sink.KeepAlive() != nil {
				return
			}
			metrics.KeepalivesSent.Inc()

		case errors.Is(err, subscription.ErrQueueClosed):
			return

		default:
			// Context cancelled or deadline exceeded.
			return
		}
	}
}
