// Package delivery drains subscription queues into consumer connections.
// It owns the three consumption shapes: pull snapshots are served straight
// from the registry, while gRPC server streams and WebSocket pushes share
// the blocking drain loop in this package.
package delivery

import "TickGate/internal/quote"

// Sink is one consumer connection. Implementations are not required to be
// safe for concurrent use; the drain loop calls them from a single
// goroutine.
type Sink interface {
	// Send delivers one tick. An error means the consumer is gone and the
	// drain loop should stop.
	Send(t quote.Tick) error

	// KeepAlive signals liveness on an idle connection.
	KeepAlive() error
}
