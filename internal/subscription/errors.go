package subscription

import "errors"

// Error kinds surfaced by the registry and lifecycle coordinator. Callers
// match with errors.Is; the gRPC layer maps each kind to a status code.
var (
	// ErrInvalidArgument covers empty or malformed symbol sets and unknown
	// adjust types.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means the subscription id is unknown or already removed.
	ErrNotFound = errors.New("subscription not found")

	// ErrCapacityExceeded means the active-subscription cap is reached.
	// Creation fails without side effects.
	ErrCapacityExceeded = errors.New("subscription capacity exceeded")

	// ErrUpstreamUnavailable means the upstream feed rejected the
	// subscribe/unsubscribe call.
	ErrUpstreamUnavailable = errors.New("upstream feed unavailable")
)

// Queue read outcomes. Delivery drops are never errors; they are visible
// only through counters.
var (
	// ErrQueueTimeout means PopBlocking waited the full timeout with no item.
	ErrQueueTimeout = errors.New("queue read timed out")

	// ErrQueueClosed means the queue was closed and fully drained.
	ErrQueueClosed = errors.New("queue closed")
)
