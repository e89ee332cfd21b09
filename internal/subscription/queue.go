package subscription

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"TickGate/internal/quote"
)

// TickQueue is a fixed-capacity drop-oldest buffer between the callback
// goroutine and one protocol consumer. Push never blocks: on overflow the
// oldest element is evicted so consumers always see the most recent ticks.
// PopBlocking is safe from any goroutine; Close wakes blocked readers, who
// drain the remaining items before observing ErrQueueClosed.
type TickQueue struct {
	mu     sync.Mutex
	buf    []quote.Tick
	head   int
	count  int
	closed bool

	// wake is a capacity-1 notification channel; a lost signal only delays a
	// reader until its next timeout, it never loses data.
	wake chan struct{}
	done chan struct{}

	closeOnce sync.Once
	dropped   atomic.Uint64
}

// NewTickQueue creates a queue with the given capacity (minimum 1).
func NewTickQueue(capacity int) *TickQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &TickQueue{
		buf:  make([]quote.Tick, capacity),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Push appends a tick, evicting the oldest element first when full. It
// reports whether an element was evicted. Pushing to a closed queue is a
// no-op: cancellation must be visible before the next tick is buffered.
func (q *TickQueue) Push(t quote.Tick) (evicted bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	if q.count == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.count--
		q.dropped.Add(1)
		evicted = true
	}
	q.buf[(q.head+q.count)%len(q.buf)] = t
	q.count++
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return evicted
}

// PopBlocking removes and returns the oldest buffered tick, waiting up to
// timeout for one to arrive. It returns ErrQueueTimeout when the wait
// elapses, ErrQueueClosed once the queue is closed and empty, and the
// context error when ctx is done.
func (q *TickQueue) PopBlocking(ctx context.Context, timeout time.Duration) (quote.Tick, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		q.mu.Lock()
		if q.count > 0 {
			t := q.buf[q.head]
			q.head = (q.head + 1) % len(q.buf)
			q.count--
			q.mu.Unlock()
			return t, nil
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return quote.Tick{}, ErrQueueClosed
		}

		select {
		case <-q.wake:
		case <-q.done:
		case <-timer.C:
			return quote.Tick{}, ErrQueueTimeout
		case <-ctx.Done():
			return quote.Tick{}, ctx.Err()
		}
	}
}

// Snapshot returns a copy of the buffered ticks in arrival order without
// consuming them. Used by the pull adapter.
func (q *TickQueue) Snapshot() []quote.Tick {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]quote.Tick, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

// Close stops further pushes and wakes blocked readers. Buffered items stay
// readable until drained. Idempotent.
func (q *TickQueue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.done)
	})
}

// Len returns the number of buffered ticks.
func (q *TickQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns the number of ticks evicted by overflow.
func (q *TickQueue) Dropped() uint64 {
	return q.dropped.Load()
}
