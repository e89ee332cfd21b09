package subscription

import (
	"sync"
	"sync/atomic"
	"time"

	"TickGate/internal/quote"
)

// Status is the lifecycle state of a subscription as observed by the
// callback bridge and the delivery adapters.
type Status int32

const (
	// StatusActive: registered, ticks flow into the queue.
	StatusActive Status = iota
	// StatusDraining: cancelled; the queue accepts no new pushes but
	// buffered items remain readable.
	StatusDraining
	// StatusClosed: terminal; the queue is discarded.
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDraining:
		return "draining"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Record is one standing subscription. Symbols and AdjustType are immutable
// after creation; the delivery queue is created lazily on first need and is
// owned exclusively by this record.
type Record struct {
	ID        string
	Symbols   []string
	Adjust    quote.AdjustType
	CreatedAt time.Time

	status   atomic.Int32
	queueCap int

	// Lazy queue initialization. The first caller, whether callback
	// goroutine or adapter goroutine, creates the queue exactly once;
	// later callers take the fast path on the atomic pointer.
	queueOnce sync.Once
	queue     atomic.Pointer[TickQueue]
}

func newRecord(id string, symbols []string, adjust quote.AdjustType, queueCap int) *Record {
	return &Record{
		ID:        id,
		Symbols:   symbols,
		Adjust:    adjust,
		CreatedAt: time.Now(),
		queueCap:  queueCap,
	}
}

// Queue returns the record's delivery queue, creating it on first call.
// A queue created after the record has left the active state starts out
// closed: the cancel path had nothing to close at teardown time, and a
// late reader must drain to ErrQueueClosed instead of waiting forever.
func (r *Record) Queue() *TickQueue {
	if q := r.queue.Load(); q != nil {
		return q
	}
	r.queueOnce.Do(func() {
		r.queue.Store(NewTickQueue(r.queueCap))
	})
	q := r.queue.Load()
	if !r.IsActive() {
		q.Close()
	}
	return q
}

// PeekQueue returns the queue if it exists, without allocating one. The pull
// adapter and teardown use this: a subscription that never received a tick
// and was never streamed has no queue to read or close.
func (r *Record) PeekQueue() *TickQueue {
	return r.queue.Load()
}

// Status returns the current lifecycle state.
func (r *Record) Status() Status {
	return Status(r.status.Load())
}

// IsActive reports whether ticks may still be enqueued. The bridge checks
// this before every push.
func (r *Record) IsActive() bool {
	return r.Status() == StatusActive
}

func (r *Record) setStatus(s Status) {
	r.status.Store(int32(s))
}

// Dropped returns the overflow-evicted tick count for this subscription.
func (r *Record) Dropped() uint64 {
	if q := r.PeekQueue(); q != nil {
		return q.Dropped()
	}
	return 0
}

// HasSymbol reports whether the subscription covers the given instrument.
func (r *Record) HasSymbol(symbol string) bool {
	for _, s := range r.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
