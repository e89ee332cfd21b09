package subscription

import (
	"fmt"
	"sync"

	"TickGate/internal/quote"

	"github.com/google/uuid"
)

// DefaultMaxActive caps concurrently active subscriptions per process.
const DefaultMaxActive = 100

// DefaultQueueCapacity is the per-subscription delivery queue capacity.
const DefaultQueueCapacity = 1000

// Registry owns the id→record map and the symbol index. All mutations are
// serialized behind the write lock; Resolve and Get take the read lock so
// the callback goroutine never waits on another reader.
type Registry struct {
	mu       sync.RWMutex
	subs     map[string]*Record
	bySymbol map[string]map[string]*Record

	maxActive int
	queueCap  int
}

// NewRegistry creates a registry. Non-positive limits fall back to defaults.
func NewRegistry(maxActive, queueCap int) *Registry {
	if maxActive <= 0 {
		maxActive = DefaultMaxActive
	}
	if queueCap <= 0 {
		queueCap = DefaultQueueCapacity
	}
	return &Registry{
		subs:      make(map[string]*Record),
		bySymbol:  make(map[string]map[string]*Record),
		maxActive: maxActive,
		queueCap:  queueCap,
	}
}

// Create validates the symbol set, enforces the active cap, and registers a
// new active record before returning it. Validation happens here as well as
// at the transport layer: no malformed set may construct a record.
func (r *Registry) Create(symbols []string, adjust quote.AdjustType) (*Record, error) {
	normalized, err := quote.NormalizeSymbols(symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.subs) >= r.maxActive {
		return nil, fmt.Errorf("%w: %d active subscriptions (cap %d)",
			ErrCapacityExceeded, len(r.subs), r.maxActive)
	}

	id := uuid.NewString()
	for r.subs[id] != nil {
		id = uuid.NewString()
	}

	rec := newRecord(id, normalized, adjust, r.queueCap)
	r.subs[id] = rec
	for _, s := range normalized {
		idx := r.bySymbol[s]
		if idx == nil {
			idx = make(map[string]*Record)
			r.bySymbol[s] = idx
		}
		idx[id] = rec
	}

	return rec, nil
}

// Get returns the record for id, or ErrNotFound once it has been removed.
func (r *Registry) Get(id string) (*Record, error) {
	r.mu.RLock()
	rec := r.subs[id]
	r.mu.RUnlock()

	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, nil
}

// List returns a point-in-time snapshot of all registered records.
// Order is not guaranteed.
func (r *Registry) List() []*Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, 0, len(r.subs))
	for _, rec := range r.subs {
		out = append(out, rec)
	}
	return out
}

// Cancel transitions the record to draining and removes it from the map and
// the symbol index in one critical section, so the bridge cannot route
// another tick to it. Cancelling an id that is already gone returns
// ErrNotFound; removal is not a silent no-op. The removed record is returned
// for upstream unsubscribe and queue teardown.
func (r *Registry) Cancel(id string) (*Record, error) {
	r.mu.Lock()
	rec := r.subs[id]
	if rec == nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.subs, id)
	for _, s := range rec.Symbols {
		if idx := r.bySymbol[s]; idx != nil {
			delete(idx, id)
			if len(idx) == 0 {
				delete(r.bySymbol, s)
			}
		}
	}
	rec.setStatus(StatusDraining)
	r.mu.Unlock()

	return rec, nil
}

// Resolve returns the records subscribed to symbol. Called by the bridge on
// every tick; the result is a copy so the caller holds no lock while
// pushing.
func (r *Registry) Resolve(symbol string) []*Record {
	r.mu.RLock()
	idx := r.bySymbol[symbol]
	if len(idx) == 0 {
		r.mu.RUnlock()
		return nil
	}
	out := make([]*Record, 0, len(idx))
	for _, rec := range idx {
		out = append(out, rec)
	}
	r.mu.RUnlock()
	return out
}

// Len returns the number of registered subscriptions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
