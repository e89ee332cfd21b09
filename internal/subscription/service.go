package subscription

import (
	"errors"
	"fmt"
	"sync"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/upstream"

	"github.com/rs/zerolog"
)

// Service is the lifecycle coordinator. Creation registers first and then
// subscribes upstream, rolling the registration back on failure. Teardown
// removes the registration, unsubscribes upstream, and closes the queue, in
// that order, so no tick is processed against a half-torn-down subscription.
type Service struct {
	registry *Registry
	feed     upstream.Feed
	metrics  *observability.Metrics
	log      zerolog.Logger

	mu      sync.Mutex
	handles map[string]upstream.Handle
}

func NewService(registry *Registry, feed upstream.Feed, metrics *observability.Metrics, log zerolog.Logger) *Service {
	return &Service{
		registry: registry,
		feed:     feed,
		metrics:  metrics,
		log:      log,
		handles:  make(map[string]upstream.Handle),
	}
}

// Create registers a new subscription and subscribes upstream. A failed
// upstream subscribe rolls the registration back, leaving no side effects.
func (s *Service) Create(symbols []string, adjust quote.AdjustType) (*Record, error) {
	rec, err := s.registry.Create(symbols, adjust)
	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityExceeded):
			s.metrics.SubscriptionCreates.WithLabelValues("capacity").Inc()
		default:
			s.metrics.SubscriptionCreates.WithLabelValues("invalid").Inc()
		}
		return nil, err
	}

	handle, err := s.feed.Subscribe(rec.Symbols)
	if err != nil {
		if _, cerr := s.registry.Cancel(rec.ID); cerr == nil {
			rec.setStatus(StatusClosed)
		}
		s.metrics.SubscriptionCreates.WithLabelValues("upstream").Inc()
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	s.mu.Lock()
	s.handles[rec.ID] = handle
	s.mu.Unlock()

	s.metrics.SubscriptionCreates.WithLabelValues("ok").Inc()
	s.metrics.SubscriptionsActive.Set(float64(s.registry.Len()))
	s.log.Info().
		Str("id", rec.ID).
		Strs("symbols", rec.Symbols).
		Stringer("adjust", rec.Adjust).
		Msg("subscription created")
	return rec, nil
}

// Get returns the record for id.
func (s *Service) Get(id string) (*Record, error) {
	return s.registry.Get(id)
}

// List returns a snapshot of all subscriptions.
func (s *Service) List() []*Record {
	return s.registry.List()
}

// Snapshot returns the currently buffered ticks for id without consuming
// them. A subscription whose queue was never created returns an empty
// result without allocating one.
func (s *Service) Snapshot(id string) ([]quote.Tick, error) {
	rec, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	q := rec.PeekQueue()
	if q == nil {
		return nil, nil
	}
	return q.Snapshot(), nil
}

// Cancel removes the subscription, unsubscribes upstream, and closes the
// queue. After Cancel returns, the id is no longer resolvable and repeat
// cancels fail with ErrNotFound.
func (s *Service) Cancel(id string) error {
	rec, err := s.registry.Cancel(id)
	if err != nil {
		s.metrics.SubscriptionCancels.WithLabelValues("not_found").Inc()
		return err
	}

	s.mu.Lock()
	handle, ok := s.handles[id]
	delete(s.handles, id)
	s.mu.Unlock()

	if ok {
		if err := s.feed.Unsubscribe(handle); err != nil {
			// The record is already out of the registry; upstream keeps
			// delivering until its session expires, and the bridge drops
			// those ticks as unroutable.
			s.log.Warn().Err(err).Str("id", id).Msg("upstream unsubscribe failed")
		}
	}

	if q := rec.PeekQueue(); q != nil {
		q.Close()
	}
	rec.setStatus(StatusClosed)
	// Queue creation can race the peek above. Queue() closes what it
	// creates once it observes a non-active status; this second peek
	// catches a queue stored just before the status became visible.
	if q := rec.PeekQueue(); q != nil {
		q.Close()
	}

	s.metrics.SubscriptionCancels.WithLabelValues("ok").Inc()
	s.metrics.SubscriptionsActive.Set(float64(s.registry.Len()))
	s.log.Info().Str("id", id).Msg("subscription cancelled")
	return nil
}
