// Package bridge is the single entry point the upstream feed invokes for
// every tick. It runs on the feed's delivery goroutine, so every operation
// here must be prompt and non-blocking, and no fault may escape back into
// the feed. A panic at this boundary silently stops tick delivery for the
// whole process.
package bridge

import (
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/subscription"

	"github.com/rs/zerolog"
)

// Bridge routes raw ticks to subscription queues.
type Bridge struct {
	registry *subscription.Registry
	adjuster *quote.Adjuster
	metrics  *observability.Metrics
	log      zerolog.Logger

	// tee receives a copy of every routed-or-not tick for the archive
	// worker. Sends never block; a full channel drops the copy.
	tee chan<- quote.Tick
}

func New(registry *subscription.Registry, adjuster *quote.Adjuster, metrics *observability.Metrics, log zerolog.Logger) *Bridge {
	return &Bridge{
		registry: registry,
		adjuster: adjuster,
		metrics:  metrics,
		log:      log,
	}
}

// SetArchiveTee installs the archive channel. Called once during wiring,
// before the tick handler is registered.
func (b *Bridge) SetArchiveTee(tee chan<- quote.Tick) {
	b.tee = tee
}

// OnTick handles one tick from the feed. Errors are counted and swallowed:
// a malformed or unroutable tick is dropped, never propagated, and one bad
// tick must not halt delivery for any other subscription.
func (b *Bridge) OnTick(t quote.Tick) {
	defer func() {
		if r := recover(); r != nil {
			b.metrics.BridgePanics.Inc()
			b.log.Error().Interface("panic", r).Str("symbol", t.Symbol).
				Msg("recovered panic in tick bridge")
		}
	}()

	start := time.Now()
	b.metrics.TicksReceived.Inc()

	if err := t.Validate(); err != nil {
		b.metrics.TicksDropped.WithLabelValues("malformed").Inc()
		b.log.Debug().Err(err).Msg("drop malformed tick")
		return
	}

	recs := b.registry.Resolve(t.Symbol)
	if len(recs) == 0 {
		b.metrics.TicksDropped.WithLabelValues("unroutable").Inc()
	}

	for _, rec := range recs {
		// A cancelled record may briefly remain visible to an in-flight
		// Resolve; the status check keeps its queue untouched.
		if !rec.IsActive() {
			continue
		}

		q := rec.Queue()
		if q.Push(b.adjuster.Apply(t, rec.Adjust)) {
			b.metrics.TicksDropped.WithLabelValues("overflow").Inc()
		}
		b.metrics.TicksRouted.Inc()
		b.metrics.QueueDepth.Observe(float64(q.Len()))
	}

	if b.tee != nil {
		select {
		case b.tee <- t:
		default:
			b.metrics.ArchiveDrops.Inc()
		}
	}

	b.metrics.BridgeDuration.Observe(time.Since(start).Seconds())
}

// OnFactor records an adjustment-factor announcement.
func (b *Bridge) OnFactor(symbol string, f quote.Factor) {
	b.adjuster.SetFactor(symbol, f)
	b.log.Debug().Str("symbol", symbol).
		Float64("front", f.Front).Float64("back", f.Back).
		Msg("adjust factor updated")
}
