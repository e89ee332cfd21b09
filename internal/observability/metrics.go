package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for TickGate.
type Metrics struct {
	// --- Callback bridge ---
	TicksReceived  prometheus.Counter
	TicksRouted    prometheus.Counter
	TicksDropped   *prometheus.CounterVec // reason: overflow|rate_limit|malformed|unroutable
	BridgeDuration prometheus.Histogram
	BridgePanics   prometheus.Counter

	// --- Subscriptions ---
	SubscriptionsActive prometheus.Gauge
	SubscriptionCreates *prometheus.CounterVec // outcome: ok|invalid|capacity|upstream
	SubscriptionCancels *prometheus.CounterVec // outcome: ok|not_found
	QueueDepth          prometheus.Histogram

	// --- Delivery ---
	StreamSessions *prometheus.GaugeVec // transport: grpc|websocket
	ItemsDelivered *prometheus.CounterVec
	KeepalivesSent prometheus.Counter
	HeartbeatsSent prometheus.Counter

	// --- Archive ---
	ArchiveRowsWritten prometheus.Counter
	ArchiveBatchDur    prometheus.Histogram
	ArchiveErrors      *prometheus.CounterVec
	ArchiveDrops       prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	bridgeBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001,
	}

	return &Metrics{
		TicksReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_ticks_received_total",
			Help: "Ticks delivered by the upstream feed callback",
		}),

		TicksRouted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_ticks_routed_total",
			Help: "Tick-to-subscription deliveries pushed onto queues",
		}),

		TicksDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tickgate_ticks_dropped_total",
			Help: "Ticks dropped (overflow, rate_limit, malformed, unroutable)",
		}, []string{"reason"}),

		BridgeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tickgate_bridge_duration_seconds",
			Help:    "Time spent in the callback bridge per tick",
			Buckets: bridgeBuckets,
		}),

		BridgePanics: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_bridge_panics_total",
			Help: "Panics recovered at the callback boundary",
		}),

		SubscriptionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tickgate_subscriptions_active",
			Help: "Currently active subscriptions",
		}),

		SubscriptionCreates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tickgate_subscription_creates_total",
			Help: "Subscription create attempts by outcome",
		}, []string{"outcome"}),

		SubscriptionCancels: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tickgate_subscription_cancels_total",
			Help: "Subscription cancel attempts by outcome",
		}, []string{"outcome"}),

		QueueDepth: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tickgate_queue_depth",
			Help:    "Delivery queue depth sampled at push",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 250, 500, 1000},
		}),

		StreamSessions: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tickgate_stream_sessions",
			Help: "Open streaming sessions by transport",
		}, []string{"transport"}),

		ItemsDelivered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tickgate_items_delivered_total",
			Help: "Ticks delivered to consumers by transport",
		}, []string{"transport"}),

		KeepalivesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_keepalives_sent_total",
			Help: "Keep-alive frames sent on idle gRPC streams",
		}),

		HeartbeatsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_heartbeats_sent_total",
			Help: "WebSocket ping frames sent",
		}),

		ArchiveRowsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_archive_rows_written_total",
			Help: "Tick rows written to the archive",
		}),

		ArchiveBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tickgate_archive_batch_duration_seconds",
			Help:    "Archive batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ArchiveErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tickgate_archive_errors_total",
			Help: "Archive write errors",
		}, []string{"error_type"}),

		ArchiveDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tickgate_archive_drops_total",
			Help: "Ticks dropped because the archive channel was full",
		}),
	}
}
