package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TickGate/internal/archive"
	"TickGate/internal/bridge"
	"TickGate/internal/delivery"
	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/server"
	"TickGate/internal/subscription"
	"TickGate/internal/trading"
	"TickGate/internal/upstream"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds all application configuration, loaded from environment
// variables.
type Config struct {
	// Mode selects the upstream implementations and trading policy.
	Mode             string
	AllowRealTrading bool

	// Upstream gateway
	NATSURL          string
	MockTickInterval time.Duration

	// Subscription limits
	MaxSubscriptions int
	QueueCapacity    int

	// Delivery tuning
	KeepAliveInterval time.Duration
	HeartbeatInterval time.Duration
	RateCeiling       int

	// Optional tick archive; empty DSN disables it
	PostgresDSN      string
	ArchiveBatchSize int
	MigrationsDir    string

	// gRPC/HTTP/Metrics
	GRPCAddr    string
	HTTPAddr    string
	MetricsAddr string
}

func DefaultConfig() Config {
	return Config{
		Mode:              envOrDefault("TICKGATE_MODE", "mock"),
		AllowRealTrading:  os.Getenv("TICKGATE_ALLOW_REAL_TRADING") == "true",
		NATSURL:           envOrDefault("TICKGATE_NATS_URL", "nats://localhost:4222"),
		MockTickInterval:  envDurOrDefault("TICKGATE_MOCK_TICK_INTERVAL", 200*time.Millisecond),
		MaxSubscriptions:  envIntOrDefault("TICKGATE_MAX_SUBSCRIPTIONS", subscription.DefaultMaxActive),
		QueueCapacity:     envIntOrDefault("TICKGATE_QUEUE_CAPACITY", subscription.DefaultQueueCapacity),
		KeepAliveInterval: envDurOrDefault("TICKGATE_KEEPALIVE_INTERVAL", delivery.DefaultKeepAliveInterval),
		HeartbeatInterval: envDurOrDefault("TICKGATE_HEARTBEAT_INTERVAL", delivery.DefaultHeartbeatInterval),
		RateCeiling:       envIntOrDefault("TICKGATE_RATE_CEILING", delivery.DefaultRateCeiling),
		PostgresDSN:       os.Getenv("TICKGATE_POSTGRES_DSN"),
		ArchiveBatchSize:  envIntOrDefault("TICKGATE_ARCHIVE_BATCH_SIZE", archive.DefaultBatchSize),
		MigrationsDir:     envOrDefault("TICKGATE_MIGRATIONS_DIR", "migrations"),
		GRPCAddr:          envOrDefault("TICKGATE_GRPC_ADDR", ":9090"),
		HTTPAddr:          envOrDefault("TICKGATE_HTTP_ADDR", ":8080"),
		MetricsAddr:       envOrDefault("TICKGATE_METRICS_ADDR", ":9091"),
	}
}

func main() {
	log := observability.NewLogger("main")
	log.Info().Msg("TickGate starting")

	cfg := DefaultConfig()

	mode, err := upstream.ParseMode(cfg.Mode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid TICKGATE_MODE")
	}

	// --- Context with graceful shutdown ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// --- Observability ---
	metrics := observability.NewMetrics()
	healthChecker := observability.NewHealthChecker()

	// --- Core routing state ---
	adjuster := quote.NewAdjuster()
	registry := subscription.NewRegistry(cfg.MaxSubscriptions, cfg.QueueCapacity)
	tickBridge := bridge.New(registry, adjuster, metrics, observability.NewLogger("bridge"))

	// --- Upstream feed and trader per mode ---
	var feed upstream.Feed
	var trader trading.Trader

	switch mode {
	case upstream.ModeMock:
		feed = upstream.NewMockFeed(cfg.MockTickInterval, observability.NewLogger("mockfeed"))

	case upstream.ModeDev, upstream.ModeProd:
		nc, err := upstream.ConnectNATS(cfg.NATSURL, observability.NewLogger("nats"))
		if err != nil {
			log.Fatal().Err(err).Msg("nats connect")
		}
		defer nc.Close()
		log.Info().Str("url", cfg.NATSURL).Msg("NATS connected")

		feed = upstream.NewNATSFeed(nc, observability.NewLogger("feed"))
		trader = trading.NewNATSTrader(nc, observability.NewLogger("trader"))
	}

	feed.RegisterTickHandler(tickBridge.OnTick)
	feed.RegisterFactorHandler(tickBridge.OnFactor)

	errChan := make(chan error, 10)

	// --- Optional tick archive ---
	var archiveChan chan quote.Tick
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres open")
		}
		defer db.Close()

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("postgres ping")
		}
		log.Info().Msg("Postgres connected, tick archive enabled")

		migrator := archive.NewMigrator(db, cfg.MigrationsDir, observability.NewLogger("migrator"))
		if err := migrator.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}

		archiveChan = make(chan quote.Tick, 4096)
		tickBridge.SetArchiveTee(archiveChan)

		worker := archive.NewWorker(db, archiveChan, cfg.ArchiveBatchSize,
			archive.DefaultFlushTimeout, metrics, observability.NewLogger("archive"))
		go func() {
			errChan <- worker.Run(ctx)
		}()
	}

	// --- Connect upstream ---
	if err := feed.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("upstream connect")
	}
	defer feed.Close()

	// --- Services ---
	subService := subscription.NewService(registry, feed, metrics, observability.NewLogger("subscriptions"))

	policy := trading.Policy{Mode: mode, AllowRealTrading: cfg.AllowRealTrading}
	tradingService := trading.NewService(policy, trader, observability.NewLogger("trading"))
	if policy.AllowsRealTrading() {
		log.Warn().Msg("real trading ENABLED, orders will reach the upstream gateway")
	} else {
		log.Info().Stringer("mode", mode).Msg("trading intercepted, orders are simulated")
	}

	// --- gRPC + gRPC-Gateway server ---
	grpcServer := server.NewGRPCServer(cfg.GRPCAddr, cfg.HTTPAddr, &server.ServerDeps{
		Subscriptions:     subService,
		Trading:           tradingService,
		Metrics:           metrics,
		HealthChecker:     healthChecker,
		Log:               observability.NewLogger("server"),
		KeepAliveInterval: cfg.KeepAliveInterval,
		HeartbeatInterval: cfg.HeartbeatInterval,
		RateCeiling:       cfg.RateCeiling,
	})

	go func() {
		errChan <- grpcServer.StartGRPC(ctx)
	}()
	go func() {
		errChan <- grpcServer.StartHTTPGateway(ctx)
	}()

	// --- Prometheus metrics server ---
	go func() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		metricsServer := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: metricsMux,
		}
		go func() {
			<-ctx.Done()
			shutCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
			defer c()
			metricsServer.Shutdown(shutCtx)
		}()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server listening")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	healthChecker.SetReady(true)
	log.Info().
		Stringer("mode", mode).
		Str("grpc", cfg.GRPCAddr).
		Str("http", cfg.HTTPAddr).
		Str("metrics", cfg.MetricsAddr).
		Msg("TickGate ready")

	// --- Wait for shutdown signal ---
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errChan:
		log.Error().Err(err).Msg("goroutine failed, shutting down")
	}

	healthChecker.SetReady(false)
	cancel()

	// Close standing subscriptions while the feed can still honor the
	// unsubscribes, then stop tick delivery.
	for _, rec := range subService.List() {
		if err := subService.Cancel(rec.ID); err != nil {
			log.Warn().Err(err).Str("id", rec.ID).Msg("cancel on shutdown failed")
		}
	}
	feed.Close()

	if archiveChan != nil {
		close(archiveChan)
	}

	log.Info().Msg("TickGate shutdown complete")
}

// --- Helpers ---

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envIntOrDefault(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var i int
	if _, err := fmt.Sscanf(v, "%d", &i); err != nil {
		return defaultVal
	}
	return i
}

func envDurOrDefault(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
