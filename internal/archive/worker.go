package archive

import (
	"context"
	"database/sql"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"

	"github.com/rs/zerolog"
)

const (
	DefaultBatchSize    = 256
	DefaultFlushTimeout = 1 * time.Second

	// maxWriteAttempts bounds retries per batch. The archive is
	// best-effort: after this many failures the batch is dropped and
	// counted, and live delivery is never held up.
	maxWriteAttempts = 3
)

// Worker drains the tick tee channel and batch-writes to Postgres. It
// flushes when the batch fills or the flush timeout expires.
type Worker struct {
	writer       *TickWriter
	input        <-chan quote.Tick
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
	log          zerolog.Logger
}

func NewWorker(db *sql.DB, input <-chan quote.Tick, batchSize int, flushTimeout time.Duration, metrics *observability.Metrics, log zerolog.Logger) *Worker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if flushTimeout <= 0 {
		flushTimeout = DefaultFlushTimeout
	}
	return &Worker{
		writer:       NewTickWriter(db),
		input:        input,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
		log:          log,
	}
}

// Run blocks until ctx is cancelled or the input channel closes, flushing
// any remaining batch on the way out.
func (w *Worker) Run(ctx context.Context) error {
	batch := make([]TickRow, 0, w.batchSize)

	timer := time.NewTimer(w.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if len(batch) > 0 {
				w.flush(context.Background(), batch)
			}
			return ctx.Err()

		case t, ok := <-w.input:
			if !ok {
				if len(batch) > 0 {
					w.flush(context.Background(), batch)
				}
				return nil
			}

			batch = append(batch, RowFromTick(t, time.Now()))
			if len(batch) >= w.batchSize {
				w.flush(ctx, batch)
				batch = batch[:0]
				timer.Reset(w.flushTimeout)
			}

		case <-timer.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = batch[:0]
			}
			timer.Reset(w.flushTimeout)
		}
	}
}

func (w *Worker) flush(ctx context.Context, batch []TickRow) {
	start := time.Now()
	backoff := 100 * time.Millisecond

	for attempt := 1; ; attempt++ {
		err := w.writer.WriteBatch(ctx, batch)
		if err == nil {
			w.metrics.ArchiveRowsWritten.Add(float64(len(batch)))
			w.metrics.ArchiveBatchDur.Observe(time.Since(start).Seconds())
			return
		}

		w.metrics.ArchiveErrors.WithLabelValues("write").Inc()
		if attempt >= maxWriteAttempts {
			w.metrics.ArchiveErrors.WithLabelValues("batch_dropped").Inc()
			w.log.Error().Err(err).Int("rows", len(batch)).
				Msg("archive batch dropped after retries")
			return
		}

		w.log.Warn().Err(err).Int("attempt", attempt).Int("rows", len(batch)).
			Msg("archive write failed, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
