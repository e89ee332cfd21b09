package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/subscription"
)

var metrics = observability.NewMetrics()

func newStreamRecord(t *testing.T) *subscription.Record {
	t.Helper()
	registry := subscription.NewRegistry(10, 100)
	rec, err := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return rec
}

// captureSink records everything the drain loop sends.
type captureSink struct {
	ticks      []quote.Tick
	keepalives int
	failAfter  int // fail Send once this many ticks were accepted; 0 = never
}

var errSinkGone = errors.New("consumer gone")

func (c *captureSink) Send(t quote.Tick) error {
	if c.failAfter > 0 && len(c.ticks) >= c.failAfter {
		return errSinkGone
	}
	c.ticks = append(c.ticks, t)
	return nil
}

func (c *captureSink) KeepAlive() error {
	c.keepalives++
	return nil
}

func TestStreamQueueDeliversInOrderUntilClosed(t *testing.T) {
	rec := newStreamRecord(t)
	q := rec.Queue()
	for i := 1; i <= 3; i++ {
		q.Push(quote.Tick{Symbol: "600519.SH", Price: float64(i)})
	}
	q.Close()

	sink := &captureSink{}
	StreamQueue(context.Background(), rec, sink, time.Second, metrics, "grpc")

	if len(sink.ticks) != 3 {
		t.Fatalf("delivered %d ticks, want 3", len(sink.ticks))
	}
	for i, tk := range sink.ticks {
		if tk.Price != float64(i+1) {
			t.Errorf("tick %d price = %f, want %d", i, tk.Price, i+1)
		}
	}
}

func TestStreamQueueSendsKeepAliveWhenIdle(t *testing.T) {
	rec := newStreamRecord(t)

	sink := &captureSink{}
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	StreamQueue(ctx, rec, sink, 30*time.Millisecond, metrics, "grpc")

	if sink.keepalives == 0 {
		t.Error("idle stream sent no keep-alives")
	}
}

func TestStreamQueueStopsOnSinkError(t *testing.T) {
	rec := newStreamRecord(t)
	q := rec.Queue()
	for i := 1; i <= 5; i++ {
		q.Push(quote.Tick{Symbol: "600519.SH", Price: float64(i)})
	}

	sink := &captureSink{failAfter: 2}
	done := make(chan struct{})
	go func() {
		StreamQueue(context.Background(), rec, sink, time.Second, metrics, "grpc")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StreamQueue did not stop on sink error")
	}
	if len(sink.ticks) != 2 {
		t.Errorf("delivered %d ticks before disconnect, want 2", len(sink.ticks))
	}
}

func TestStreamQueueReturnsWhenCancelledBeforeQueueExists(t *testing.T) {
	registry := subscription.NewRegistry(10, 100)
	rec, err := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Cancel before any consumer or tick created the queue, then start a
	// stream on the record resolved earlier. The loop must notice the
	// subscription is gone instead of sending keep-alives forever.
	if _, err := registry.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	done := make(chan struct{})
	go func() {
		StreamQueue(context.Background(), rec, &captureSink{}, 20*time.Millisecond, metrics, "grpc")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("stream still running on a cancelled subscription")
	}
}

func TestStreamQueueStopsOnIdleTimeoutAfterCancel(t *testing.T) {
	registry := subscription.NewRegistry(10, 100)
	rec, err := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	rec.Queue()

	sink := &captureSink{}
	done := make(chan struct{})
	go func() {
		StreamQueue(context.Background(), rec, sink, 20*time.Millisecond, metrics, "grpc")
		close(done)
	}()

	if _, err := registry.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("stream did not stop after its subscription was cancelled")
	}
}

func TestStreamQueueStopsOnContextCancel(t *testing.T) {
	rec := newStreamRecord(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		StreamQueue(ctx, rec, &captureSink{}, time.Minute, metrics, "grpc")
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StreamQueue did not stop on context cancel")
	}
}
