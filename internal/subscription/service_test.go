package subscription

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/upstream"

	"github.com/rs/zerolog"
)

// Shared across the package's tests: promauto registers into the global
// registry, so metrics are created once per test binary.
var (
	testMetricsOnce sync.Once
	testMetricsInst *observability.Metrics
)

func testMetrics() *observability.Metrics {
	testMetricsOnce.Do(func() {
		testMetricsInst = observability.NewMetrics()
	})
	return testMetricsInst
}

// stubFeed records subscribe/unsubscribe calls and can be told to fail.
type stubFeed struct {
	mu           sync.Mutex
	next         upstream.Handle
	active       map[upstream.Handle][]string
	failNext     error
	failUnsub    error
	unsubscribed []upstream.Handle
}

func newStubFeed() *stubFeed {
	return &stubFeed{active: make(map[upstream.Handle][]string)}
}

func (f *stubFeed) Connect(ctx context.Context) error          { return nil }
func (f *stubFeed) Close()                                     {}
func (f *stubFeed) RegisterTickHandler(h upstream.TickHandler) {}
func (f *stubFeed) RegisterFactorHandler(upstream.FactorHandler) {
}

func (f *stubFeed) Subscribe(symbols []string) (upstream.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return 0, err
	}
	f.next++
	f.active[f.next] = symbols
	return f.next, nil
}

func (f *stubFeed) Unsubscribe(h upstream.Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUnsub != nil {
		return f.failUnsub
	}
	if _, ok := f.active[h]; !ok {
		return fmt.Errorf("unknown handle %d", h)
	}
	delete(f.active, h)
	f.unsubscribed = append(f.unsubscribed, h)
	return nil
}

func (f *stubFeed) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active)
}

func newTestService(maxActive int) (*Service, *stubFeed, *Registry) {
	feed := newStubFeed()
	registry := NewRegistry(maxActive, 100)
	svc := NewService(registry, feed, testMetrics(), zerolog.Nop())
	return svc, feed, registry
}

func TestServiceCreateSubscribesUpstream(t *testing.T) {
	svc, feed, _ := newTestService(10)

	rec, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if feed.activeCount() != 1 {
		t.Errorf("upstream subscriptions = %d, want 1", feed.activeCount())
	}
	if _, err := svc.Get(rec.ID); err != nil {
		t.Errorf("Get: %v", err)
	}
}

func TestServiceCreateRollsBackOnUpstreamFailure(t *testing.T) {
	svc, feed, registry := newTestService(10)
	feed.failNext = errors.New("gateway down")

	_, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}

	if registry.Len() != 0 {
		t.Errorf("failed create left %d records registered", registry.Len())
	}
	if feed.activeCount() != 0 {
		t.Errorf("failed create left %d upstream subscriptions", feed.activeCount())
	}
}

func TestServiceCancelTearsDownInOrder(t *testing.T) {
	svc, feed, _ := newTestService(10)

	rec, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	q := rec.Queue()
	q.Push(quote.Tick{Symbol: "600519.SH", Price: 1})

	if err := svc.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if feed.activeCount() != 0 {
		t.Errorf("upstream subscription not released")
	}
	if rec.Status() != StatusClosed {
		t.Errorf("status = %v, want closed", rec.Status())
	}

	// Queue drains its buffered tick, then reports closed.
	if _, err := q.PopBlocking(context.Background(), time.Second); err != nil {
		t.Fatalf("drain after cancel: %v", err)
	}
	if _, err := q.PopBlocking(context.Background(), time.Second); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("err = %v, want ErrQueueClosed", err)
	}

	if err := svc.Cancel(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("repeat cancel err = %v, want ErrNotFound", err)
	}
}

func TestServiceCancelWithoutQueue(t *testing.T) {
	svc, _, _ := newTestService(10)

	rec, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.PeekQueue() != nil {
		t.Fatal("queue allocated without any consumer or tick")
	}

	if err := svc.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel with no queue: %v", err)
	}
}

func TestServiceCancelSurvivesUnsubscribeFailure(t *testing.T) {
	svc, feed, registry := newTestService(10)

	rec, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	feed.failUnsub = errors.New("feed already closed")

	// The record still comes out of the registry and reaches the terminal
	// state; the upstream failure is logged, not returned.
	if err := svc.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if registry.Len() != 0 {
		t.Errorf("registry holds %d records after cancel", registry.Len())
	}
	if rec.Status() != StatusClosed {
		t.Errorf("status = %v, want closed", rec.Status())
	}
}

func TestServiceCancelBeforeQueueExistsClosesLateQueue(t *testing.T) {
	svc, _, _ := newTestService(10)

	rec, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// A reader that resolved the record before the cancel may still ask
	// for the queue afterwards. It must get one that is already closed.
	q := rec.Queue()
	if _, err := q.PopBlocking(context.Background(), 50*time.Millisecond); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("pop on late-created queue err = %v, want ErrQueueClosed", err)
	}
	if q.Push(quote.Tick{Symbol: "600519.SH", Price: 1}) {
		t.Error("push to late-created queue reported an eviction")
	}
	if q.Len() != 0 {
		t.Errorf("late-created queue buffered %d ticks after cancel", q.Len())
	}
}

func TestServiceSnapshotEmptyWithoutQueue(t *testing.T) {
	svc, _, _ := newTestService(10)

	rec, _ := svc.Create([]string{"600519.SH"}, quote.AdjustNone)

	ticks, err := svc.Snapshot(rec.ID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(ticks) != 0 {
		t.Errorf("snapshot = %v, want empty", ticks)
	}
	if rec.PeekQueue() != nil {
		t.Error("Snapshot allocated a queue")
	}
}

func TestServiceCapacityFreedByCancel(t *testing.T) {
	svc, _, _ := newTestService(2)

	a, err := svc.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if _, err := svc.Create([]string{"000001.SZ"}, quote.AdjustNone); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	if _, err := svc.Create([]string{"830799.BJ"}, quote.AdjustNone); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	if err := svc.Cancel(a.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := svc.Create([]string{"830799.BJ"}, quote.AdjustNone); err != nil {
		t.Errorf("Create after cancel: %v", err)
	}
}
