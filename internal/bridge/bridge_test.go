package bridge

import (
	"context"
	"sync"
	"testing"
	"time"

	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/subscription"

	"github.com/rs/zerolog"
)

var metrics = observability.NewMetrics()

func newTestBridge(t *testing.T) (*Bridge, *subscription.Registry, *quote.Adjuster) {
	t.Helper()
	registry := subscription.NewRegistry(10, 100)
	adjuster := quote.NewAdjuster()
	b := New(registry, adjuster, metrics, zerolog.Nop())
	return b, registry, adjuster
}

func TestOnTickRoutesToSubscribers(t *testing.T) {
	b, registry, _ := newTestBridge(t)

	rec, err := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 1; i <= 3; i++ {
		b.OnTick(quote.Tick{Symbol: "600519.SH", Price: float64(i), Timestamp: time.Now()})
	}

	q := rec.Queue()
	if q.Len() != 3 {
		t.Fatalf("queue len = %d, want 3", q.Len())
	}
	for want := 1; want <= 3; want++ {
		got, err := q.PopBlocking(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if got.Price != float64(want) {
			t.Errorf("got price %f, want %d", got.Price, want)
		}
	}
}

func TestOnTickIsolatesSubscriptions(t *testing.T) {
	b, registry, _ := newTestBridge(t)

	sh, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	sz, _ := registry.Create([]string{"000001.SZ"}, quote.AdjustNone)

	b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 1})

	if sh.Queue().Len() != 1 {
		t.Errorf("subscribed queue len = %d, want 1", sh.Queue().Len())
	}
	if sz.PeekQueue() != nil && sz.PeekQueue().Len() != 0 {
		t.Errorf("unrelated subscription received the tick")
	}
}

func TestOnTickAppliesAdjustPerSubscription(t *testing.T) {
	b, registry, adjuster := newTestBridge(t)
	adjuster.SetFactor("600519.SH", quote.Factor{Front: 0.5, Back: 2.0})

	raw, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	front, _ := registry.Create([]string{"600519.SH"}, quote.AdjustFront)
	back, _ := registry.Create([]string{"600519.SH"}, quote.AdjustBack)

	b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 100})

	cases := []struct {
		name string
		rec  *subscription.Record
		want float64
	}{
		{"raw", raw, 100},
		{"front", front, 50},
		{"back", back, 200},
	}
	for _, tc := range cases {
		got, err := tc.rec.Queue().PopBlocking(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("%s: pop: %v", tc.name, err)
		}
		if got.Price != tc.want {
			t.Errorf("%s: price = %f, want %f", tc.name, got.Price, tc.want)
		}
	}
}

func TestOnTickDropsMalformed(t *testing.T) {
	b, registry, _ := newTestBridge(t)

	rec, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)

	b.OnTick(quote.Tick{Symbol: "", Price: 1})
	b.OnTick(quote.Tick{Symbol: "600519.SH", Price: -5})

	if q := rec.PeekQueue(); q != nil && q.Len() != 0 {
		t.Errorf("malformed ticks reached the queue")
	}
}

func TestOnTickSkipsInactiveRecords(t *testing.T) {
	b, registry, _ := newTestBridge(t)

	rec, _ := registry.Create([]string{"600519.SH"}, quote.AdjustNone)
	q := rec.Queue()

	if _, err := registry.Cancel(rec.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 1})
	if q.Len() != 0 {
		t.Errorf("tick routed to cancelled subscription")
	}
}

func TestOnTickRecoversPanic(t *testing.T) {
	// A nil registry makes Resolve panic; the callback boundary must
	// swallow it.
	b := New(nil, quote.NewAdjuster(), metrics, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped the bridge: %v", r)
		}
	}()
	b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 1})
}

func TestOnTickArchiveTeeNeverBlocks(t *testing.T) {
	b, registry, _ := newTestBridge(t)
	registry.Create([]string{"600519.SH"}, quote.AdjustNone)

	tee := make(chan quote.Tick, 1)
	b.SetArchiveTee(tee)

	// Second tick finds the channel full; OnTick must return regardless.
	done := make(chan struct{})
	go func() {
		b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 1})
		b.OnTick(quote.Tick{Symbol: "600519.SH", Price: 2})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnTick blocked on a full archive channel")
	}

	if got := <-tee; got.Price != 1 {
		t.Errorf("teed tick price = %f, want 1", got.Price)
	}
}

func TestOnTickConcurrentWithChurnKeepsRegistryConsistent(t *testing.T) {
	registry := subscription.NewRegistry(100, 64)
	b := New(registry, quote.NewAdjuster(), metrics, zerolog.Nop())

	symbols := []string{"600519.SH", "000001.SZ", "601318.SH"}

	stop := make(chan struct{})
	var callbacks sync.WaitGroup
	for i := 0; i < 4; i++ {
		callbacks.Add(1)
		go func(seed int) {
			defer callbacks.Done()
			for n := seed; ; n++ {
				select {
				case <-stop:
					return
				default:
				}
				b.OnTick(quote.Tick{
					Symbol:    symbols[n%len(symbols)],
					Price:     10 + float64(n%7),
					Volume:    1,
					Timestamp: time.Now(),
				})
			}
		}(i)
	}

	// Each churner repeatedly registers a subscription, races two
	// goroutines on its lazy queue, and cancels it while ticks keep
	// arriving on the same symbols.
	var churn sync.WaitGroup
	for i := 0; i < 4; i++ {
		churn.Add(1)
		go func(seed int) {
			defer churn.Done()
			for n := 0; n < 200; n++ {
				rec, err := registry.Create([]string{symbols[(seed+n)%len(symbols)]}, quote.AdjustNone)
				if err != nil {
					t.Errorf("Create under churn: %v", err)
					return
				}

				queues := make(chan *subscription.TickQueue, 2)
				var race sync.WaitGroup
				for g := 0; g < 2; g++ {
					race.Add(1)
					go func() {
						defer race.Done()
						queues <- rec.Queue()
					}()
				}
				race.Wait()
				if a, z := <-queues, <-queues; a != z {
					t.Error("record handed out two distinct queue instances")
				}

				if _, err := registry.Cancel(rec.ID); err != nil {
					t.Errorf("Cancel under churn: %v", err)
				}
			}
		}(i)
	}

	churn.Wait()
	close(stop)
	callbacks.Wait()

	if registry.Len() != 0 {
		t.Errorf("registry holds %d records after all churn cancelled", registry.Len())
	}
	for _, s := range symbols {
		if recs := registry.Resolve(s); len(recs) != 0 {
			t.Errorf("symbol index still resolves %d records for %s", len(recs), s)
		}
	}
}

func TestOnFactorUpdatesAdjuster(t *testing.T) {
	b, _, adjuster := newTestBridge(t)

	b.OnFactor("600519.SH", quote.Factor{Front: 0.5, Back: 2.0})

	got := adjuster.Apply(quote.Tick{Symbol: "600519.SH", Price: 100}, quote.AdjustFront)
	if got.Price != 50 {
		t.Errorf("factor not applied: price = %f, want 50", got.Price)
	}
}
