package subscription

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"TickGate/internal/quote"
)

func tickN(n int) quote.Tick {
	return quote.Tick{
		Symbol: "600519.SH",
		Price:  float64(n),
		Volume: int64(n),
	}
}

func TestQueuePushPopOrder(t *testing.T) {
	q := NewTickQueue(10)

	for i := 1; i <= 5; i++ {
		if evicted := q.Push(tickN(i)); evicted {
			t.Fatalf("push %d evicted with room to spare", i)
		}
	}

	for i := 1; i <= 5; i++ {
		got, err := q.PopBlocking(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("pop %d: %v", i, err)
		}
		if got.Price != float64(i) {
			t.Errorf("pop %d: got price %f, want %d", i, got.Price, i)
		}
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	const capacity = 1000
	const total = 1005

	q := NewTickQueue(capacity)

	evictions := 0
	for i := 1; i <= total; i++ {
		if q.Push(tickN(i)) {
			evictions++
		}
	}

	if evictions != total-capacity {
		t.Errorf("evictions = %d, want %d", evictions, total-capacity)
	}
	if got := q.Dropped(); got != uint64(total-capacity) {
		t.Errorf("Dropped() = %d, want %d", got, total-capacity)
	}
	if q.Len() != capacity {
		t.Fatalf("Len() = %d, want %d", q.Len(), capacity)
	}

	// Survivors are exactly ticks 6..1005 in arrival order.
	for want := total - capacity + 1; want <= total; want++ {
		got, err := q.PopBlocking(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if got.Price != float64(want) {
			t.Fatalf("got tick %f, want %d", got.Price, want)
		}
	}
}

func TestQueuePopTimeout(t *testing.T) {
	q := NewTickQueue(10)

	start := time.Now()
	_, err := q.PopBlocking(context.Background(), 50*time.Millisecond)
	if !errors.Is(err, ErrQueueTimeout) {
		t.Fatalf("err = %v, want ErrQueueTimeout", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("returned after %v, want the full timeout", elapsed)
	}
}

func TestQueuePopContextCancelled(t *testing.T) {
	q := NewTickQueue(10)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := q.PopBlocking(ctx, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestQueuePopWakesOnPush(t *testing.T) {
	q := NewTickQueue(10)

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push(tickN(42))
	}()

	got, err := q.PopBlocking(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got.Price != 42 {
		t.Errorf("got price %f, want 42", got.Price)
	}
}

func TestQueueCloseDrainsBeforeClosed(t *testing.T) {
	q := NewTickQueue(10)
	q.Push(tickN(1))
	q.Push(tickN(2))
	q.Close()

	// Pushes after close are ignored.
	if q.Push(tickN(3)) {
		t.Error("push to closed queue reported eviction")
	}

	for want := 1; want <= 2; want++ {
		got, err := q.PopBlocking(context.Background(), time.Second)
		if err != nil {
			t.Fatalf("drain %d: %v", want, err)
		}
		if got.Price != float64(want) {
			t.Errorf("drain %d: got %f", want, got.Price)
		}
	}

	if _, err := q.PopBlocking(context.Background(), time.Second); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("err = %v, want ErrQueueClosed", err)
	}
}

func TestQueueCloseWakesBlockedReader(t *testing.T) {
	q := NewTickQueue(10)

	errCh := make(chan error, 1)
	go func() {
		_, err := q.PopBlocking(context.Background(), 5*time.Second)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrQueueClosed) {
			t.Fatalf("err = %v, want ErrQueueClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("reader not woken by Close")
	}
}

func TestQueueSnapshotNonDestructive(t *testing.T) {
	q := NewTickQueue(10)
	for i := 1; i <= 3; i++ {
		q.Push(tickN(i))
	}

	snap := q.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot len = %d, want 3", len(snap))
	}
	for i, tk := range snap {
		if tk.Price != float64(i+1) {
			t.Errorf("snapshot[%d].Price = %f, want %d", i, tk.Price, i+1)
		}
	}

	if q.Len() != 3 {
		t.Errorf("snapshot consumed items: Len() = %d, want 3", q.Len())
	}
}

func TestQueueConcurrentPushPop(t *testing.T) {
	const producers = 4
	const perProducer = 500

	q := NewTickQueue(producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(tickN(p*perProducer + i))
			}
		}(p)
	}
	wg.Wait()
	q.Close()

	popped := 0
	for {
		_, err := q.PopBlocking(context.Background(), time.Second)
		if errors.Is(err, ErrQueueClosed) {
			break
		}
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		popped++
	}

	if popped != producers*perProducer {
		t.Errorf("popped %d ticks, want %d", popped, producers*perProducer)
	}
}

func TestRecordLazyQueueSingleInstance(t *testing.T) {
	rec := newRecord("id", []string{"600519.SH"}, quote.AdjustNone, 100)

	if rec.PeekQueue() != nil {
		t.Fatal("queue allocated before first use")
	}

	const goroutines = 32
	queues := make([]*TickQueue, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	for i := 0; i < goroutines; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			queues[i] = rec.Queue()
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 1; i < goroutines; i++ {
		if queues[i] != queues[0] {
			t.Fatalf("goroutine %d saw a different queue instance", i)
		}
	}
	if rec.PeekQueue() != queues[0] {
		t.Error("PeekQueue disagrees with Queue")
	}
}

func TestRecordDroppedWithoutQueue(t *testing.T) {
	rec := newRecord("id", []string{"600519.SH"}, quote.AdjustNone, 100)
	if got := rec.Dropped(); got != 0 {
		t.Errorf("Dropped() = %d before queue exists, want 0", got)
	}
}

func BenchmarkQueuePush(b *testing.B) {
	q := NewTickQueue(1000)
	tk := tickN(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(tk)
	}
	_ = fmt.Sprint(q.Len())
}
