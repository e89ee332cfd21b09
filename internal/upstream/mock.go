package upstream

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"TickGate/internal/quote"

	"github.com/rs/zerolog"
)

// MockFeed generates random-walk ticks for subscribed symbols from a single
// goroutine, mirroring the real gateway's callback thread. Used in mock mode
// and in tests.
type MockFeed struct {
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	handler TickHandler
	factorH FactorHandler
	subs    map[Handle][]string
	active  map[string]int // symbol → subscribe refcount
	prices  map[string]float64

	nextHandle atomic.Int64
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewMockFeed(interval time.Duration, log zerolog.Logger) *MockFeed {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &MockFeed{
		interval: interval,
		log:      log,
		subs:     make(map[Handle][]string),
		active:   make(map[string]int),
		prices:   make(map[string]float64),
	}
}

func (f *MockFeed) RegisterTickHandler(h TickHandler) {
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
}

func (f *MockFeed) RegisterFactorHandler(h FactorHandler) {
	f.mu.Lock()
	f.factorH = h
	f.mu.Unlock()
}

// Connect starts the delivery goroutine.
func (f *MockFeed) Connect(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})
	go f.run(runCtx)
	f.log.Info().Dur("interval", f.interval).Msg("mock feed connected")
	return nil
}

func (f *MockFeed) Close() {
	if f.cancel != nil {
		f.cancel()
		<-f.done
	}
}

func (f *MockFeed) Subscribe(symbols []string) (Handle, error) {
	if len(symbols) == 0 {
		return 0, fmt.Errorf("no symbols to subscribe")
	}

	h := Handle(f.nextHandle.Add(1))

	f.mu.Lock()
	f.subs[h] = symbols
	factorH := f.factorH
	var announce []string
	for _, s := range symbols {
		if f.active[s] == 0 {
			f.prices[s] = 10 + rand.Float64()*90
			announce = append(announce, s)
		}
		f.active[s]++
	}
	f.mu.Unlock()

	// First subscriber for a symbol gets a factor announcement, like the
	// real gateway does after a subscribe.
	if factorH != nil {
		for _, s := range announce {
			factorH(s, quote.Factor{Front: 0.95 + rand.Float64()*0.05, Back: 1.0 + rand.Float64()*0.05})
		}
	}
	return h, nil
}

func (f *MockFeed) Unsubscribe(h Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	symbols, ok := f.subs[h]
	if !ok {
		return fmt.Errorf("unknown handle %d", h)
	}
	delete(f.subs, h)
	for _, s := range symbols {
		if f.active[s]--; f.active[s] <= 0 {
			delete(f.active, s)
			delete(f.prices, s)
		}
	}
	return nil
}

func (f *MockFeed) run(ctx context.Context) {
	defer close(f.done)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			f.emit(now)
		}
	}
}

func (f *MockFeed) emit(now time.Time) {
	f.mu.Lock()
	handler := f.handler
	ticks := make([]quote.Tick, 0, len(f.active))
	for s := range f.active {
		p := f.prices[s] * (1 + (rand.Float64()-0.5)*0.004)
		if p < 0.01 {
			p = 0.01
		}
		f.prices[s] = p
		ticks = append(ticks, quote.Tick{
			Symbol:    s,
			Price:     p,
			Volume:    rand.Int64N(10_000),
			Amount:    p * 100,
			Bid:       p * 0.999,
			Ask:       p * 1.001,
			Timestamp: now,
		})
	}
	f.mu.Unlock()

	if handler == nil {
		return
	}
	for _, t := range ticks {
		handler(t)
	}
}
