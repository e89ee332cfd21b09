package upstream

import (
	"context"
	"sync"
	"testing"
	"time"

	"TickGate/internal/quote"

	"github.com/rs/zerolog"
)

func TestMockFeedDeliversTicksForSubscribedSymbols(t *testing.T) {
	f := NewMockFeed(5*time.Millisecond, zerolog.Nop())

	var mu sync.Mutex
	got := make(map[string]int)
	f.RegisterTickHandler(func(tk quote.Tick) {
		mu.Lock()
		got[tk.Symbol]++
		mu.Unlock()
	})

	if err := f.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer f.Close()

	h, err := f.Subscribe([]string{"600519.SH", "000001.SZ"})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		enough := got["600519.SH"] >= 3 && got["000001.SZ"] >= 3
		mu.Unlock()
		if enough {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("ticks not delivered in time: %v", got)
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := f.Unsubscribe(h); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	// After unsubscribe the symbol set is empty; delivery stops.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	before := got["600519.SH"]
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	after := got["600519.SH"]
	mu.Unlock()
	if after != before {
		t.Errorf("ticks still delivered after unsubscribe: %d -> %d", before, after)
	}
}

func TestMockFeedTicksAreValid(t *testing.T) {
	f := NewMockFeed(5*time.Millisecond, zerolog.Nop())

	ticks := make(chan quote.Tick, 64)
	f.RegisterTickHandler(func(tk quote.Tick) {
		select {
		case ticks <- tk:
		default:
		}
	})

	if err := f.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer f.Close()

	if _, err := f.Subscribe([]string{"600519.SH"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	for i := 0; i < 5; i++ {
		select {
		case tk := <-ticks:
			if err := tk.Validate(); err != nil {
				t.Errorf("generated tick invalid: %v", err)
			}
			if tk.Bid >= tk.Ask {
				t.Errorf("bid %f >= ask %f", tk.Bid, tk.Ask)
			}
		case <-time.After(time.Second):
			t.Fatal("no tick delivered")
		}
	}
}

func TestMockFeedAnnouncesFactorOnFirstSubscribe(t *testing.T) {
	f := NewMockFeed(time.Hour, zerolog.Nop())

	factors := make(chan string, 8)
	f.RegisterFactorHandler(func(symbol string, _ quote.Factor) {
		factors <- symbol
	})

	if _, err := f.Subscribe([]string{"600519.SH"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	select {
	case symbol := <-factors:
		if symbol != "600519.SH" {
			t.Errorf("factor for %q, want 600519.SH", symbol)
		}
	default:
		t.Fatal("no factor announced on first subscribe")
	}

	// A second subscriber for the same symbol gets no repeat announcement.
	if _, err := f.Subscribe([]string{"600519.SH"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	select {
	case symbol := <-factors:
		t.Errorf("repeat factor announcement for %q", symbol)
	default:
	}
}

func TestMockFeedUnsubscribeUnknownHandle(t *testing.T) {
	f := NewMockFeed(time.Hour, zerolog.Nop())
	if err := f.Unsubscribe(Handle(99)); err == nil {
		t.Error("unknown handle must fail")
	}
}

func TestMockFeedCloseStopsDelivery(t *testing.T) {
	f := NewMockFeed(5*time.Millisecond, zerolog.Nop())

	var count sync.Map
	f.RegisterTickHandler(func(tk quote.Tick) {
		count.Store("n", true)
	})

	if err := f.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if _, err := f.Subscribe([]string{"600519.SH"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	f.Close()
	// Close blocks until the delivery goroutine exits; a second Close is a
	// no-op.
	f.Close()
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeMock, false},
		{"mock", ModeMock, false},
		{"dev", ModeDev, false},
		{"prod", ModeProd, false},
		{"staging", ModeMock, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
