package upstream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"TickGate/internal/quote"
	"TickGate/internal/testutil"

	"github.com/rs/zerolog"
)

func TestNATSFeedDeliversPublishedTicks(t *testing.T) {
	testutil.RequireIntegration(t)

	nc, err := ConnectNATS(testutil.TestNATSURL(), zerolog.Nop())
	if err != nil {
		t.Skipf("test nats not available: %v", err)
	}
	defer nc.Close()

	f := NewNATSFeed(nc, zerolog.Nop())

	ticks := make(chan quote.Tick, 16)
	f.RegisterTickHandler(func(tk quote.Tick) { ticks <- tk })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Connect(ctx); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer f.Close()

	h, err := f.Subscribe([]string{"600519.SH"})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer f.Unsubscribe(h)

	want := quote.Tick{Symbol: "600519.SH", Price: 1500.5, Volume: 200, Timestamp: time.Now().UTC()}
	payload, _ := json.Marshal(want)
	if err := nc.Publish("md.ticks.600519.SH", payload); err != nil {
		t.Fatalf("publish: %v", err)
	}
	nc.Flush()

	select {
	case got := <-ticks:
		if got.Symbol != want.Symbol || got.Price != want.Price {
			t.Errorf("got %+v, want %+v", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("published tick not delivered")
	}
}

func TestNATSFeedIgnoresUndecodablePayload(t *testing.T) {
	testutil.RequireIntegration(t)

	nc, err := ConnectNATS(testutil.TestNATSURL(), zerolog.Nop())
	if err != nil {
		t.Skipf("test nats not available: %v", err)
	}
	defer nc.Close()

	f := NewNATSFeed(nc, zerolog.Nop())

	ticks := make(chan quote.Tick, 16)
	f.RegisterTickHandler(func(tk quote.Tick) { ticks <- tk })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Connect(ctx); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer f.Close()

	if _, err := f.Subscribe([]string{"600519.SH"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	nc.Publish("md.ticks.600519.SH", []byte("not json"))
	nc.Flush()

	select {
	case got := <-ticks:
		t.Errorf("undecodable payload delivered as tick: %+v", got)
	case <-time.After(200 * time.Millisecond):
	}
}
