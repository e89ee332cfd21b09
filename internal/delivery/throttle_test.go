package delivery

import (
	"testing"
	"time"

	"TickGate/internal/quote"
)

func TestThrottleDisabledSendsImmediately(t *testing.T) {
	th := NewThrottle(0, nil)

	now := time.Now()
	for i := 1; i <= 3; i++ {
		th.Offer(quote.Tick{Price: float64(i)})
		got, ok := th.Next(now)
		if !ok {
			t.Fatalf("tick %d held back with throttling disabled", i)
		}
		if got.Price != float64(i) {
			t.Errorf("got price %f, want %d", got.Price, i)
		}
	}
}

func TestThrottleEnforcesCeiling(t *testing.T) {
	th := NewThrottle(10, nil) // 100ms between sends

	base := time.Now()

	th.Offer(quote.Tick{Price: 1})
	if _, ok := th.Next(base); !ok {
		t.Fatal("first tick must send immediately")
	}

	th.Offer(quote.Tick{Price: 2})
	if _, ok := th.Next(base.Add(50 * time.Millisecond)); ok {
		t.Fatal("second tick sent before the interval elapsed")
	}

	got, ok := th.Next(base.Add(110 * time.Millisecond))
	if !ok {
		t.Fatal("tick still held after the interval elapsed")
	}
	if got.Price != 2 {
		t.Errorf("got price %f, want 2", got.Price)
	}
}

func TestThrottleCoalescesToLatest(t *testing.T) {
	drops := 0
	th := NewThrottle(10, func() { drops++ })

	base := time.Now()
	th.Offer(quote.Tick{Price: 1})
	th.Next(base)

	// Burst while throttled: only the latest survives.
	for i := 2; i <= 5; i++ {
		th.Offer(quote.Tick{Price: float64(i)})
	}

	got, ok := th.Next(base.Add(200 * time.Millisecond))
	if !ok {
		t.Fatal("pending tick not released")
	}
	if got.Price != 5 {
		t.Errorf("got price %f, want the latest (5)", got.Price)
	}
	if drops != 3 {
		t.Errorf("drops = %d, want 3", drops)
	}

	if th.Pending() {
		t.Error("throttle still pending after release")
	}
}

func TestThrottleWait(t *testing.T) {
	th := NewThrottle(10, nil)
	base := time.Now()

	if got := th.Wait(base, time.Second); got != time.Second {
		t.Errorf("Wait with nothing pending = %v, want fallback", got)
	}

	th.Offer(quote.Tick{Price: 1})
	th.Next(base)
	th.Offer(quote.Tick{Price: 2})

	got := th.Wait(base.Add(40*time.Millisecond), time.Second)
	if got <= 0 || got > 60*time.Millisecond {
		t.Errorf("Wait = %v, want roughly the remaining 60ms", got)
	}

	if got := th.Wait(base.Add(40*time.Millisecond), 10*time.Millisecond); got != 10*time.Millisecond {
		t.Errorf("Wait = %v, want capped at fallback", got)
	}
}
