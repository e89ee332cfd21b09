package delivery

import (
	"time"

	"TickGate/internal/quote"
)

// Throttle enforces a per-connection send-rate ceiling by coalescing. Under
// burst it always holds the latest tick and delivers it as soon as the
// ceiling allows; older candidates it replaced are reported through onDrop.
// Not safe for concurrent use; each push loop owns its own Throttle.
type Throttle struct {
	minInterval time.Duration
	lastSent    time.Time
	pending     *quote.Tick
	onDrop      func()
}

// NewThrottle builds a throttle allowing at most maxPerSec sends per
// second. maxPerSec <= 0 disables throttling. onDrop may be nil.
func NewThrottle(maxPerSec int, onDrop func()) *Throttle {
	var interval time.Duration
	if maxPerSec > 0 {
		interval = time.Second / time.Duration(maxPerSec)
	}
	return &Throttle{minInterval: interval, onDrop: onDrop}
}

// Offer records t as the latest candidate for delivery. A candidate it
// replaces was superseded before it could be sent and counts as dropped.
func (th *Throttle) Offer(t quote.Tick) {
	if th.pending != nil && th.onDrop != nil {
		th.onDrop()
	}
	tt := t
	th.pending = &tt
}

// Next returns the pending candidate if the ceiling allows sending now.
func (th *Throttle) Next(now time.Time) (quote.Tick, bool) {
	if th.pending == nil {
		return quote.Tick{}, false
	}
	if th.minInterval > 0 && now.Sub(th.lastSent) < th.minInterval {
		return quote.Tick{}, false
	}
	t := *th.pending
	th.pending = nil
	th.lastSent = now
	return t, true
}

// Wait returns how long the caller may block before checking Next again:
// the time until a held candidate becomes sendable, capped at fallback, or
// fallback itself when nothing is held.
func (th *Throttle) Wait(now time.Time, fallback time.Duration) time.Duration {
	if th.pending == nil || th.minInterval == 0 {
		return fallback
	}
	d := th.minInterval - now.Sub(th.lastSent)
	if d <= 0 {
		return time.Millisecond
	}
	if d > fallback {
		return fallback
	}
	return d
}

// Flush returns the pending candidate regardless of the ceiling. Used when
// the stream is ending and the held tick would otherwise be lost.
func (th *Throttle) Flush() (quote.Tick, bool) {
	if th.pending == nil {
		return quote.Tick{}, false
	}
	t := *th.pending
	th.pending = nil
	return t, true
}

// Pending reports whether a candidate is held back by the ceiling.
func (th *Throttle) Pending() bool {
	return th.pending != nil
}
