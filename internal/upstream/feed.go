// Package upstream wraps the market-data/trading gateway the process proxies.
// Ticks are delivered by invoking a registered handler on the feed's own
// goroutine; the handler must never block and never panic into the feed.
package upstream

import (
	"context"
	"fmt"

	"TickGate/internal/quote"
)

// Handle identifies one upstream subscribe call for later unsubscribe.
type Handle int64

// TickHandler receives each tick on the feed's delivery goroutine.
type TickHandler func(quote.Tick)

// FactorHandler receives adjustment-factor announcements per symbol.
type FactorHandler func(symbol string, f quote.Factor)

// Feed is the upstream market-data capability.
type Feed interface {
	// Connect establishes the upstream session and starts tick delivery.
	Connect(ctx context.Context) error

	// Close tears down the session. Registered handlers receive no further
	// calls after Close returns.
	Close()

	// RegisterTickHandler installs the tick callback. Called once at
	// process start, before Connect.
	RegisterTickHandler(h TickHandler)

	// RegisterFactorHandler installs the adjustment-factor callback.
	RegisterFactorHandler(h FactorHandler)

	// Subscribe registers interest in the given symbols and returns a
	// handle for Unsubscribe.
	Subscribe(symbols []string) (Handle, error)

	// Unsubscribe releases a prior Subscribe.
	Unsubscribe(h Handle) error
}

// Mode selects which upstream implementations and trading policy the
// process runs with.
type Mode int

const (
	// ModeMock: synthetic feed, all trading intercepted.
	ModeMock Mode = iota
	// ModeDev: real feed, trading intercepted.
	ModeDev
	// ModeProd: real feed, real trading when explicitly allowed.
	ModeProd
)

func (m Mode) String() string {
	switch m {
	case ModeMock:
		return "mock"
	case ModeDev:
		return "dev"
	case ModeProd:
		return "prod"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the TICKGATE_MODE value. The empty string means mock.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "mock", "":
		return ModeMock, nil
	case "dev":
		return ModeDev, nil
	case "prod":
		return ModeProd, nil
	default:
		return ModeMock, fmt.Errorf("unknown mode %q", s)
	}
}
