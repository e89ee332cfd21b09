package quote

import (
	"fmt"
	"sync"
)

// AdjustType selects the price-adjustment transform applied to ticks for a
// subscription. Front/back adjustment compensates for corporate actions
// (splits, dividends); none delivers raw exchange prices.
type AdjustType int

const (
	AdjustNone AdjustType = iota
	AdjustFront
	AdjustBack
)

func (a AdjustType) String() string {
	switch a {
	case AdjustNone:
		return "none"
	case AdjustFront:
		return "front"
	case AdjustBack:
		return "back"
	default:
		return fmt.Sprintf("AdjustType(%d)", int(a))
	}
}

// ParseAdjustType parses the wire representation. The empty string means none.
func ParseAdjustType(s string) (AdjustType, error) {
	switch s {
	case "none", "":
		return AdjustNone, nil
	case "front":
		return AdjustFront, nil
	case "back":
		return AdjustBack, nil
	default:
		return AdjustNone, fmt.Errorf("unknown adjust type %q", s)
	}
}

// Factor holds the cumulative front/back adjustment ratios for one symbol.
type Factor struct {
	Front float64
	Back  float64
}

// Adjuster applies per-symbol adjustment factors to tick prices. Factors are
// announced by the upstream feed; symbols without a factor pass through
// unchanged. Safe for concurrent use from the callback goroutine and from
// admin paths updating factors.
type Adjuster struct {
	mu      sync.RWMutex
	factors map[string]Factor
}

func NewAdjuster() *Adjuster {
	return &Adjuster{factors: make(map[string]Factor)}
}

// SetFactor records the adjustment ratios for a symbol.
func (a *Adjuster) SetFactor(symbol string, f Factor) {
	a.mu.Lock()
	a.factors[symbol] = f
	a.mu.Unlock()
}

// Apply returns a copy of the tick with prices transformed for the requested
// adjust type. AdjustNone and unknown symbols return the tick unchanged.
func (a *Adjuster) Apply(t Tick, typ AdjustType) Tick {
	if typ == AdjustNone {
		return t
	}

	a.mu.RLock()
	f, ok := a.factors[t.Symbol]
	a.mu.RUnlock()
	if !ok {
		return t
	}

	ratio := f.Front
	if typ == AdjustBack {
		ratio = f.Back
	}
	if ratio <= 0 || ratio == 1 {
		return t
	}

	t.Price *= ratio
	t.Bid *= ratio
	t.Ask *= ratio
	return t
}
