package trading

import "TickGate/internal/upstream"

// Policy is the trade-interception gate, selected once at startup and
// queried on every order call. Real orders reach the upstream gateway only
// in prod mode with the allow flag set; everything else is intercepted and
// simulated so a misconfigured instance can never trade.
type Policy struct {
	Mode             upstream.Mode
	AllowRealTrading bool
}

// AllowsRealTrading reports whether order submission/cancellation may be
// forwarded upstream.
func (p Policy) AllowsRealTrading() bool {
	return p.Mode == upstream.ModeProd && p.AllowRealTrading
}

// UsesRealData reports whether account queries should hit the upstream
// gateway. Dev and prod both read real data; only trading is gated.
func (p Policy) UsesRealData() bool {
	return p.Mode == upstream.ModeDev || p.Mode == upstream.ModeProd
}
