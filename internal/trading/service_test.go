package trading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TickGate/internal/upstream"

	"github.com/rs/zerolog"
)

// fakeTrader counts upstream calls and serves canned replies.
type fakeTrader struct {
	placed    int
	cancelled int
	failQuery bool
}

func (f *fakeTrader) PlaceOrder(ctx context.Context, accountID string, req OrderRequest) (string, error) {
	f.placed++
	return "real-1", nil
}

func (f *fakeTrader) CancelOrder(ctx context.Context, accountID, orderID string) error {
	f.cancelled++
	return nil
}

func (f *fakeTrader) QueryAsset(ctx context.Context, accountID string) (AssetInfo, error) {
	if f.failQuery {
		return AssetInfo{}, errors.New("gateway timeout")
	}
	return AssetInfo{TotalAsset: 42}, nil
}

func (f *fakeTrader) QueryPositions(ctx context.Context, accountID string) ([]Position, error) {
	if f.failQuery {
		return nil, errors.New("gateway timeout")
	}
	return []Position{{Symbol: "600519.SH", Volume: 7}}, nil
}

func (f *fakeTrader) QueryOrders(ctx context.Context, accountID string) ([]Order, error) {
	if f.failQuery {
		return nil, errors.New("gateway timeout")
	}
	return []Order{{OrderID: "real-1"}}, nil
}

func (f *fakeTrader) QueryTrades(ctx context.Context, accountID string) ([]Trade, error) {
	if f.failQuery {
		return nil, errors.New("gateway timeout")
	}
	return []Trade{{TradeID: "real-trade"}}, nil
}

func connect(t *testing.T, s *Service) string {
	t.Helper()
	id, _, err := s.ConnectAccount("acct-1")
	if err != nil {
		t.Fatalf("ConnectAccount: %v", err)
	}
	return id
}

func validOrder() OrderRequest {
	return OrderRequest{
		Symbol:    "600519.SH",
		Side:      SideBuy,
		OrderType: OrderTypeLimit,
		Volume:    100,
		Price:     1500,
	}
}

func TestPolicyGate(t *testing.T) {
	tests := []struct {
		mode      upstream.Mode
		allow     bool
		wantReal  bool
		wantQuery bool
	}{
		{upstream.ModeMock, false, false, false},
		{upstream.ModeMock, true, false, false},
		{upstream.ModeDev, false, false, true},
		{upstream.ModeDev, true, false, true},
		{upstream.ModeProd, false, false, true},
		{upstream.ModeProd, true, true, true},
	}

	for _, tt := range tests {
		p := Policy{Mode: tt.mode, AllowRealTrading: tt.allow}
		if got := p.AllowsRealTrading(); got != tt.wantReal {
			t.Errorf("mode=%v allow=%v: AllowsRealTrading() = %v, want %v",
				tt.mode, tt.allow, got, tt.wantReal)
		}
		if got := p.UsesRealData(); got != tt.wantQuery {
			t.Errorf("mode=%v: UsesRealData() = %v, want %v", tt.mode, got, tt.wantQuery)
		}
	}
}

func TestSubmitOrderInterceptedOutsideProd(t *testing.T) {
	for _, mode := range []upstream.Mode{upstream.ModeMock, upstream.ModeDev} {
		trader := &fakeTrader{}
		s := NewService(Policy{Mode: mode, AllowRealTrading: true}, trader, zerolog.Nop())
		sess := connect(t, s)

		order, err := s.SubmitOrder(context.Background(), sess, validOrder())
		if err != nil {
			t.Fatalf("mode %v: SubmitOrder: %v", mode, err)
		}
		if trader.placed != 0 {
			t.Errorf("mode %v: order reached upstream while intercepted", mode)
		}
		if !strings.HasPrefix(order.OrderID, "sim-") {
			t.Errorf("mode %v: order id = %q, want sim- prefix", mode, order.OrderID)
		}
		if order.Status != OrderStatusSubmitted {
			t.Errorf("mode %v: status = %v, want submitted", mode, order.Status)
		}
	}
}

func TestSubmitOrderProdWithoutAllowStillIntercepted(t *testing.T) {
	trader := &fakeTrader{}
	s := NewService(Policy{Mode: upstream.ModeProd, AllowRealTrading: false}, trader, zerolog.Nop())
	sess := connect(t, s)

	if _, err := s.SubmitOrder(context.Background(), sess, validOrder()); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if trader.placed != 0 {
		t.Error("prod without allow flag forwarded an order upstream")
	}
}

func TestSubmitOrderForwardedInProdWithAllow(t *testing.T) {
	trader := &fakeTrader{}
	s := NewService(Policy{Mode: upstream.ModeProd, AllowRealTrading: true}, trader, zerolog.Nop())
	sess := connect(t, s)

	order, err := s.SubmitOrder(context.Background(), sess, validOrder())
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if trader.placed != 1 {
		t.Errorf("upstream placed = %d, want 1", trader.placed)
	}
	if order.OrderID != "real-1" {
		t.Errorf("order id = %q, want the upstream id", order.OrderID)
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	s := NewService(Policy{Mode: upstream.ModeMock}, nil, zerolog.Nop())
	sess := connect(t, s)

	bad := []OrderRequest{
		{Symbol: "bogus", Side: SideBuy, OrderType: OrderTypeLimit, Volume: 100, Price: 10},
		{Symbol: "600519.SH", Side: SideBuy, OrderType: OrderTypeLimit, Volume: 0, Price: 10},
		{Symbol: "600519.SH", Side: SideBuy, OrderType: OrderTypeLimit, Volume: 100, Price: 0},
	}
	for i, req := range bad {
		if _, err := s.SubmitOrder(context.Background(), sess, req); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("case %d: err = %v, want ErrInvalidOrder", i, err)
		}
	}

	// Market orders need no price.
	req := OrderRequest{Symbol: "600519.SH", Side: SideSell, OrderType: OrderTypeMarket, Volume: 100}
	if _, err := s.SubmitOrder(context.Background(), sess, req); err != nil {
		t.Errorf("market order without price: %v", err)
	}
}

func TestSubmitOrderUnknownSession(t *testing.T) {
	s := NewService(Policy{Mode: upstream.ModeMock}, nil, zerolog.Nop())

	if _, err := s.SubmitOrder(context.Background(), "nope", validOrder()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestCancelInterceptedAlwaysSucceeds(t *testing.T) {
	s := NewService(Policy{Mode: upstream.ModeMock}, nil, zerolog.Nop())
	sess := connect(t, s)

	order, _ := s.SubmitOrder(context.Background(), sess, validOrder())

	if err := s.CancelOrder(context.Background(), sess, order.OrderID); err != nil {
		t.Fatalf("cancel known order: %v", err)
	}
	orders, _ := s.Orders(context.Background(), sess)
	for _, o := range orders {
		if o.OrderID == order.OrderID && o.Status != OrderStatusCancelled {
			t.Errorf("order status = %v, want cancelled", o.Status)
		}
	}

	// Unknown ids are ignored while intercepted.
	if err := s.CancelOrder(context.Background(), sess, "never-existed"); err != nil {
		t.Errorf("cancel unknown order while intercepted: %v, want nil", err)
	}
}

func TestCancelRealModeRejectsUnknownOrder(t *testing.T) {
	trader := &fakeTrader{}
	s := NewService(Policy{Mode: upstream.ModeProd, AllowRealTrading: true}, trader, zerolog.Nop())
	sess := connect(t, s)

	err := s.CancelOrder(context.Background(), sess, "never-existed")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
	if trader.cancelled != 0 {
		t.Error("unknown order cancel reached upstream")
	}

	order, _ := s.SubmitOrder(context.Background(), sess, validOrder())
	if err := s.CancelOrder(context.Background(), sess, order.OrderID); err != nil {
		t.Fatalf("cancel known order: %v", err)
	}
	if trader.cancelled != 1 {
		t.Errorf("upstream cancels = %d, want 1", trader.cancelled)
	}
}

func TestQueriesUseUpstreamInDevMode(t *testing.T) {
	trader := &fakeTrader{}
	s := NewService(Policy{Mode: upstream.ModeDev}, trader, zerolog.Nop())
	sess := connect(t, s)

	asset, err := s.Asset(context.Background(), sess)
	if err != nil {
		t.Fatalf("Asset: %v", err)
	}
	if asset.TotalAsset != 42 {
		t.Errorf("asset came from fallback, want upstream data")
	}

	positions, _ := s.Positions(context.Background(), sess)
	if len(positions) != 1 || positions[0].Symbol != "600519.SH" {
		t.Errorf("positions = %v, want upstream data", positions)
	}
}

func TestQueriesFallBackWhenUpstreamFails(t *testing.T) {
	trader := &fakeTrader{failQuery: true}
	s := NewService(Policy{Mode: upstream.ModeDev}, trader, zerolog.Nop())
	sess := connect(t, s)

	positions, err := s.Positions(context.Background(), sess)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(positions) == 0 {
		t.Error("no fallback positions returned")
	}

	asset, err := s.Asset(context.Background(), sess)
	if err != nil {
		t.Fatalf("Asset: %v", err)
	}
	if asset.TotalAsset == 0 {
		t.Error("no fallback asset returned")
	}

	trades, err := s.Trades(context.Background(), sess)
	if err != nil {
		t.Fatalf("Trades: %v", err)
	}
	if len(trades) == 0 {
		t.Error("no fallback trades returned")
	}
}

func TestMockModeServesCannedDataWithoutTrader(t *testing.T) {
	s := NewService(Policy{Mode: upstream.ModeMock}, nil, zerolog.Nop())
	sess := connect(t, s)

	if _, err := s.Asset(context.Background(), sess); err != nil {
		t.Errorf("Asset in mock mode: %v", err)
	}
	positions, err := s.Positions(context.Background(), sess)
	if err != nil {
		t.Fatalf("Positions in mock mode: %v", err)
	}
	if len(positions) == 0 {
		t.Error("mock mode returned no positions")
	}
}

func TestDisconnectAccount(t *testing.T) {
	s := NewService(Policy{Mode: upstream.ModeMock}, nil, zerolog.Nop())
	sess := connect(t, s)

	if !s.DisconnectAccount(sess) {
		t.Error("disconnect of live session reported not found")
	}
	if s.DisconnectAccount(sess) {
		t.Error("repeat disconnect reported success")
	}
	if _, err := s.Asset(context.Background(), sess); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound after disconnect", err)
	}
}
