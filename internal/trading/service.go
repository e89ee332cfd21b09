package trading

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"TickGate/internal/quote"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Errors surfaced by the trading service.
var (
	ErrSessionNotFound = errors.New("trading session not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrder    = errors.New("invalid order")
)

// Trader is the upstream order/query capability. Nil in mock mode.
type Trader interface {
	PlaceOrder(ctx context.Context, accountID string, req OrderRequest) (orderID string, err error)
	CancelOrder(ctx context.Context, accountID, orderID string) error
	QueryAsset(ctx context.Context, accountID string) (AssetInfo, error)
	QueryPositions(ctx context.Context, accountID string) ([]Position, error)
	QueryOrders(ctx context.Context, accountID string) ([]Order, error)
	QueryTrades(ctx context.Context, accountID string) ([]Trade, error)
}

type session struct {
	accountID   string
	account     AccountInfo
	connectedAt time.Time
}

// Service forwards trading calls to the upstream gateway behind the
// interception policy. Orders submitted while intercepted are simulated and
// kept in memory, matching the gateway's mock behavior.
type Service struct {
	policy Policy
	trader Trader
	log    zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session
	orders   map[string]*Order
	orderSeq int64
}

func NewService(policy Policy, trader Trader, log zerolog.Logger) *Service {
	return &Service{
		policy:   policy,
		trader:   trader,
		log:      log,
		sessions: make(map[string]*session),
		orders:   make(map[string]*Order),
		orderSeq: 1000,
	}
}

// ConnectAccount opens a trading session and returns its id with the
// account summary.
func (s *Service) ConnectAccount(accountID string) (string, AccountInfo, error) {
	if accountID == "" {
		return "", AccountInfo{}, fmt.Errorf("account id is required")
	}

	account := AccountInfo{
		AccountID:        accountID,
		AccountName:      "account " + accountID,
		Status:           "CONNECTED",
		Balance:          1_000_000,
		AvailableBalance: 950_000,
		FrozenBalance:    50_000,
		MarketValue:      800_000,
		TotalAsset:       1_800_000,
	}

	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = &session{
		accountID:   accountID,
		account:     account,
		connectedAt: time.Now(),
	}
	s.mu.Unlock()

	s.log.Info().Str("account", accountID).Str("session", sessionID).Msg("account connected")
	return sessionID, account, nil
}

// DisconnectAccount closes a session. Reports whether it existed.
func (s *Service) DisconnectAccount(sessionID string) bool {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return ok
}

// IsConnected reports whether the session is live.
func (s *Service) IsConnected(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionID] != nil
}

// Account returns the session's account summary.
func (s *Service) Account(sessionID string) (AccountInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return AccountInfo{}, err
	}
	return sess.account, nil
}

// SubmitOrder validates and forwards an order. Outside prod-with-allow the
// order is intercepted: a simulated order is recorded and returned, and
// nothing reaches the upstream gateway.
func (s *Service) SubmitOrder(ctx context.Context, sessionID string, req OrderRequest) (Order, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Order{}, err
	}
	if err := quote.ValidateSymbol(req.Symbol); err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if req.Volume <= 0 {
		return Order{}, fmt.Errorf("%w: volume must be positive, got %d", ErrInvalidOrder, req.Volume)
	}
	if req.OrderType == OrderTypeLimit && req.Price <= 0 {
		return Order{}, fmt.Errorf("%w: limit order needs a positive price", ErrInvalidOrder)
	}

	if !s.policy.AllowsRealTrading() {
		s.log.Warn().
			Stringer("mode", s.policy.Mode).
			Str("symbol", req.Symbol).
			Msg("real trading not allowed, returning simulated order")
		return s.recordSimulatedOrder(req), nil
	}

	s.log.Info().
		Str("symbol", req.Symbol).
		Str("side", string(req.Side)).
		Int64("volume", req.Volume).
		Msg("forwarding order upstream")

	orderID, err := s.trader.PlaceOrder(ctx, sess.accountID, req)
	if err != nil {
		return Order{}, fmt.Errorf("place order: %w", err)
	}

	order := Order{
		OrderID:     orderID,
		Symbol:      req.Symbol,
		Side:        req.Side,
		OrderType:   req.OrderType,
		Volume:      req.Volume,
		Price:       req.Price,
		Status:      OrderStatusSubmitted,
		SubmittedAt: time.Now(),
	}
	s.mu.Lock()
	s.orders[order.OrderID] = &order
	s.mu.Unlock()
	return order, nil
}

func (s *Service) recordSimulatedOrder(req OrderRequest) Order {
	s.mu.Lock()
	s.orderSeq++
	order := Order{
		OrderID:     fmt.Sprintf("sim-%d", s.orderSeq),
		Symbol:      req.Symbol,
		Side:        req.Side,
		OrderType:   req.OrderType,
		Volume:      req.Volume,
		Price:       req.Price,
		Status:      OrderStatusSubmitted,
		SubmittedAt: time.Now(),
	}
	s.orders[order.OrderID] = &order
	s.mu.Unlock()
	return order
}

// CancelOrder cancels an order. While intercepted the cancel always
// succeeds: a known order is marked cancelled and an unknown one is ignored,
// so dev/mock clients can exercise their cancel path freely. In real-trading
// mode an unknown order is an error and the cancel is forwarded upstream.
func (s *Service) CancelOrder(ctx context.Context, sessionID, orderID string) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	if !s.policy.AllowsRealTrading() {
		s.mu.Lock()
		if o := s.orders[orderID]; o != nil {
			o.Status = OrderStatusCancelled
		}
		s.mu.Unlock()
		s.log.Warn().Stringer("mode", s.policy.Mode).Str("order", orderID).
			Msg("cancel intercepted")
		return nil
	}

	s.mu.Lock()
	o := s.orders[orderID]
	s.mu.Unlock()
	if o == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	if err := s.trader.CancelOrder(ctx, sess.accountID, orderID); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	s.mu.Lock()
	o.Status = OrderStatusCancelled
	s.mu.Unlock()
	return nil
}

// Orders returns the session's orders: upstream data in dev/prod with
// fallback to the in-memory book when the query fails.
func (s *Service) Orders(ctx context.Context, sessionID string) ([]Order, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if s.policy.UsesRealData() && s.trader != nil {
		orders, qerr := s.trader.QueryOrders(ctx, sess.accountID)
		if qerr == nil {
			return orders, nil
		}
		s.log.Warn().Err(qerr).Msg("upstream order query failed, using in-memory orders")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out, nil
}

// Trades returns the session's fills, with canned data when upstream is
// unavailable.
func (s *Service) Trades(ctx context.Context, sessionID string) ([]Trade, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if s.policy.UsesRealData() && s.trader != nil {
		trades, qerr := s.trader.QueryTrades(ctx, sess.accountID)
		if qerr == nil {
			return trades, nil
		}
		s.log.Warn().Err(qerr).Msg("upstream trade query failed, using canned trades")
	}

	return []Trade{
		{
			TradeID:    "trade-001",
			OrderID:    "order-1001",
			Symbol:     "000001.SZ",
			Side:       SideBuy,
			Volume:     1000,
			Price:      13.20,
			Amount:     13_200,
			TradedAt:   time.Now(),
			Commission: 13.20,
		},
	}, nil
}

// Positions returns the session's holdings, with canned data when upstream
// is unavailable.
func (s *Service) Positions(ctx context.Context, sessionID string) ([]Position, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if s.policy.UsesRealData() && s.trader != nil {
		positions, qerr := s.trader.QueryPositions(ctx, sess.accountID)
		if qerr == nil {
			return positions, nil
		}
		s.log.Warn().Err(qerr).Msg("upstream position query failed, using canned positions")
	}

	return []Position{
		{
			Symbol:          "000001.SZ",
			Name:            "PAB",
			Volume:          10_000,
			AvailableVolume: 10_000,
			CostPrice:       12.50,
			MarketPrice:     13.20,
			MarketValue:     132_000,
			ProfitLoss:      7_000,
			ProfitLossRatio: 0.056,
		},
		{
			Symbol:          "000002.SZ",
			Name:            "Vanke",
			Volume:          5_000,
			AvailableVolume: 5_000,
			CostPrice:       18.80,
			MarketPrice:     19.50,
			MarketValue:     97_500,
			ProfitLoss:      3_500,
			ProfitLossRatio: 0.037,
		},
	}, nil
}

// Asset returns the session's asset summary, with canned data when upstream
// is unavailable.
func (s *Service) Asset(ctx context.Context, sessionID string) (AssetInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return AssetInfo{}, err
	}

	if s.policy.UsesRealData() && s.trader != nil {
		asset, qerr := s.trader.QueryAsset(ctx, sess.accountID)
		if qerr == nil {
			return asset, nil
		}
		s.log.Warn().Err(qerr).Msg("upstream asset query failed, using canned asset")
	}

	return AssetInfo{
		TotalAsset:    1_800_000,
		MarketValue:   800_000,
		Cash:          950_000,
		FrozenCash:    50_000,
		AvailableCash: 900_000,
		ProfitLoss:    50_000,
	}, nil
}

func (s *Service) session(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[sessionID]
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return sess, nil
}
