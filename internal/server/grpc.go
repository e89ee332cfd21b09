package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"TickGate/internal/delivery"
	"TickGate/internal/observability"
	"TickGate/internal/quote"
	"TickGate/internal/subscription"
	"TickGate/internal/trading"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	quotesv1 "TickGate/gen/go/tickgate/quotes/v1"
	tradingv1 "TickGate/gen/go/tickgate/trading/v1"
)

// GRPCServer wraps the gRPC server and the gRPC-Gateway HTTP mux. The
// WebSocket push endpoint is mounted on the same HTTP server as the
// gateway.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	deps          *ServerDeps
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	Subscriptions *subscription.Service
	Trading       *trading.Service
	Metrics       *observability.Metrics
	HealthChecker *observability.HealthChecker
	Log           zerolog.Logger

	KeepAliveInterval time.Duration
	HeartbeatInterval time.Duration
	RateCeiling       int
}

// NewGRPCServer creates a gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	quotesv1.RegisterQuoteServiceServer(grpcServer, &quoteServiceImpl{
		subs:      deps.Subscriptions,
		metrics:   deps.Metrics,
		keepalive: deps.KeepAliveInterval,
	})
	tradingv1.RegisterTradingServiceServer(grpcServer, &tradingServiceImpl{
		svc: deps.Trading,
	})

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		deps:          deps,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		s.deps.Log.Info().Msg("gRPC server shutting down")
		s.grpcServer.GracefulStop()
	}()

	s.deps.Log.Info().Str("addr", s.grpcAddr).Msg("gRPC server listening")
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the HTTP server carrying the gRPC-Gateway
// reverse proxy, the WebSocket push endpoint, and the health endpoints
// (blocking).
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := quotesv1.RegisterQuoteServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register quote gateway: %w", err)
	}
	if err := tradingv1.RegisterTradingServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register trading gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
	httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	httpMux.HandleFunc("GET /ws/subscriptions/{id}", s.handleSubscriptionSocket)
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		s.deps.Log.Info().Msg("HTTP gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	s.deps.Log.Info().Str("addr", s.httpAddr).Str("grpc", s.grpcAddr).
		Msg("HTTP gateway listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QuoteService gRPC implementation
// ============================================================================

type quoteServiceImpl struct {
	quotesv1.UnimplementedQuoteServiceServer
	subs      *subscription.Service
	metrics   *observability.Metrics
	keepalive time.Duration
}

func (s *quoteServiceImpl) CreateSubscription(ctx context.Context, req *quotesv1.CreateSubscriptionRequest) (*quotesv1.CreateSubscriptionResponse, error) {
	if len(req.Symbols) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one symbol is required")
	}

	adjust, err := adjustFromProto(req.Adjust)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	rec, err := s.subs.Create(req.Symbols, adjust)
	if err != nil {
		return nil, subscriptionStatus(err)
	}

	return &quotesv1.CreateSubscriptionResponse{
		Subscription: subscriptionToProto(rec),
	}, nil
}

func (s *quoteServiceImpl) GetSubscription(ctx context.Context, req *quotesv1.GetSubscriptionRequest) (*quotesv1.GetSubscriptionResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	rec, err := s.subs.Get(req.Id)
	if err != nil {
		return nil, subscriptionStatus(err)
	}

	return &quotesv1.GetSubscriptionResponse{
		Subscription: subscriptionToProto(rec),
	}, nil
}

func (s *quoteServiceImpl) ListSubscriptions(ctx context.Context, req *quotesv1.ListSubscriptionsRequest) (*quotesv1.ListSubscriptionsResponse, error) {
	recs := s.subs.List()

	subs := make([]*quotesv1.Subscription, 0, len(recs))
	for _, rec := range recs {
		subs = append(subs, subscriptionToProto(rec))
	}

	return &quotesv1.ListSubscriptionsResponse{Subscriptions: subs}, nil
}

func (s *quoteServiceImpl) CancelSubscription(ctx context.Context, req *quotesv1.CancelSubscriptionRequest) (*quotesv1.CancelSubscriptionResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.subs.Cancel(req.Id); err != nil {
		return nil, subscriptionStatus(err)
	}

	return &quotesv1.CancelSubscriptionResponse{}, nil
}

func (s *quoteServiceImpl) PullTicks(ctx context.Context, req *quotesv1.PullTicksRequest) (*quotesv1.PullTicksResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	ticks, err := s.subs.Snapshot(req.Id)
	if err != nil {
		return nil, subscriptionStatus(err)
	}

	pbTicks := make([]*quotesv1.Tick, 0, len(ticks))
	for _, t := range ticks {
		pbTicks = append(pbTicks, tickToProto(t))
	}

	return &quotesv1.PullTicksResponse{Ticks: pbTicks}, nil
}

func (s *quoteServiceImpl) StreamTicks(req *quotesv1.StreamTicksRequest, stream grpc.ServerStreamingServer[quotesv1.TickFrame]) error {
	if req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}

	rec, err := s.subs.Get(req.Id)
	if err != nil {
		return subscriptionStatus(err)
	}

	delivery.StreamQueue(stream.Context(), rec, &grpcSink{stream: stream},
		s.keepalive, s.metrics, "grpc")
	return nil
}

// grpcSink adapts a server-streaming response to the delivery drain loop.
type grpcSink struct {
	stream grpc.ServerStreamingServer[quotesv1.TickFrame]
}

func (g *grpcSink) Send(t quote.Tick) error {
	return g.stream.Send(&quotesv1.TickFrame{
		Frame: &quotesv1.TickFrame_Tick{Tick: tickToProto(t)},
	})
}

func (g *grpcSink) KeepAlive() error {
	return g.stream.Send(&quotesv1.TickFrame{
		Frame: &quotesv1.TickFrame_KeepAlive{KeepAlive: &emptypb.Empty{}},
	})
}

// ============================================================================
// TradingService gRPC implementation
// ============================================================================

type tradingServiceImpl struct {
	tradingv1.UnimplementedTradingServiceServer
	svc *trading.Service
}

func (s *tradingServiceImpl) ConnectAccount(ctx context.Context, req *tradingv1.ConnectAccountRequest) (*tradingv1.ConnectAccountResponse, error) {
	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	sessionID, account, err := s.svc.ConnectAccount(req.AccountId)
	if err != nil {
		return nil, tradingStatus(err)
	}

	return &tradingv1.ConnectAccountResponse{
		SessionId: sessionID,
		Account:   accountToProto(account),
	}, nil
}

func (s *tradingServiceImpl) DisconnectAccount(ctx context.Context, req *tradingv1.DisconnectAccountRequest) (*tradingv1.DisconnectAccountResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	if !s.svc.DisconnectAccount(req.SessionId) {
		return nil, status.Errorf(codes.NotFound, "session %s not found", req.SessionId)
	}

	return &tradingv1.DisconnectAccountResponse{}, nil
}

func (s *tradingServiceImpl) PlaceOrder(ctx context.Context, req *tradingv1.PlaceOrderRequest) (*tradingv1.PlaceOrderResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	order, err := s.svc.SubmitOrder(ctx, req.SessionId, trading.OrderRequest{
		Symbol:    req.Symbol,
		Side:      trading.Side(req.Side),
		OrderType: trading.OrderType(req.OrderType),
		Volume:    req.Volume,
		Price:     req.Price,
	})
	if err != nil {
		return nil, tradingStatus(err)
	}

	return &tradingv1.PlaceOrderResponse{Order: orderToProto(order)}, nil
}

func (s *tradingServiceImpl) CancelOrder(ctx context.Context, req *tradingv1.CancelOrderRequest) (*tradingv1.CancelOrderResponse, error) {
	if req.SessionId == "" || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id and order_id are required")
	}

	if err := s.svc.CancelOrder(ctx, req.SessionId, req.OrderId); err != nil {
		return nil, tradingStatus(err)
	}

	return &tradingv1.CancelOrderResponse{}, nil
}

func (s *tradingServiceImpl) ListOrders(ctx context.Context, req *tradingv1.ListOrdersRequest) (*tradingv1.ListOrdersResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	orders, err := s.svc.Orders(ctx, req.SessionId)
	if err != nil {
		return nil, tradingStatus(err)
	}

	pbOrders := make([]*tradingv1.Order, 0, len(orders))
	for _, o := range orders {
		pbOrders = append(pbOrders, orderToProto(o))
	}
	return &tradingv1.ListOrdersResponse{Orders: pbOrders}, nil
}

func (s *tradingServiceImpl) ListTrades(ctx context.Context, req *tradingv1.ListTradesRequest) (*tradingv1.ListTradesResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	trades, err := s.svc.Trades(ctx, req.SessionId)
	if err != nil {
		return nil, tradingStatus(err)
	}

	pbTrades := make([]*tradingv1.Trade, 0, len(trades))
	for _, t := range trades {
		pbTrades = append(pbTrades, &tradingv1.Trade{
			TradeId:    t.TradeID,
			OrderId:    t.OrderID,
			Symbol:     t.Symbol,
			Side:       string(t.Side),
			Volume:     t.Volume,
			Price:      t.Price,
			Amount:     t.Amount,
			TradedAt:   timestamppb.New(t.TradedAt),
			Commission: t.Commission,
		})
	}
	return &tradingv1.ListTradesResponse{Trades: pbTrades}, nil
}

func (s *tradingServiceImpl) ListPositions(ctx context.Context, req *tradingv1.ListPositionsRequest) (*tradingv1.ListPositionsResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	positions, err := s.svc.Positions(ctx, req.SessionId)
	if err != nil {
		return nil, tradingStatus(err)
	}

	pbPositions := make([]*tradingv1.Position, 0, len(positions))
	for _, p := range positions {
		pbPositions = append(pbPositions, &tradingv1.Position{
			Symbol:          p.Symbol,
			Name:            p.Name,
			Volume:          p.Volume,
			AvailableVolume: p.AvailableVolume,
			FrozenVolume:    p.FrozenVolume,
			CostPrice:       p.CostPrice,
			MarketPrice:     p.MarketPrice,
			MarketValue:     p.MarketValue,
			ProfitLoss:      p.ProfitLoss,
			ProfitLossRatio: p.ProfitLossRatio,
		})
	}
	return &tradingv1.ListPositionsResponse{Positions: pbPositions}, nil
}

func (s *tradingServiceImpl) GetAsset(ctx context.Context, req *tradingv1.GetAssetRequest) (*tradingv1.GetAssetResponse, error) {
	if req.SessionId == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	asset, err := s.svc.Asset(ctx, req.SessionId)
	if err != nil {
		return nil, tradingStatus(err)
	}

	return &tradingv1.GetAssetResponse{
		Asset: &tradingv1.AssetInfo{
			TotalAsset:    asset.TotalAsset,
			MarketValue:   asset.MarketValue,
			Cash:          asset.Cash,
			FrozenCash:    asset.FrozenCash,
			AvailableCash: asset.AvailableCash,
			ProfitLoss:    asset.ProfitLoss,
		},
	}, nil
}

// ============================================================================
// Conversions and error mapping
// ============================================================================

func subscriptionStatus(err error) error {
	switch {
	case errors.Is(err, subscription.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.Is(err, subscription.ErrNotFound):
		return status.Errorf(codes.NotFound, "%v", err)
	case errors.Is(err, subscription.ErrCapacityExceeded):
		return status.Errorf(codes.ResourceExhausted, "%v", err)
	case errors.Is(err, subscription.ErrUpstreamUnavailable):
		return status.Errorf(codes.Unavailable, "%v", err)
	default:
		return status.Errorf(codes.Internal, "%v", err)
	}
}

func tradingStatus(err error) error {
	switch {
	case errors.Is(err, trading.ErrSessionNotFound),
		errors.Is(err, trading.ErrOrderNotFound):
		return status.Errorf(codes.NotFound, "%v", err)
	case errors.Is(err, trading.ErrInvalidOrder):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	default:
		return status.Errorf(codes.Internal, "%v", err)
	}
}

func adjustFromProto(a quotesv1.AdjustType) (quote.AdjustType, error) {
	switch a {
	case quotesv1.AdjustType_ADJUST_TYPE_UNSPECIFIED, quotesv1.AdjustType_ADJUST_TYPE_NONE:
		return quote.AdjustNone, nil
	case quotesv1.AdjustType_ADJUST_TYPE_FRONT:
		return quote.AdjustFront, nil
	case quotesv1.AdjustType_ADJUST_TYPE_BACK:
		return quote.AdjustBack, nil
	default:
		return quote.AdjustNone, fmt.Errorf("unknown adjust type: %d", a)
	}
}

func adjustToProto(a quote.AdjustType) quotesv1.AdjustType {
	switch a {
	case quote.AdjustFront:
		return quotesv1.AdjustType_ADJUST_TYPE_FRONT
	case quote.AdjustBack:
		return quotesv1.AdjustType_ADJUST_TYPE_BACK
	default:
		return quotesv1.AdjustType_ADJUST_TYPE_NONE
	}
}

func subscriptionToProto(rec *subscription.Record) *quotesv1.Subscription {
	return &quotesv1.Subscription{
		Id:        rec.ID,
		Symbols:   rec.Symbols,
		Adjust:    adjustToProto(rec.Adjust),
		Status:    rec.Status().String(),
		CreatedAt: timestamppb.New(rec.CreatedAt),
		Dropped:   rec.Dropped(),
	}
}

func tickToProto(t quote.Tick) *quotesv1.Tick {
	return &quotesv1.Tick{
		Symbol:    t.Symbol,
		Price:     t.Price,
		Volume:    t.Volume,
		Amount:    t.Amount,
		Bid:       t.Bid,
		Ask:       t.Ask,
		Timestamp: timestamppb.New(t.Timestamp),
	}
}

func accountToProto(a trading.AccountInfo) *tradingv1.AccountInfo {
	return &tradingv1.AccountInfo{
		AccountId:        a.AccountID,
		AccountName:      a.AccountName,
		Status:           a.Status,
		Balance:          a.Balance,
		AvailableBalance: a.AvailableBalance,
		FrozenBalance:    a.FrozenBalance,
		MarketValue:      a.MarketValue,
		TotalAsset:       a.TotalAsset,
	}
}

func orderToProto(o trading.Order) *tradingv1.Order {
	return &tradingv1.Order{
		OrderId:      o.OrderID,
		Symbol:       o.Symbol,
		Side:         string(o.Side),
		OrderType:    string(o.OrderType),
		Volume:       o.Volume,
		Price:        o.Price,
		Status:       string(o.Status),
		SubmittedAt:  timestamppb.New(o.SubmittedAt),
		FilledVolume: o.FilledVolume,
		AveragePrice: o.AveragePrice,
	}
}
