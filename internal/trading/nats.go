package trading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Order/query subjects served by the QMT-side gateway over NATS
// request/reply.
const (
	subjectPlaceOrder  = "md.trading.order.place"
	subjectCancelOrder = "md.trading.order.cancel"
	subjectQueryAsset  = "md.trading.query.asset"
	subjectQueryPos    = "md.trading.query.positions"
	subjectQueryOrders = "md.trading.query.orders"
	subjectQueryTrades = "md.trading.query.trades"
)

// NATSTrader forwards trading calls to the upstream gateway via NATS
// request/reply. Only used in dev/prod mode.
type NATSTrader struct {
	nc  *nats.Conn
	log zerolog.Logger
}

func NewNATSTrader(nc *nats.Conn, log zerolog.Logger) *NATSTrader {
	return &NATSTrader{nc: nc, log: log}
}

type gatewayReply struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func (t *NATSTrader) request(ctx context.Context, subject string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	msg, err := t.nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("request %s: %w", subject, err)
	}

	var reply gatewayReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return fmt.Errorf("decode reply from %s: %w", subject, err)
	}
	if !reply.OK {
		return fmt.Errorf("gateway rejected %s: %s", subject, reply.Error)
	}
	if out != nil {
		if err := json.Unmarshal(reply.Data, out); err != nil {
			return fmt.Errorf("decode payload from %s: %w", subject, err)
		}
	}
	return nil
}

func (t *NATSTrader) PlaceOrder(ctx context.Context, accountID string, req OrderRequest) (string, error) {
	var resp struct {
		OrderID string `json:"order_id"`
	}
	err := t.request(ctx, subjectPlaceOrder, map[string]interface{}{
		"account_id": accountID,
		"symbol":     req.Symbol,
		"side":       req.Side,
		"order_type": req.OrderType,
		"volume":     req.Volume,
		"price":      req.Price,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

func (t *NATSTrader) CancelOrder(ctx context.Context, accountID, orderID string) error {
	return t.request(ctx, subjectCancelOrder, map[string]string{
		"account_id": accountID,
		"order_id":   orderID,
	}, nil)
}

func (t *NATSTrader) QueryAsset(ctx context.Context, accountID string) (AssetInfo, error) {
	var asset AssetInfo
	err := t.request(ctx, subjectQueryAsset, map[string]string{"account_id": accountID}, &asset)
	return asset, err
}

func (t *NATSTrader) QueryPositions(ctx context.Context, accountID string) ([]Position, error) {
	var positions []Position
	err := t.request(ctx, subjectQueryPos, map[string]string{"account_id": accountID}, &positions)
	return positions, err
}

func (t *NATSTrader) QueryOrders(ctx context.Context, accountID string) ([]Order, error) {
	var orders []Order
	err := t.request(ctx, subjectQueryOrders, map[string]string{"account_id": accountID}, &orders)
	return orders, err
}

func (t *NATSTrader) QueryTrades(ctx context.Context, accountID string) ([]Trade, error) {
	var trades []Trade
	err := t.request(ctx, subjectQueryTrades, map[string]string{"account_id": accountID}, &trades)
	return trades, err
}
