package trading

import "time"

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType selects limit vs market execution.
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// OrderStatus tracks an order through the gateway.
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "PENDING"
	OrderStatusSubmitted     OrderStatus = "SUBMITTED"
	OrderStatusPartialFilled OrderStatus = "PARTIAL_FILLED"
	OrderStatusFilled        OrderStatus = "FILLED"
	OrderStatusCancelled     OrderStatus = "CANCELLED"
	OrderStatusRejected      OrderStatus = "REJECTED"
)

// AccountInfo describes a connected trading account.
type AccountInfo struct {
	AccountID        string
	AccountName      string
	Status           string
	Balance          float64
	AvailableBalance float64
	FrozenBalance    float64
	MarketValue      float64
	TotalAsset       float64
}

// AssetInfo is the account-level asset summary.
type AssetInfo struct {
	TotalAsset    float64
	MarketValue   float64
	Cash          float64
	FrozenCash    float64
	AvailableCash float64
	ProfitLoss    float64
}

// Position is one holding in the account.
type Position struct {
	Symbol          string
	Name            string
	Volume          int64
	AvailableVolume int64
	FrozenVolume    int64
	CostPrice       float64
	MarketPrice     float64
	MarketValue     float64
	ProfitLoss      float64
	ProfitLossRatio float64
}

// OrderRequest is a client order submission.
type OrderRequest struct {
	Symbol    string
	Side      Side
	OrderType OrderType
	Volume    int64
	Price     float64
}

// Order is the gateway's view of a submitted order.
type Order struct {
	OrderID       string
	Symbol        string
	Side          Side
	OrderType     OrderType
	Volume        int64
	Price         float64
	Status        OrderStatus
	SubmittedAt   time.Time
	FilledVolume  int64
	AveragePrice  float64
}

// Trade is one fill.
type Trade struct {
	TradeID    string
	OrderID    string
	Symbol     string
	Side       Side
	Volume     int64
	Price      float64
	Amount     float64
	TradedAt   time.Time
	Commission float64
}
