// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: tickgate/trading/v1/trading.proto

package tradingv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AccountInfo struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	AccountId        string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	AccountName      string                 `protobuf:"bytes,2,opt,name=account_name,json=accountName,proto3" json:"account_name,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Balance          float64                `protobuf:"fixed64,4,opt,name=balance,proto3" json:"balance,omitempty"`
	AvailableBalance float64                `protobuf:"fixed64,5,opt,name=available_balance,json=availableBalance,proto3" json:"available_balance,omitempty"`
	FrozenBalance    float64                `protobuf:"fixed64,6,opt,name=frozen_balance,json=frozenBalance,proto3" json:"frozen_balance,omitempty"`
	MarketValue      float64                `protobuf:"fixed64,7,opt,name=market_value,json=marketValue,proto3" json:"market_value,omitempty"`
	TotalAsset       float64                `protobuf:"fixed64,8,opt,name=total_asset,json=totalAsset,proto3" json:"total_asset,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AccountInfo) Reset() {
	*x = AccountInfo{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccountInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccountInfo) ProtoMessage() {}

func (x *AccountInfo) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccountInfo.ProtoReflect.Descriptor instead.
func (*AccountInfo) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{0}
}

func (x *AccountInfo) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *AccountInfo) GetAccountName() string {
	if x != nil {
		return x.AccountName
	}
	return ""
}

func (x *AccountInfo) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AccountInfo) GetBalance() float64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *AccountInfo) GetAvailableBalance() float64 {
	if x != nil {
		return x.AvailableBalance
	}
	return 0
}

func (x *AccountInfo) GetFrozenBalance() float64 {
	if x != nil {
		return x.FrozenBalance
	}
	return 0
}

func (x *AccountInfo) GetMarketValue() float64 {
	if x != nil {
		return x.MarketValue
	}
	return 0
}

func (x *AccountInfo) GetTotalAsset() float64 {
	if x != nil {
		return x.TotalAsset
	}
	return 0
}

type AssetInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalAsset    float64                `protobuf:"fixed64,1,opt,name=total_asset,json=totalAsset,proto3" json:"total_asset,omitempty"`
	MarketValue   float64                `protobuf:"fixed64,2,opt,name=market_value,json=marketValue,proto3" json:"market_value,omitempty"`
	Cash          float64                `protobuf:"fixed64,3,opt,name=cash,proto3" json:"cash,omitempty"`
	FrozenCash    float64                `protobuf:"fixed64,4,opt,name=frozen_cash,json=frozenCash,proto3" json:"frozen_cash,omitempty"`
	AvailableCash float64                `protobuf:"fixed64,5,opt,name=available_cash,json=availableCash,proto3" json:"available_cash,omitempty"`
	ProfitLoss    float64                `protobuf:"fixed64,6,opt,name=profit_loss,json=profitLoss,proto3" json:"profit_loss,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssetInfo) Reset() {
	*x = AssetInfo{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssetInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssetInfo) ProtoMessage() {}

func (x *AssetInfo) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssetInfo.ProtoReflect.Descriptor instead.
func (*AssetInfo) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{1}
}

func (x *AssetInfo) GetTotalAsset() float64 {
	if x != nil {
		return x.TotalAsset
	}
	return 0
}

func (x *AssetInfo) GetMarketValue() float64 {
	if x != nil {
		return x.MarketValue
	}
	return 0
}

func (x *AssetInfo) GetCash() float64 {
	if x != nil {
		return x.Cash
	}
	return 0
}

func (x *AssetInfo) GetFrozenCash() float64 {
	if x != nil {
		return x.FrozenCash
	}
	return 0
}

func (x *AssetInfo) GetAvailableCash() float64 {
	if x != nil {
		return x.AvailableCash
	}
	return 0
}

func (x *AssetInfo) GetProfitLoss() float64 {
	if x != nil {
		return x.ProfitLoss
	}
	return 0
}

type Position struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Symbol          string                 `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Volume          int64                  `protobuf:"varint,3,opt,name=volume,proto3" json:"volume,omitempty"`
	AvailableVolume int64                  `protobuf:"varint,4,opt,name=available_volume,json=availableVolume,proto3" json:"available_volume,omitempty"`
	FrozenVolume    int64                  `protobuf:"varint,5,opt,name=frozen_volume,json=frozenVolume,proto3" json:"frozen_volume,omitempty"`
	CostPrice       float64                `protobuf:"fixed64,6,opt,name=cost_price,json=costPrice,proto3" json:"cost_price,omitempty"`
	MarketPrice     float64                `protobuf:"fixed64,7,opt,name=market_price,json=marketPrice,proto3" json:"market_price,omitempty"`
	MarketValue     float64                `protobuf:"fixed64,8,opt,name=market_value,json=marketValue,proto3" json:"market_value,omitempty"`
	ProfitLoss      float64                `protobuf:"fixed64,9,opt,name=profit_loss,json=profitLoss,proto3" json:"profit_loss,omitempty"`
	ProfitLossRatio float64                `protobuf:"fixed64,10,opt,name=profit_loss_ratio,json=profitLossRatio,proto3" json:"profit_loss_ratio,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{2}
}

func (x *Position) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *Position) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Position) GetVolume() int64 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *Position) GetAvailableVolume() int64 {
	if x != nil {
		return x.AvailableVolume
	}
	return 0
}

func (x *Position) GetFrozenVolume() int64 {
	if x != nil {
		return x.FrozenVolume
	}
	return 0
}

func (x *Position) GetCostPrice() float64 {
	if x != nil {
		return x.CostPrice
	}
	return 0
}

func (x *Position) GetMarketPrice() float64 {
	if x != nil {
		return x.MarketPrice
	}
	return 0
}

func (x *Position) GetMarketValue() float64 {
	if x != nil {
		return x.MarketValue
	}
	return 0
}

func (x *Position) GetProfitLoss() float64 {
	if x != nil {
		return x.ProfitLoss
	}
	return 0
}

func (x *Position) GetProfitLossRatio() float64 {
	if x != nil {
		return x.ProfitLossRatio
	}
	return 0
}

type Order struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Symbol        string                 `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side          string                 `protobuf:"bytes,3,opt,name=side,proto3" json:"side,omitempty"`
	OrderType     string                 `protobuf:"bytes,4,opt,name=order_type,json=orderType,proto3" json:"order_type,omitempty"`
	Volume        int64                  `protobuf:"varint,5,opt,name=volume,proto3" json:"volume,omitempty"`
	Price         float64                `protobuf:"fixed64,6,opt,name=price,proto3" json:"price,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	SubmittedAt   *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"`
	FilledVolume  int64                  `protobuf:"varint,9,opt,name=filled_volume,json=filledVolume,proto3" json:"filled_volume,omitempty"`
	AveragePrice  float64                `protobuf:"fixed64,10,opt,name=average_price,json=averagePrice,proto3" json:"average_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{3}
}

func (x *Order) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *Order) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *Order) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *Order) GetOrderType() string {
	if x != nil {
		return x.OrderType
	}
	return ""
}

func (x *Order) GetVolume() int64 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *Order) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Order) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Order) GetSubmittedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SubmittedAt
	}
	return nil
}

func (x *Order) GetFilledVolume() int64 {
	if x != nil {
		return x.FilledVolume
	}
	return 0
}

func (x *Order) GetAveragePrice() float64 {
	if x != nil {
		return x.AveragePrice
	}
	return 0
}

type Trade struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TradeId       string                 `protobuf:"bytes,1,opt,name=trade_id,json=tradeId,proto3" json:"trade_id,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Symbol        string                 `protobuf:"bytes,3,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side          string                 `protobuf:"bytes,4,opt,name=side,proto3" json:"side,omitempty"`
	Volume        int64                  `protobuf:"varint,5,opt,name=volume,proto3" json:"volume,omitempty"`
	Price         float64                `protobuf:"fixed64,6,opt,name=price,proto3" json:"price,omitempty"`
	Amount        float64                `protobuf:"fixed64,7,opt,name=amount,proto3" json:"amount,omitempty"`
	TradedAt      *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=traded_at,json=tradedAt,proto3" json:"traded_at,omitempty"`
	Commission    float64                `protobuf:"fixed64,9,opt,name=commission,proto3" json:"commission,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Trade) Reset() {
	*x = Trade{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Trade) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Trade) ProtoMessage() {}

func (x *Trade) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Trade.ProtoReflect.Descriptor instead.
func (*Trade) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{4}
}

func (x *Trade) GetTradeId() string {
	if x != nil {
		return x.TradeId
	}
	return ""
}

func (x *Trade) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *Trade) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *Trade) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *Trade) GetVolume() int64 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *Trade) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Trade) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Trade) GetTradedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.TradedAt
	}
	return nil
}

func (x *Trade) GetCommission() float64 {
	if x != nil {
		return x.Commission
	}
	return 0
}

type ConnectAccountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectAccountRequest) Reset() {
	*x = ConnectAccountRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectAccountRequest) ProtoMessage() {}

func (x *ConnectAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectAccountRequest.ProtoReflect.Descriptor instead.
func (*ConnectAccountRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{5}
}

func (x *ConnectAccountRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type ConnectAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Account       *AccountInfo           `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectAccountResponse) Reset() {
	*x = ConnectAccountResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectAccountResponse) ProtoMessage() {}

func (x *ConnectAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectAccountResponse.ProtoReflect.Descriptor instead.
func (*ConnectAccountResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{6}
}

func (x *ConnectAccountResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ConnectAccountResponse) GetAccount() *AccountInfo {
	if x != nil {
		return x.Account
	}
	return nil
}

type DisconnectAccountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DisconnectAccountRequest) Reset() {
	*x = DisconnectAccountRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DisconnectAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectAccountRequest) ProtoMessage() {}

func (x *DisconnectAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectAccountRequest.ProtoReflect.Descriptor instead.
func (*DisconnectAccountRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{7}
}

func (x *DisconnectAccountRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type DisconnectAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DisconnectAccountResponse) Reset() {
	*x = DisconnectAccountResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DisconnectAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisconnectAccountResponse) ProtoMessage() {}

func (x *DisconnectAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisconnectAccountResponse.ProtoReflect.Descriptor instead.
func (*DisconnectAccountResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{8}
}

type PlaceOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Symbol        string                 `protobuf:"bytes,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Side          string                 `protobuf:"bytes,3,opt,name=side,proto3" json:"side,omitempty"`
	OrderType     string                 `protobuf:"bytes,4,opt,name=order_type,json=orderType,proto3" json:"order_type,omitempty"`
	Volume        int64                  `protobuf:"varint,5,opt,name=volume,proto3" json:"volume,omitempty"`
	Price         float64                `protobuf:"fixed64,6,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderRequest) Reset() {
	*x = PlaceOrderRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderRequest) ProtoMessage() {}

func (x *PlaceOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderRequest.ProtoReflect.Descriptor instead.
func (*PlaceOrderRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{9}
}

func (x *PlaceOrderRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *PlaceOrderRequest) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *PlaceOrderRequest) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *PlaceOrderRequest) GetOrderType() string {
	if x != nil {
		return x.OrderType
	}
	return ""
}

func (x *PlaceOrderRequest) GetVolume() int64 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *PlaceOrderRequest) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type PlaceOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceOrderResponse) Reset() {
	*x = PlaceOrderResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceOrderResponse) ProtoMessage() {}

func (x *PlaceOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceOrderResponse.ProtoReflect.Descriptor instead.
func (*PlaceOrderResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{10}
}

func (x *PlaceOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type CancelOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	OrderId       string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelOrderRequest) Reset() {
	*x = CancelOrderRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrderRequest) ProtoMessage() {}

func (x *CancelOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrderRequest.ProtoReflect.Descriptor instead.
func (*CancelOrderRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{11}
}

func (x *CancelOrderRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CancelOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type CancelOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelOrderResponse) Reset() {
	*x = CancelOrderResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrderResponse) ProtoMessage() {}

func (x *CancelOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrderResponse.ProtoReflect.Descriptor instead.
func (*CancelOrderResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{12}
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{13}
}

func (x *ListOrdersRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{14}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type ListTradesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesRequest) Reset() {
	*x = ListTradesRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesRequest) ProtoMessage() {}

func (x *ListTradesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesRequest.ProtoReflect.Descriptor instead.
func (*ListTradesRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{15}
}

func (x *ListTradesRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListTradesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trades        []*Trade               `protobuf:"bytes,1,rep,name=trades,proto3" json:"trades,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesResponse) Reset() {
	*x = ListTradesResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesResponse) ProtoMessage() {}

func (x *ListTradesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesResponse.ProtoReflect.Descriptor instead.
func (*ListTradesResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{16}
}

func (x *ListTradesResponse) GetTrades() []*Trade {
	if x != nil {
		return x.Trades
	}
	return nil
}

type ListPositionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPositionsRequest) Reset() {
	*x = ListPositionsRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPositionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPositionsRequest) ProtoMessage() {}

func (x *ListPositionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPositionsRequest.ProtoReflect.Descriptor instead.
func (*ListPositionsRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{17}
}

func (x *ListPositionsRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ListPositionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Positions     []*Position            `protobuf:"bytes,1,rep,name=positions,proto3" json:"positions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPositionsResponse) Reset() {
	*x = ListPositionsResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPositionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPositionsResponse) ProtoMessage() {}

func (x *ListPositionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPositionsResponse.ProtoReflect.Descriptor instead.
func (*ListPositionsResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{18}
}

func (x *ListPositionsResponse) GetPositions() []*Position {
	if x != nil {
		return x.Positions
	}
	return nil
}

type GetAssetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssetRequest) Reset() {
	*x = GetAssetRequest{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssetRequest) ProtoMessage() {}

func (x *GetAssetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssetRequest.ProtoReflect.Descriptor instead.
func (*GetAssetRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{19}
}

func (x *GetAssetRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetAssetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Asset         *AssetInfo             `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssetResponse) Reset() {
	*x = GetAssetResponse{}
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssetResponse) ProtoMessage() {}

func (x *GetAssetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_trading_v1_trading_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssetResponse.ProtoReflect.Descriptor instead.
func (*GetAssetResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_trading_v1_trading_proto_rawDescGZIP(), []int{20}
}

func (x *GetAssetResponse) GetAsset() *AssetInfo {
	if x != nil {
		return x.Asset
	}
	return nil
}

var File_tickgate_trading_v1_trading_proto protoreflect.FileDescriptor

const file_tickgate_trading_v1_trading_proto_rawDesc = "" +
	"\n" +
	"!tickgate/trading/v1/trading.proto\x12\x13tickgate.trading.v1\x1a\x1cgoogle/api/annotations.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x99\x02\n" +
	"\vAccountInfo\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12!\n" +
	"\faccount_name\x18\x02 \x01(\tR\vaccountName\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x18\n" +
	"\abalance\x18\x04 \x01(\x01R\abalance\x12+\n" +
	"\x11available_balance\x18\x05 \x01(\x01R\x10availableBalance\x12%\n" +
	"\x0efrozen_balance\x18\x06 \x01(\x01R\rfrozenBalance\x12!\n" +
	"\fmarket_value\x18\a \x01(\x01R\vmarketValue\x12\x1f\n" +
	"\vtotal_asset\x18\b \x01(\x01R\n" +
	"totalAsset\"\xcc\x01\n" +
	"\tAssetInfo\x12\x1f\n" +
	"\vtotal_asset\x18\x01 \x01(\x01R\n" +
	"totalAsset\x12!\n" +
	"\fmarket_value\x18\x02 \x01(\x01R\vmarketValue\x12\x12\n" +
	"\x04cash\x18\x03 \x01(\x01R\x04cash\x12\x1f\n" +
	"\vfrozen_cash\x18\x04 \x01(\x01R\n" +
	"frozenCash\x12%\n" +
	"\x0eavailable_cash\x18\x05 \x01(\x01R\ravailableCash\x12\x1f\n" +
	"\vprofit_loss\x18\x06 \x01(\x01R\n" +
	"profitLoss\"\xd0\x02\n" +
	"\bPosition\x12\x16\n" +
	"\x06symbol\x18\x01 \x01(\tR\x06symbol\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06volume\x18\x03 \x01(\x03R\x06volume\x12)\n" +
	"\x10available_volume\x18\x04 \x01(\x03R\x0favailableVolume\x12#\n" +
	"\rfrozen_volume\x18\x05 \x01(\x03R\ffrozenVolume\x12\x1d\n" +
	"\n" +
	"cost_price\x18\x06 \x01(\x01R\tcostPrice\x12!\n" +
	"\fmarket_price\x18\a \x01(\x01R\vmarketPrice\x12!\n" +
	"\fmarket_value\x18\b \x01(\x01R\vmarketValue\x12\x1f\n" +
	"\vprofit_loss\x18\t \x01(\x01R\n" +
	"profitLoss\x12*\n" +
	"\x11profit_loss_ratio\x18\n" +
	" \x01(\x01R\x0fprofitLossRatio\"\xbc\x02\n" +
	"\x05Order\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\tR\x06symbol\x12\x12\n" +
	"\x04side\x18\x03 \x01(\tR\x04side\x12\x1d\n" +
	"\n" +
	"order_type\x18\x04 \x01(\tR\torderType\x12\x16\n" +
	"\x06volume\x18\x05 \x01(\x03R\x06volume\x12\x14\n" +
	"\x05price\x18\x06 \x01(\x01R\x05price\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12=\n" +
	"\fsubmitted_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\vsubmittedAt\x12#\n" +
	"\rfilled_volume\x18\t \x01(\x03R\ffilledVolume\x12#\n" +
	"\raverage_price\x18\n" +
	" \x01(\x01R\faveragePrice\"\x88\x02\n" +
	"\x05Trade\x12\x19\n" +
	"\btrade_id\x18\x01 \x01(\tR\atradeId\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\x12\x16\n" +
	"\x06symbol\x18\x03 \x01(\tR\x06symbol\x12\x12\n" +
	"\x04side\x18\x04 \x01(\tR\x04side\x12\x16\n" +
	"\x06volume\x18\x05 \x01(\x03R\x06volume\x12\x14\n" +
	"\x05price\x18\x06 \x01(\x01R\x05price\x12\x16\n" +
	"\x06amount\x18\a \x01(\x01R\x06amount\x127\n" +
	"\ttraded_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\btradedAt\x12\x1e\n" +
	"\n" +
	"commission\x18\t \x01(\x01R\n" +
	"commission\"6\n" +
	"\x15ConnectAccountRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"s\n" +
	"\x16ConnectAccountResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12:\n" +
	"\aaccount\x18\x02 \x01(\v2 .tickgate.trading.v1.AccountInfoR\aaccount\"9\n" +
	"\x18DisconnectAccountRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x1b\n" +
	"\x19DisconnectAccountResponse\"\xab\x01\n" +
	"\x11PlaceOrderRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\tR\x06symbol\x12\x12\n" +
	"\x04side\x18\x03 \x01(\tR\x04side\x12\x1d\n" +
	"\n" +
	"order_type\x18\x04 \x01(\tR\torderType\x12\x16\n" +
	"\x06volume\x18\x05 \x01(\x03R\x06volume\x12\x14\n" +
	"\x05price\x18\x06 \x01(\x01R\x05price\"F\n" +
	"\x12PlaceOrderResponse\x120\n" +
	"\x05order\x18\x01 \x01(\v2\x1a.tickgate.trading.v1.OrderR\x05order\"N\n" +
	"\x12CancelOrderRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\"\x15\n" +
	"\x13CancelOrderResponse\"2\n" +
	"\x11ListOrdersRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"H\n" +
	"\x12ListOrdersResponse\x122\n" +
	"\x06orders\x18\x01 \x03(\v2\x1a.tickgate.trading.v1.OrderR\x06orders\"2\n" +
	"\x11ListTradesRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"H\n" +
	"\x12ListTradesResponse\x122\n" +
	"\x06trades\x18\x01 \x03(\v2\x1a.tickgate.trading.v1.TradeR\x06trades\"5\n" +
	"\x14ListPositionsRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"T\n" +
	"\x15ListPositionsResponse\x12;\n" +
	"\tpositions\x18\x01 \x03(\v2\x1d.tickgate.trading.v1.PositionR\tpositions\"0\n" +
	"\x0fGetAssetRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"H\n" +
	"\x10GetAssetResponse\x124\n" +
	"\x05asset\x18\x01 \x01(\v2\x1e.tickgate.trading.v1.AssetInfoR\x05asset2\xc1\b\n" +
	"\x0eTradingService\x12\x8a\x01\n" +
	"\x0eConnectAccount\x12*.tickgate.trading.v1.ConnectAccountRequest\x1a+.tickgate.trading.v1.ConnectAccountResponse\"\x1f\x82\xd3\xe4\x93\x02\x19:\x01*\"\x14/v1/trading/sessions\x12\x9d\x01\n" +
	"\x11DisconnectAccount\x12-.tickgate.trading.v1.DisconnectAccountRequest\x1a..tickgate.trading.v1.DisconnectAccountResponse\")\x82\xd3\xe4\x93\x02#*!/v1/trading/sessions/{session_id}\x12|\n" +
	"\n" +
	"PlaceOrder\x12&.tickgate.trading.v1.PlaceOrderRequest\x1a'.tickgate.trading.v1.PlaceOrderResponse\"\x1d\x82\xd3\xe4\x93\x02\x17:\x01*\"\x12/v1/trading/orders\x12\x91\x01\n" +
	"\vCancelOrder\x12'.tickgate.trading.v1.CancelOrderRequest\x1a(.tickgate.trading.v1.CancelOrderResponse\"/\x82\xd3\xe4\x93\x02):\x01*\"$/v1/trading/orders/{order_id}/cancel\x12y\n" +
	"\n" +
	"ListOrders\x12&.tickgate.trading.v1.ListOrdersRequest\x1a'.tickgate.trading.v1.ListOrdersResponse\"\x1a\x82\xd3\xe4\x93\x02\x14\x12\x12/v1/trading/orders\x12y\n" +
	"\n" +
	"ListTrades\x12&.tickgate.trading.v1.ListTradesRequest\x1a'.tickgate.trading.v1.ListTradesResponse\"\x1a\x82\xd3\xe4\x93\x02\x14\x12\x12/v1/trading/trades\x12\x85\x01\n" +
	"\rListPositions\x12).tickgate.trading.v1.ListPositionsRequest\x1a*.tickgate.trading.v1.ListPositionsResponse\"\x1d\x82\xd3\xe4\x93\x02\x17\x12\x15/v1/trading/positions\x12r\n" +
	"\bGetAsset\x12$.tickgate.trading.v1.GetAssetRequest\x1a%.tickgate.trading.v1.GetAssetResponse\"\x19\x82\xd3\xe4\x93\x02\x13\x12\x11/v1/trading/assetB/Z-TickGate/gen/go/tickgate/trading/v1;tradingv1b\x06proto3"

var (
	file_tickgate_trading_v1_trading_proto_rawDescOnce sync.Once
	file_tickgate_trading_v1_trading_proto_rawDescData []byte
)

func file_tickgate_trading_v1_trading_proto_rawDescGZIP() []byte {
	file_tickgate_trading_v1_trading_proto_rawDescOnce.Do(func() {
		file_tickgate_trading_v1_trading_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tickgate_trading_v1_trading_proto_rawDesc), len(file_tickgate_trading_v1_trading_proto_rawDesc)))
	})
	return file_tickgate_trading_v1_trading_proto_rawDescData
}

var file_tickgate_trading_v1_trading_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_tickgate_trading_v1_trading_proto_goTypes = []any{
	(*AccountInfo)(nil),               // 0: tickgate.trading.v1.AccountInfo
	(*AssetInfo)(nil),                 // 1: tickgate.trading.v1.AssetInfo
	(*Position)(nil),                  // 2: tickgate.trading.v1.Position
	(*Order)(nil),                     // 3: tickgate.trading.v1.Order
	(*Trade)(nil),                     // 4: tickgate.trading.v1.Trade
	(*ConnectAccountRequest)(nil),     // 5: tickgate.trading.v1.ConnectAccountRequest
	(*ConnectAccountResponse)(nil),    // 6: tickgate.trading.v1.ConnectAccountResponse
	(*DisconnectAccountRequest)(nil),  // 7: tickgate.trading.v1.DisconnectAccountRequest
	(*DisconnectAccountResponse)(nil), // 8: tickgate.trading.v1.DisconnectAccountResponse
	(*PlaceOrderRequest)(nil),         // 9: tickgate.trading.v1.PlaceOrderRequest
	(*PlaceOrderResponse)(nil),        // 10: tickgate.trading.v1.PlaceOrderResponse
	(*CancelOrderRequest)(nil),        // 11: tickgate.trading.v1.CancelOrderRequest
	(*CancelOrderResponse)(nil),       // 12: tickgate.trading.v1.CancelOrderResponse
	(*ListOrdersRequest)(nil),         // 13: tickgate.trading.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),        // 14: tickgate.trading.v1.ListOrdersResponse
	(*ListTradesRequest)(nil),         // 15: tickgate.trading.v1.ListTradesRequest
	(*ListTradesResponse)(nil),        // 16: tickgate.trading.v1.ListTradesResponse
	(*ListPositionsRequest)(nil),      // 17: tickgate.trading.v1.ListPositionsRequest
	(*ListPositionsResponse)(nil),     // 18: tickgate.trading.v1.ListPositionsResponse
	(*GetAssetRequest)(nil),           // 19: tickgate.trading.v1.GetAssetRequest
	(*GetAssetResponse)(nil),          // 20: tickgate.trading.v1.GetAssetResponse
	(*timestamppb.Timestamp)(nil),     // 21: google.protobuf.Timestamp
}
var file_tickgate_trading_v1_trading_proto_depIdxs = []int32{
	21, // 0: tickgate.trading.v1.Order.submitted_at:type_name -> google.protobuf.Timestamp
	21, // 1: tickgate.trading.v1.Trade.traded_at:type_name -> google.protobuf.Timestamp
	0,  // 2: tickgate.trading.v1.ConnectAccountResponse.account:type_name -> tickgate.trading.v1.AccountInfo
	3,  // 3: tickgate.trading.v1.PlaceOrderResponse.order:type_name -> tickgate.trading.v1.Order
	3,  // 4: tickgate.trading.v1.ListOrdersResponse.orders:type_name -> tickgate.trading.v1.Order
	4,  // 5: tickgate.trading.v1.ListTradesResponse.trades:type_name -> tickgate.trading.v1.Trade
	2,  // 6: tickgate.trading.v1.ListPositionsResponse.positions:type_name -> tickgate.trading.v1.Position
	1,  // 7: tickgate.trading.v1.GetAssetResponse.asset:type_name -> tickgate.trading.v1.AssetInfo
	5,  // 8: tickgate.trading.v1.TradingService.ConnectAccount:input_type -> tickgate.trading.v1.ConnectAccountRequest
	7,  // 9: tickgate.trading.v1.TradingService.DisconnectAccount:input_type -> tickgate.trading.v1.DisconnectAccountRequest
	9,  // 10: tickgate.trading.v1.TradingService.PlaceOrder:input_type -> tickgate.trading.v1.PlaceOrderRequest
	11, // 11: tickgate.trading.v1.TradingService.CancelOrder:input_type -> tickgate.trading.v1.CancelOrderRequest
	13, // 12: tickgate.trading.v1.TradingService.ListOrders:input_type -> tickgate.trading.v1.ListOrdersRequest
	15, // 13: tickgate.trading.v1.TradingService.ListTrades:input_type -> tickgate.trading.v1.ListTradesRequest
	17, // 14: tickgate.trading.v1.TradingService.ListPositions:input_type -> tickgate.trading.v1.ListPositionsRequest
	19, // 15: tickgate.trading.v1.TradingService.GetAsset:input_type -> tickgate.trading.v1.GetAssetRequest
	6,  // 16: tickgate.trading.v1.TradingService.ConnectAccount:output_type -> tickgate.trading.v1.ConnectAccountResponse
	8,  // 17: tickgate.trading.v1.TradingService.DisconnectAccount:output_type -> tickgate.trading.v1.DisconnectAccountResponse
	10, // 18: tickgate.trading.v1.TradingService.PlaceOrder:output_type -> tickgate.trading.v1.PlaceOrderResponse
	12, // 19: tickgate.trading.v1.TradingService.CancelOrder:output_type -> tickgate.trading.v1.CancelOrderResponse
	14, // 20: tickgate.trading.v1.TradingService.ListOrders:output_type -> tickgate.trading.v1.ListOrdersResponse
	16, // 21: tickgate.trading.v1.TradingService.ListTrades:output_type -> tickgate.trading.v1.ListTradesResponse
	18, // 22: tickgate.trading.v1.TradingService.ListPositions:output_type -> tickgate.trading.v1.ListPositionsResponse
	20, // 23: tickgate.trading.v1.TradingService.GetAsset:output_type -> tickgate.trading.v1.GetAssetResponse
	16, // [16:24] is the sub-list for method output_type
	8,  // [8:16] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_tickgate_trading_v1_trading_proto_init() }
func file_tickgate_trading_v1_trading_proto_init() {
	if File_tickgate_trading_v1_trading_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tickgate_trading_v1_trading_proto_rawDesc), len(file_tickgate_trading_v1_trading_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tickgate_trading_v1_trading_proto_goTypes,
		DependencyIndexes: file_tickgate_trading_v1_trading_proto_depIdxs,
		MessageInfos:      file_tickgate_trading_v1_trading_proto_msgTypes,
	}.Build()
	File_tickgate_trading_v1_trading_proto = out.File
	file_tickgate_trading_v1_trading_proto_goTypes = nil
	file_tickgate_trading_v1_trading_proto_depIdxs = nil
}
