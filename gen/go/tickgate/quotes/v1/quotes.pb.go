// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: tickgate/quotes/v1/quotes.proto

package quotesv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
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

// AdjustType selects the price-adjustment transform applied to ticks.
type AdjustType int32

const (
	AdjustType_ADJUST_TYPE_UNSPECIFIED AdjustType = 0
	AdjustType_ADJUST_TYPE_NONE        AdjustType = 1
	AdjustType_ADJUST_TYPE_FRONT       AdjustType = 2
	AdjustType_ADJUST_TYPE_BACK        AdjustType = 3
)

// Enum value maps for AdjustType.
var (
	AdjustType_name = map[int32]string{
		0: "ADJUST_TYPE_UNSPECIFIED",
		1: "ADJUST_TYPE_NONE",
		2: "ADJUST_TYPE_FRONT",
		3: "ADJUST_TYPE_BACK",
	}
	AdjustType_value = map[string]int32{
		"ADJUST_TYPE_UNSPECIFIED": 0,
		"ADJUST_TYPE_NONE":        1,
		"ADJUST_TYPE_FRONT":       2,
		"ADJUST_TYPE_BACK":        3,
	}
)

func (x AdjustType) Enum() *AdjustType {
	p := new(AdjustType)
	*p = x
	return p
}

func (x AdjustType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AdjustType) Descriptor() protoreflect.EnumDescriptor {
	return file_tickgate_quotes_v1_quotes_proto_enumTypes[0].Descriptor()
}

func (AdjustType) Type() protoreflect.EnumType {
	return &file_tickgate_quotes_v1_quotes_proto_enumTypes[0]
}

func (x AdjustType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AdjustType.Descriptor instead.
func (AdjustType) EnumDescriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{0}
}

type Tick struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Symbol        string                 `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Price         float64                `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	Volume        int64                  `protobuf:"varint,3,opt,name=volume,proto3" json:"volume,omitempty"`
	Amount        float64                `protobuf:"fixed64,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Bid           float64                `protobuf:"fixed64,5,opt,name=bid,proto3" json:"bid,omitempty"`
	Ask           float64                `protobuf:"fixed64,6,opt,name=ask,proto3" json:"ask,omitempty"`
	Timestamp     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Tick) Reset() {
	*x = Tick{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Tick) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Tick) ProtoMessage() {}

func (x *Tick) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Tick.ProtoReflect.Descriptor instead.
func (*Tick) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{0}
}

func (x *Tick) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *Tick) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Tick) GetVolume() int64 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *Tick) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Tick) GetBid() float64 {
	if x != nil {
		return x.Bid
	}
	return 0
}

func (x *Tick) GetAsk() float64 {
	if x != nil {
		return x.Ask
	}
	return 0
}

func (x *Tick) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

type Subscription struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Symbols   []string               `protobuf:"bytes,2,rep,name=symbols,proto3" json:"symbols,omitempty"`
	Adjust    AdjustType             `protobuf:"varint,3,opt,name=adjust,proto3,enum=tickgate.quotes.v1.AdjustType" json:"adjust,omitempty"`
	Status    string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	// Ticks evicted from this subscription's queue by overflow.
	Dropped       uint64 `protobuf:"varint,6,opt,name=dropped,proto3" json:"dropped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Subscription) Reset() {
	*x = Subscription{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subscription) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subscription) ProtoMessage() {}

func (x *Subscription) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subscription.ProtoReflect.Descriptor instead.
func (*Subscription) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{1}
}

func (x *Subscription) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Subscription) GetSymbols() []string {
	if x != nil {
		return x.Symbols
	}
	return nil
}

func (x *Subscription) GetAdjust() AdjustType {
	if x != nil {
		return x.Adjust
	}
	return AdjustType_ADJUST_TYPE_UNSPECIFIED
}

func (x *Subscription) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Subscription) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Subscription) GetDropped() uint64 {
	if x != nil {
		return x.Dropped
	}
	return 0
}

type CreateSubscriptionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Symbols       []string               `protobuf:"bytes,1,rep,name=symbols,proto3" json:"symbols,omitempty"`
	Adjust        AdjustType             `protobuf:"varint,2,opt,name=adjust,proto3,enum=tickgate.quotes.v1.AdjustType" json:"adjust,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSubscriptionRequest) Reset() {
	*x = CreateSubscriptionRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSubscriptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSubscriptionRequest) ProtoMessage() {}

func (x *CreateSubscriptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSubscriptionRequest.ProtoReflect.Descriptor instead.
func (*CreateSubscriptionRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{2}
}

func (x *CreateSubscriptionRequest) GetSymbols() []string {
	if x != nil {
		return x.Symbols
	}
	return nil
}

func (x *CreateSubscriptionRequest) GetAdjust() AdjustType {
	if x != nil {
		return x.Adjust
	}
	return AdjustType_ADJUST_TYPE_UNSPECIFIED
}

type CreateSubscriptionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subscription  *Subscription          `protobuf:"bytes,1,opt,name=subscription,proto3" json:"subscription,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSubscriptionResponse) Reset() {
	*x = CreateSubscriptionResponse{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSubscriptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSubscriptionResponse) ProtoMessage() {}

func (x *CreateSubscriptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSubscriptionResponse.ProtoReflect.Descriptor instead.
func (*CreateSubscriptionResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{3}
}

func (x *CreateSubscriptionResponse) GetSubscription() *Subscription {
	if x != nil {
		return x.Subscription
	}
	return nil
}

type GetSubscriptionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSubscriptionRequest) Reset() {
	*x = GetSubscriptionRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSubscriptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSubscriptionRequest) ProtoMessage() {}

func (x *GetSubscriptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSubscriptionRequest.ProtoReflect.Descriptor instead.
func (*GetSubscriptionRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{4}
}

func (x *GetSubscriptionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetSubscriptionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subscription  *Subscription          `protobuf:"bytes,1,opt,name=subscription,proto3" json:"subscription,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSubscriptionResponse) Reset() {
	*x = GetSubscriptionResponse{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSubscriptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSubscriptionResponse) ProtoMessage() {}

func (x *GetSubscriptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSubscriptionResponse.ProtoReflect.Descriptor instead.
func (*GetSubscriptionResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{5}
}

func (x *GetSubscriptionResponse) GetSubscription() *Subscription {
	if x != nil {
		return x.Subscription
	}
	return nil
}

type ListSubscriptionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubscriptionsRequest) Reset() {
	*x = ListSubscriptionsRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubscriptionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubscriptionsRequest) ProtoMessage() {}

func (x *ListSubscriptionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubscriptionsRequest.ProtoReflect.Descriptor instead.
func (*ListSubscriptionsRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{6}
}

type ListSubscriptionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subscriptions []*Subscription        `protobuf:"bytes,1,rep,name=subscriptions,proto3" json:"subscriptions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubscriptionsResponse) Reset() {
	*x = ListSubscriptionsResponse{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubscriptionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubscriptionsResponse) ProtoMessage() {}

func (x *ListSubscriptionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubscriptionsResponse.ProtoReflect.Descriptor instead.
func (*ListSubscriptionsResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{7}
}

func (x *ListSubscriptionsResponse) GetSubscriptions() []*Subscription {
	if x != nil {
		return x.Subscriptions
	}
	return nil
}

type CancelSubscriptionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSubscriptionRequest) Reset() {
	*x = CancelSubscriptionRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSubscriptionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSubscriptionRequest) ProtoMessage() {}

func (x *CancelSubscriptionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSubscriptionRequest.ProtoReflect.Descriptor instead.
func (*CancelSubscriptionRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{8}
}

func (x *CancelSubscriptionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CancelSubscriptionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSubscriptionResponse) Reset() {
	*x = CancelSubscriptionResponse{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSubscriptionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSubscriptionResponse) ProtoMessage() {}

func (x *CancelSubscriptionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSubscriptionResponse.ProtoReflect.Descriptor instead.
func (*CancelSubscriptionResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{9}
}

type PullTicksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PullTicksRequest) Reset() {
	*x = PullTicksRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PullTicksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PullTicksRequest) ProtoMessage() {}

func (x *PullTicksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PullTicksRequest.ProtoReflect.Descriptor instead.
func (*PullTicksRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{10}
}

func (x *PullTicksRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type PullTicksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ticks         []*Tick                `protobuf:"bytes,1,rep,name=ticks,proto3" json:"ticks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PullTicksResponse) Reset() {
	*x = PullTicksResponse{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PullTicksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PullTicksResponse) ProtoMessage() {}

func (x *PullTicksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PullTicksResponse.ProtoReflect.Descriptor instead.
func (*PullTicksResponse) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{11}
}

func (x *PullTicksResponse) GetTicks() []*Tick {
	if x != nil {
		return x.Ticks
	}
	return nil
}

type StreamTicksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StreamTicksRequest) Reset() {
	*x = StreamTicksRequest{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamTicksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamTicksRequest) ProtoMessage() {}

func (x *StreamTicksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamTicksRequest.ProtoReflect.Descriptor instead.
func (*StreamTicksRequest) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{12}
}

func (x *StreamTicksRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type TickFrame struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Frame:
	//
	//	*TickFrame_Tick
	//	*TickFrame_KeepAlive
	Frame         isTickFrame_Frame `protobuf_oneof:"frame"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TickFrame) Reset() {
	*x = TickFrame{}
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TickFrame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TickFrame) ProtoMessage() {}

func (x *TickFrame) ProtoReflect() protoreflect.Message {
	mi := &file_tickgate_quotes_v1_quotes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TickFrame.ProtoReflect.Descriptor instead.
func (*TickFrame) Descriptor() ([]byte, []int) {
	return file_tickgate_quotes_v1_quotes_proto_rawDescGZIP(), []int{13}
}

func (x *TickFrame) GetFrame() isTickFrame_Frame {
	if x != nil {
		return x.Frame
	}
	return nil
}

func (x *TickFrame) GetTick() *Tick {
	if x != nil {
		if x, ok := x.Frame.(*TickFrame_Tick); ok {
			return x.Tick
		}
	}
	return nil
}

func (x *TickFrame) GetKeepAlive() *emptypb.Empty {
	if x != nil {
		if x, ok := x.Frame.(*TickFrame_KeepAlive); ok {
			return x.KeepAlive
		}
	}
	return nil
}

type isTickFrame_Frame interface {
	isTickFrame_Frame()
}

type TickFrame_Tick struct {
	Tick *Tick `protobuf:"bytes,1,opt,name=tick,proto3,oneof"`
}

type TickFrame_KeepAlive struct {
	KeepAlive *emptypb.Empty `protobuf:"bytes,2,opt,name=keep_alive,json=keepAlive,proto3,oneof"`
}

func (*TickFrame_Tick) isTickFrame_Frame() {}

func (*TickFrame_KeepAlive) isTickFrame_Frame() {}

var File_tickgate_quotes_v1_quotes_proto protoreflect.FileDescriptor

const file_tickgate_quotes_v1_quotes_proto_rawDesc = "" +
	"\n" +
	"\x1ftickgate/quotes/v1/quotes.proto\x12\x12tickgate.quotes.v1\x1a\x1cgoogle/api/annotations.proto\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xc2\x01\n" +
	"\x04Tick\x12\x16\n" +
	"\x06symbol\x18\x01 \x01(\tR\x06symbol\x12\x14\n" +
	"\x05price\x18\x02 \x01(\x01R\x05price\x12\x16\n" +
	"\x06volume\x18\x03 \x01(\x03R\x06volume\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\x01R\x06amount\x12\x10\n" +
	"\x03bid\x18\x05 \x01(\x01R\x03bid\x12\x10\n" +
	"\x03ask\x18\x06 \x01(\x01R\x03ask\x128\n" +
	"\ttimestamp\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\ttimestamp\"\xdd\x01\n" +
	"\fSubscription\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\asymbols\x18\x02 \x03(\tR\asymbols\x126\n" +
	"\x06adjust\x18\x03 \x01(\x0e2\x1e.tickgate.quotes.v1.AdjustTypeR\x06adjust\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12\x18\n" +
	"\adropped\x18\x06 \x01(\x04R\adropped\"m\n" +
	"\x19CreateSubscriptionRequest\x12\x18\n" +
	"\asymbols\x18\x01 \x03(\tR\asymbols\x126\n" +
	"\x06adjust\x18\x02 \x01(\x0e2\x1e.tickgate.quotes.v1.AdjustTypeR\x06adjust\"b\n" +
	"\x1aCreateSubscriptionResponse\x12D\n" +
	"\fsubscription\x18\x01 \x01(\v2 .tickgate.quotes.v1.SubscriptionR\fsubscription\"(\n" +
	"\x16GetSubscriptionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"_\n" +
	"\x17GetSubscriptionResponse\x12D\n" +
	"\fsubscription\x18\x01 \x01(\v2 .tickgate.quotes.v1.SubscriptionR\fsubscription\"\x1a\n" +
	"\x18ListSubscriptionsRequest\"c\n" +
	"\x19ListSubscriptionsResponse\x12F\n" +
	"\rsubscriptions\x18\x01 \x03(\v2 .tickgate.quotes.v1.SubscriptionR\rsubscriptions\"+\n" +
	"\x19CancelSubscriptionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x1c\n" +
	"\x1aCancelSubscriptionResponse\"\"\n" +
	"\x10PullTicksRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"C\n" +
	"\x11PullTicksResponse\x12.\n" +
	"\x05ticks\x18\x01 \x03(\v2\x18.tickgate.quotes.v1.TickR\x05ticks\"$\n" +
	"\x12StreamTicksRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"}\n" +
	"\tTickFrame\x12.\n" +
	"\x04tick\x18\x01 \x01(\v2\x18.tickgate.quotes.v1.TickH\x00R\x04tick\x127\n" +
	"\n" +
	"keep_alive\x18\x02 \x01(\v2\x16.google.protobuf.EmptyH\x00R\tkeepAliveB\a\n" +
	"\x05frame*l\n" +
	"\n" +
	"AdjustType\x12\x1b\n" +
	"\x17ADJUST_TYPE_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10ADJUST_TYPE_NONE\x10\x01\x12\x15\n" +
	"\x11ADJUST_TYPE_FRONT\x10\x02\x12\x14\n" +
	"\x10ADJUST_TYPE_BACK\x10\x032\xab\x06\n" +
	"\fQuoteService\x12\x91\x01\n" +
	"\x12CreateSubscription\x12-.tickgate.quotes.v1.CreateSubscriptionRequest\x1a..tickgate.quotes.v1.CreateSubscriptionResponse\"\x1c\x82\xd3\xe4\x93\x02\x16:\x01*\"\x11/v1/subscriptions\x12\x8a\x01\n" +
	"\x0fGetSubscription\x12*.tickgate.quotes.v1.GetSubscriptionRequest\x1a+.tickgate.quotes.v1.GetSubscriptionResponse\"\x1e\x82\xd3\xe4\x93\x02\x18\x12\x16/v1/subscriptions/{id}\x12\x8b\x01\n" +
	"\x11ListSubscriptions\x12,.tickgate.quotes.v1.ListSubscriptionsRequest\x1a-.tickgate.quotes.v1.ListSubscriptionsResponse\"\x19\x82\xd3\xe4\x93\x02\x13\x12\x11/v1/subscriptions\x12\x93\x01\n" +
	"\x12CancelSubscription\x12-.tickgate.quotes.v1.CancelSubscriptionRequest\x1a..tickgate.quotes.v1.CancelSubscriptionResponse\"\x1e\x82\xd3\xe4\x93\x02\x18*\x16/v1/subscriptions/{id}\x12~\n" +
	"\tPullTicks\x12$.tickgate.quotes.v1.PullTicksRequest\x1a%.tickgate.quotes.v1.PullTicksResponse\"$\x82\xd3\xe4\x93\x02\x1e\x12\x1c/v1/subscriptions/{id}/ticks\x12V\n" +
	"\vStreamTicks\x12&.tickgate.quotes.v1.StreamTicksRequest\x1a\x1d.tickgate.quotes.v1.TickFrame0\x01B-Z+TickGate/gen/go/tickgate/quotes/v1;quotesv1b\x06proto3"

var (
	file_tickgate_quotes_v1_quotes_proto_rawDescOnce sync.Once
	file_tickgate_quotes_v1_quotes_proto_rawDescData []byte
)

func file_tickgate_quotes_v1_quotes_proto_rawDescGZIP() []byte {
	file_tickgate_quotes_v1_quotes_proto_rawDescOnce.Do(func() {
		file_tickgate_quotes_v1_quotes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tickgate_quotes_v1_quotes_proto_rawDesc), len(file_tickgate_quotes_v1_quotes_proto_rawDesc)))
	})
	return file_tickgate_quotes_v1_quotes_proto_rawDescData
}

var file_tickgate_quotes_v1_quotes_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_tickgate_quotes_v1_quotes_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_tickgate_quotes_v1_quotes_proto_goTypes = []any{
	(AdjustType)(0),                    // 0: tickgate.quotes.v1.AdjustType
	(*Tick)(nil),                       // 1: tickgate.quotes.v1.Tick
	(*Subscription)(nil),               // 2: tickgate.quotes.v1.Subscription
	(*CreateSubscriptionRequest)(nil),  // 3: tickgate.quotes.v1.CreateSubscriptionRequest
	(*CreateSubscriptionResponse)(nil), // 4: tickgate.quotes.v1.CreateSubscriptionResponse
	(*GetSubscriptionRequest)(nil),     // 5: tickgate.quotes.v1.GetSubscriptionRequest
	(*GetSubscriptionResponse)(nil),    // 6: tickgate.quotes.v1.GetSubscriptionResponse
	(*ListSubscriptionsRequest)(nil),   // 7: tickgate.quotes.v1.ListSubscriptionsRequest
	(*ListSubscriptionsResponse)(nil),  // 8: tickgate.quotes.v1.ListSubscriptionsResponse
	(*CancelSubscriptionRequest)(nil),  // 9: tickgate.quotes.v1.CancelSubscriptionRequest
	(*CancelSubscriptionResponse)(nil), // 10: tickgate.quotes.v1.CancelSubscriptionResponse
	(*PullTicksRequest)(nil),           // 11: tickgate.quotes.v1.PullTicksRequest
	(*PullTicksResponse)(nil),          // 12: tickgate.quotes.v1.PullTicksResponse
	(*StreamTicksRequest)(nil),         // 13: tickgate.quotes.v1.StreamTicksRequest
	(*TickFrame)(nil),                  // 14: tickgate.quotes.v1.TickFrame
	(*timestamppb.Timestamp)(nil),      // 15: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),              // 16: google.protobuf.Empty
}
var file_tickgate_quotes_v1_quotes_proto_depIdxs = []int32{
	15, // 0: tickgate.quotes.v1.Tick.timestamp:type_name -> google.protobuf.Timestamp
	0,  // 1: tickgate.quotes.v1.Subscription.adjust:type_name -> tickgate.quotes.v1.AdjustType
	15, // 2: tickgate.quotes.v1.Subscription.created_at:type_name -> google.protobuf.Timestamp
	0,  // 3: tickgate.quotes.v1.CreateSubscriptionRequest.adjust:type_name -> tickgate.quotes.v1.AdjustType
	2,  // 4: tickgate.quotes.v1.CreateSubscriptionResponse.subscription:type_name -> tickgate.quotes.v1.Subscription
	2,  // 5: tickgate.quotes.v1.GetSubscriptionResponse.subscription:type_name -> tickgate.quotes.v1.Subscription
	2,  // 6: tickgate.quotes.v1.ListSubscriptionsResponse.subscriptions:type_name -> tickgate.quotes.v1.Subscription
	1,  // 7: tickgate.quotes.v1.PullTicksResponse.ticks:type_name -> tickgate.quotes.v1.Tick
	1,  // 8: tickgate.quotes.v1.TickFrame.tick:type_name -> tickgate.quotes.v1.Tick
	16, // 9: tickgate.quotes.v1.TickFrame.keep_alive:type_name -> google.protobuf.Empty
	3,  // 10: tickgate.quotes.v1.QuoteService.CreateSubscription:input_type -> tickgate.quotes.v1.CreateSubscriptionRequest
	5,  // 11: tickgate.quotes.v1.QuoteService.GetSubscription:input_type -> tickgate.quotes.v1.GetSubscriptionRequest
	7,  // 12: tickgate.quotes.v1.QuoteService.ListSubscriptions:input_type -> tickgate.quotes.v1.ListSubscriptionsRequest
	9,  // 13: tickgate.quotes.v1.QuoteService.CancelSubscription:input_type -> tickgate.quotes.v1.CancelSubscriptionRequest
	11, // 14: tickgate.quotes.v1.QuoteService.PullTicks:input_type -> tickgate.quotes.v1.PullTicksRequest
	13, // 15: tickgate.quotes.v1.QuoteService.StreamTicks:input_type -> tickgate.quotes.v1.StreamTicksRequest
	4,  // 16: tickgate.quotes.v1.QuoteService.CreateSubscription:output_type -> tickgate.quotes.v1.CreateSubscriptionResponse
	6,  // 17: tickgate.quotes.v1.QuoteService.GetSubscription:output_type -> tickgate.quotes.v1.GetSubscriptionResponse
	8,  // 18: tickgate.quotes.v1.QuoteService.ListSubscriptions:output_type -> tickgate.quotes.v1.ListSubscriptionsResponse
	10, // 19: tickgate.quotes.v1.QuoteService.CancelSubscription:output_type -> tickgate.quotes.v1.CancelSubscriptionResponse
	12, // 20: tickgate.quotes.v1.QuoteService.PullTicks:output_type -> tickgate.quotes.v1.PullTicksResponse
	14, // 21: tickgate.quotes.v1.QuoteService.StreamTicks:output_type -> tickgate.quotes.v1.TickFrame
	16, // [16:22] is the sub-list for method output_type
	10, // [10:16] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_tickgate_quotes_v1_quotes_proto_init() }
func file_tickgate_quotes_v1_quotes_proto_init() {
	if File_tickgate_quotes_v1_quotes_proto != nil {
		return
	}
	file_tickgate_quotes_v1_quotes_proto_msgTypes[13].OneofWrappers = []any{
		(*TickFrame_Tick)(nil),
		(*TickFrame_KeepAlive)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tickgate_quotes_v1_quotes_proto_rawDesc), len(file_tickgate_quotes_v1_quotes_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_tickgate_quotes_v1_quotes_proto_goTypes,
		DependencyIndexes: file_tickgate_quotes_v1_quotes_proto_depIdxs,
		EnumInfos:         file_tickgate_quotes_v1_quotes_proto_enumTypes,
		MessageInfos:      file_tickgate_quotes_v1_quotes_proto_msgTypes,
	}.Build()
	File_tickgate_quotes_v1_quotes_proto = out.File
	file_tickgate_quotes_v1_quotes_proto_goTypes = nil
	file_tickgate_quotes_v1_quotes_proto_depIdxs = nil
}
