package model

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
	RequestCompleted RequestStatus = "completed"
)

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestRejected || s == RequestCancelled || s == RequestCompleted
}

func (s RequestStatus) String() string {
	return string(s)
}

type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeAccepted  TradeStatus = "accepted"
	TradeRejected  TradeStatus = "rejected"
	TradeCancelled TradeStatus = "cancelled"
	TradeCompleted TradeStatus = "completed"
)

func ParseTradeStatus(s string) (TradeStatus, error) {
	switch s {
	case string(TradePending):
		return TradePending, nil
	case string(TradeAccepted):
		return TradeAccepted, nil
	case string(TradeRejected):
		return TradeRejected, nil
	case string(TradeCancelled):
		return TradeCancelled, nil
	case string(TradeCompleted):
		return TradeCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s TradeStatus) String() string {
	return string(s)
}

type TradeType string

const (
	TradeTypePrivate TradeType = "private"
	TradeTypePublic  TradeType = "public"
)

// ParseTradeType defaults to private when s is empty.
func ParseTradeType(s string) (TradeType, error) {
	switch s {
	case "", string(TradeTypePrivate):
		return TradeTypePrivate, nil
	case string(TradeTypePublic):
		return TradeTypePublic, nil
	default:
		return "", ErrInvalidTradeType
	}
}

type TradeOrigin string

const (
	OriginRequest      TradeOrigin = "request"
	OriginQuickRequest TradeOrigin = "quick-request"
	OriginDirect       TradeOrigin = "direct"
)

// ParseTradeOrigin defaults to request when s is empty.
func ParseTradeOrigin(s string) (TradeOrigin, error) {
	switch s {
	case "", string(OriginRequest):
		return OriginRequest, nil
	case string(OriginQuickRequest):
		return OriginQuickRequest, nil
	case string(OriginDirect):
		return OriginDirect, nil
	default:
		return "", ErrInvalidOrigin
	}
}

type CollectionType string

const (
	CollectionOwned    CollectionType = "collection"
	CollectionWishlist CollectionType = "wishlist"
)

type Role string

const (
	RoleInitiator Role = "initiator"
	RoleReceiver  Role = "receiver"
)

type InvitationState string

const (
	InvitationOpen   InvitationState = "open"
	InvitationClosed InvitationState = "closed"
)

const (
	DefaultCondition        = "Near Mint"
	ManualRequestCardName   = "private trade room"
	DefaultOfferedCardName  = "Carta ofrecida"
	DefaultCollectionType   = CollectionOwned
	MsgWaitingOtherUser     = "WAITING_OTHER_USER"
	MsgTradeCompleted       = "TRADE_COMPLETED"
	MsgQuickTradeCompleted  = "QUICK_TRADE_COMPLETED"
	MsgTradeCreated         = "TRADE_CREATED"
	MsgTradeRequestAccepted = "TRADE_REQUEST_ACCEPTED"
	MsgTradeRoomOpened      = "TRADE_ROOM_OPENED"
)

// Realtime event names.
const (
	EventTradeRequestCreated   = "tradeRequestCreated"
	EventTradeRequestRejected  = "tradeRequestRejected"
	EventTradeRequestCancelled = "tradeRequestCancelled"
	EventTradeRequestAccepted  = "tradeRequestAccepted"
	EventTradeRoomOpened       = "tradeRoomOpened"
	EventTradeInvitation       = "tradeInvitation"
	EventTradeAccepted         = "tradeAccepted"
	EventTradeCompleted        = "tradeCompleted"
	EventTradeRejected         = "tradeRejected"
	EventTradeUpdated          = "tradeUpdated"
)
