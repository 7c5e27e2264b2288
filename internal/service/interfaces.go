package service

import (
	"context"

	"card-trading/internal/model"

	"github.com/jackc/pgx/v5"
)

// TradeRequestService drives a trade request from proposal to room or settlement
type TradeRequestService interface {
	Create(ctx context.Context, callerID int64, in *model.CreateTradeRequestInput) (*model.TradeRequest, error)
	ListReceived(ctx context.Context, callerID, userID int64) ([]*model.TradeRequestView, error)
	ListSent(ctx context.Context, callerID, userID int64) ([]*model.TradeRequestView, error)
	Reject(ctx context.Context, requestID, callerID int64) (*model.TradeRequest, error)
	Cancel(ctx context.Context, requestID, callerID int64) (*model.TradeRequest, error)

	// OpenRoom promotes the request into a private trade room
	OpenRoom(ctx context.Context, requestID, callerID int64) (*model.AcceptResult, error)

	// Accept opens a room for plain requests and settles quick requests immediately
	Accept(ctx context.Context, requestID, callerID int64) (*model.AcceptResult, error)
}

// TradeService manages trade rooms and the two-sided completion protocol
type TradeService interface {
	Create(ctx context.Context, callerID int64, in *model.CreateTradeInput) (*model.CreateTradeResult, error)
	Get(ctx context.Context, id int64) (*model.Trade, error)
	GetByRoomCode(ctx context.Context, code string) (*model.Trade, error)
	List(ctx context.Context, filter model.TradeFilter, page, limit int) (*model.Page[*model.Trade], error)
	Update(ctx context.Context, id, callerID int64, patch *model.TradePatch) (*model.Trade, error)
	Delete(ctx context.Context, id, callerID int64) error
	Complete(ctx context.Context, id, callerID int64, in model.CompleteTradeInput) (*model.CompleteTradeResult, error)
}

// InventoryService moves card copies between users
type InventoryService interface {
	// TransferOneCopy moves a single copy of source to toUserID and returns the credited record
	TransferOneCopy(ctx context.Context, source *model.UserCard, toUserID int64, tx pgx.Tx) (*model.UserCard, error)
}

// ReconciliationService repairs requests left half-promoted by an interrupted accept
type ReconciliationService interface {
	ReconcileAcceptedRequests(ctx context.Context) (int, error)
}

// NotificationService exposes a user's stored notifications
type NotificationService interface {
	List(ctx context.Context, callerID int64, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id, callerID int64) error
}

// Notifier is the non-critical side channel. Implementations never fail or block the caller.
type Notifier interface {
	Emit(ctx context.Context, userID int64, draft model.NotificationDraft)
	EmitRoom(ctx context.Context, roomCode, event string, data map[string]any)
}
