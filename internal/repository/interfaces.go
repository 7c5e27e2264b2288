package repository

import (
	"context"
	"time"

	"card-trading/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository is the read side of the user directory
type UserRepository interface {
	// GetByID returns model.ErrUserNotFound when absent
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.User, error)

	// FindByIdentifier resolves a numeric id, username or email
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
}

// CardRepository reads catalog metadata
type CardRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*model.Card, error)
}

// UserCardRepository owns per-user card quantities
type UserCardRepository interface {
	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.UserCard, error)

	// FindByOwnerAndCard returns the owner's first record of cardID
	FindByOwnerAndCard(ctx context.Context, ownerID int64, cardID string, tx ...pgx.Tx) (*model.UserCard, error)

	// AddCopy merges one copy into the record matching (owner, card, condition, collection type)
	// or creates it with quantity 1. The merged record is no longer listed for trade.
	AddCopy(ctx context.Context, card *model.UserCard, tx pgx.Tx) (*model.UserCard, error)

	// RemoveCopy takes one copy away, deleting the record when it held the last one
	RemoveCopy(ctx context.Context, id int64, tx pgx.Tx) (deleted bool, err error)
}

// TradeRequestRepository persists trade requests
type TradeRequestRepository interface {
	// Create inserts a pending request; a pending duplicate yields model.ErrTradeAlreadyExists
	Create(ctx context.Context, req *model.TradeRequest, tx ...pgx.Tx) error

	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.TradeRequest, error)

	// ExistsPendingBetween checks both directions of the user pair
	ExistsPendingBetween(ctx context.Context, userA, userB int64, d model.Discriminator) (bool, error)

	ListReceived(ctx context.Context, userID int64) ([]*model.TradeRequestView, error)
	ListSent(ctx context.Context, userID int64) ([]*model.TradeRequestView, error)

	// TransitionFromPending moves a request out of pending if it is still pending
	TransitionFromPending(ctx context.Context, id int64, to model.RequestStatus, finishedAt *time.Time, tx pgx.Tx) (bool, error)

	// LinkTrade sets trade_id if it is not already set
	LinkTrade(ctx context.Context, id, tradeID int64, tx pgx.Tx) (bool, error)

	Delete(ctx context.Context, id int64, tx pgx.Tx) error

	// ListStaleAccepted returns accepted requests without a trade that were last touched before olderThan
	ListStaleAccepted(ctx context.Context, olderThan time.Time, limit int) ([]*model.TradeRequest, error)

	// LockForReconcile locks an accepted, unlinked request, skipping rows another worker holds
	LockForReconcile(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// CancelUnlinked closes an accepted request that never produced a trade
	CancelUnlinked(ctx context.Context, id int64, finishedAt time.Time, tx pgx.Tx) (bool, error)
}

// TradeRepository persists trades
type TradeRepository interface {
	// Create inserts the trade; a room code collision yields model.ErrRoomCodeTaken
	Create(ctx context.Context, trade *model.Trade, tx ...pgx.Tx) error

	GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Trade, error)
	GetByRoomCode(ctx context.Context, code string) (*model.Trade, error)
	GetByRequestID(ctx context.Context, requestID int64, tx ...pgx.Tx) (*model.Trade, error)

	List(ctx context.Context, filter model.TradeFilter, limit, offset int) ([]*model.Trade, int64, error)

	// RecordAcceptance writes the role's card slot and flag if the trade is pending
	// and the role has not accepted yet. Returns the updated trade, or nil when not applied.
	RecordAcceptance(ctx context.Context, id int64, role model.Role, userCardID int64, tx pgx.Tx) (*model.Trade, error)

	// CompleteIfAccepted marks a pending, fully accepted trade completed
	CompleteIfAccepted(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// TransitionFromPending moves a trade out of pending if it is still pending
	TransitionFromPending(ctx context.Context, id int64, to model.TradeStatus, tx pgx.Tx) (bool, error)

	// UpdateFields applies the completedAt and messages parts of a patch
	UpdateFields(ctx context.Context, id int64, patch *model.TradePatch, tx pgx.Tx) error

	Delete(ctx context.Context, id int64, tx ...pgx.Tx) error
}

// NotificationRepository stores notification records
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
}

// RoomInvitationRepository tracks who was invited into a trade room
type RoomInvitationRepository interface {
	Create(ctx context.Context, inv *model.RoomInvitation, tx ...pgx.Tx) error
	UpdateStateForRoom(ctx context.Context, roomCode string, state model.InvitationState, tx pgx.Tx) (int64, error)
}
