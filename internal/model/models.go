package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Card is a catalog entry, keyed by the external card database id.
type Card struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"pokemonCardId"`
	Name       string `json:"name"`
	ImageSmall string `json:"imageSmall,omitempty"`
	ImageLarge string `json:"imageLarge,omitempty"`
}

// Image prefers the large variant.
func (c *Card) Image() string {
	if c.ImageLarge != "" {
		return c.ImageLarge
	}
	return c.ImageSmall
}

// UserCard is one ownership record. Records with the same owner, card,
// condition and collection type are merged; a record never sits at quantity 0.
type UserCard struct {
	ID             int64          `json:"id"`
	OwnerID        int64          `json:"ownerId"`
	CardID         string         `json:"pokemonCardId"`
	Name           string         `json:"name,omitempty"`
	Image          string         `json:"image,omitempty"`
	Quantity       int            `json:"quantity"`
	CollectionType CollectionType `json:"collectionType"`
	Condition      string         `json:"condition"`
	ForTrade       bool           `json:"forTrade"`
	IsPublic       bool           `json:"isPublic"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type OfferedCard struct {
	CardID string `json:"pokemonCardId"`
	Name   string `json:"name,omitempty"`
	Image  string `json:"image,omitempty"`
}

type TradeRequest struct {
	ID                int64               `json:"id"`
	FromUserID        int64               `json:"from"`
	ToUserID          int64               `json:"to"`
	CardID            *string             `json:"pokemonCardId"`
	CardName          string              `json:"cardName"`
	CardImage         string              `json:"cardImage"`
	Note              string              `json:"note,omitempty"`
	Status            RequestStatus       `json:"status"`
	IsManual          bool                `json:"isManual"`
	OfferedCard       *OfferedCard        `json:"offeredCard,omitempty"`
	OfferedPrice      decimal.NullDecimal `json:"offeredPrice"`
	TargetPrice       decimal.NullDecimal `json:"targetPrice"`
	OfferedUserCardID *int64              `json:"offeredUserCardId,omitempty"`
	TargetUserCardID  *int64              `json:"targetUserCardId,omitempty"`
	TradeID           *int64              `json:"tradeId,omitempty"`
	GuardKey          string              `json:"-"`
	FinishedAt        *time.Time          `json:"finishedAt"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// IsQuick reports whether the request names both cards and settles on accept.
func (r *TradeRequest) IsQuick() bool {
	return !r.IsManual && r.OfferedCard != nil && r.OfferedCard.CardID != ""
}

// TradeRequestView is a request with the counterpart user and room code projected in.
type TradeRequestView struct {
	TradeRequest
	Counterpart *User   `json:"counterpart,omitempty"`
	RoomCode    *string `json:"roomCode,omitempty"`
}

type TradeCard struct {
	UserCardID int64 `json:"userCardId"`
}

type TradeMessage struct {
	UserID int64     `json:"userId"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type Trade struct {
	ID                int64          `json:"id"`
	InitiatorUserID   int64          `json:"initiatorUserId"`
	ReceiverUserID    int64          `json:"receiverUserId"`
	InitiatorCards    []TradeCard    `json:"initiatorCards"`
	ReceiverCards     []TradeCard    `json:"receiverCards"`
	TradeType         TradeType      `json:"tradeType"`
	RoomCode          string         `json:"privateRoomCode"`
	Status            TradeStatus    `json:"status"`
	Origin            TradeOrigin    `json:"origin"`
	RequestID         *int64         `json:"requestId"`
	RequestedCardID   *string        `json:"requestedCardId"`
	InitiatorAccepted bool           `json:"initiatorAccepted"`
	ReceiverAccepted  bool           `json:"receiverAccepted"`
	Messages          []TradeMessage `json:"messages"`
	CompletedAt       *time.Time     `json:"completedAt,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// RoleOf returns the role userID plays in the trade.
func (t *Trade) RoleOf(userID int64) (Role, bool) {
	switch userID {
	case t.InitiatorUserID:
		return RoleInitiator, true
	case t.ReceiverUserID:
		return RoleReceiver, true
	default:
		return "", false
	}
}

// Normalize fills slices left nil by partial or legacy records.
func (t *Trade) Normalize() {
	if t.InitiatorCards == nil {
		t.InitiatorCards = []TradeCard{}
	}
	if t.ReceiverCards == nil {
		t.ReceiverCards = []TradeCard{}
	}
	if t.Messages == nil {
		t.Messages = []TradeMessage{}
	}
}

// Accepted returns the acceptance flag for role.
func (t *Trade) Accepted(role Role) bool {
	if role == RoleInitiator {
		return t.InitiatorAccepted
	}
	return t.ReceiverAccepted
}

// Cards returns the committed cards for role.
func (t *Trade) Cards(role Role) []TradeCard {
	if role == RoleInitiator {
		return t.InitiatorCards
	}
	return t.ReceiverCards
}

// BothAccepted reports whether settlement may run.
func (t *Trade) BothAccepted() bool {
	return t.InitiatorAccepted && t.ReceiverAccepted
}

// Opposite returns the other side of the trade.
func (r Role) Opposite() Role {
	if r == RoleInitiator {
		return RoleReceiver
	}
	return RoleInitiator
}

type Notification struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"isRead"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NotificationDraft is what callers hand to the emitter.
type NotificationDraft struct {
	Event   string
	Title   string
	Message string
	Data    map[string]any
}

type RoomInvitation struct {
	ID        int64           `json:"id"`
	RoomCode  string          `json:"roomCode"`
	UserID    int64           `json:"userId"`
	State     InvitationState `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TradeFilter struct {
	Status    *TradeStatus
	TradeType *TradeType
}

// Page is an offset page of items.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type ErrorResponse struct {
	Error   string         `json:"error" example:"trade no longer pending"`
	Code    string         `json:"code,omitempty" example:"VALIDATION_ERROR"`
	Details map[string]any `json:"details,omitempty"`
}
