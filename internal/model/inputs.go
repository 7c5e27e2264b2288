package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateTradeRequestInput is the raw create payload. Services never consume it
// directly; Classify turns it into one of the RequestVariant types.
type CreateTradeRequestInput struct {
	ReceiverIdentifier string           `json:"receiverIdentifier" example:"ash"`
	CardID             string           `json:"pokemonCardId" example:"base1-4"`
	CardName           string           `json:"cardName" example:"Charizard"`
	CardImage          string           `json:"cardImage"`
	Note               string           `json:"note"`
	IsManual           bool             `json:"isManual"`
	OfferedCard        *OfferedCard     `json:"offeredCard"`
	OfferedPrice       *decimal.Decimal `json:"offeredPrice" swaggertype:"number"`
	TargetPrice        *decimal.Decimal `json:"targetPrice" swaggertype:"number"`
	OfferedUserCardID  *int64           `json:"offeredUserCardId"`
	TargetUserCardID   *int64           `json:"targetUserCardId"`
}

// Discriminator scopes the duplicate guard.
type Discriminator struct {
	Manual        bool
	CardID        string
	OfferedCardID string
}

// Key is the persisted form used by the pending-request unique index.
func (d Discriminator) Key() string {
	switch {
	case d.Manual:
		return "manual"
	case d.OfferedCardID != "":
		return "card:" + d.CardID + "|offer:" + d.OfferedCardID
	default:
		return "card:" + d.CardID
	}
}

// RequestVariant is one of ManualRequestInput, CardRequestInput or QuickRequestInput.
type RequestVariant interface {
	Receiver() string
	Discriminator() Discriminator
	isRequestVariant()
}

type ManualRequestInput struct {
	ReceiverIdentifier string
	Note               string
}

type CardRequestInput struct {
	ReceiverIdentifier string
	CardID             string
	CardName           string
	CardImage          string
	Note               string
}

type QuickRequestInput struct {
	CardRequestInput
	Offered           OfferedCard
	OfferedPrice      decimal.NullDecimal
	TargetPrice       decimal.NullDecimal
	OfferedUserCardID *int64
	TargetUserCardID  *int64
}

func (m ManualRequestInput) Receiver() string { return m.ReceiverIdentifier }
func (c CardRequestInput) Receiver() string   { return c.ReceiverIdentifier }

func (ManualRequestInput) Discriminator() Discriminator {
	return Discriminator{Manual: true}
}

func (c CardRequestInput) Discriminator() Discriminator {
	return Discriminator{CardID: c.CardID}
}

func (q QuickRequestInput) Discriminator() Discriminator {
	return Discriminator{CardID: q.CardID, OfferedCardID: q.Offered.CardID}
}

func (ManualRequestInput) isRequestVariant() {}
func (CardRequestInput) isRequestVariant()   {}
func (QuickRequestInput) isRequestVariant()  {}

// Classify validates the payload and picks its variant.
func (in *CreateTradeRequestInput) Classify() (RequestVariant, error) {
	receiver := strings.TrimSpace(in.ReceiverIdentifier)
	if receiver == "" {
		return nil, ErrReceiverRequired
	}
	if in.IsManual {
		return ManualRequestInput{ReceiverIdentifier: receiver, Note: in.Note}, nil
	}

	cardID := strings.TrimSpace(in.CardID)
	if cardID == "" {
		return nil, ErrCardRequired
	}
	card := CardRequestInput{
		ReceiverIdentifier: receiver,
		CardID:             cardID,
		CardName:           in.CardName,
		CardImage:          in.CardImage,
		Note:               in.Note,
	}
	if in.OfferedCard == nil || strings.TrimSpace(in.OfferedCard.CardID) == "" {
		return card, nil
	}

	quick := QuickRequestInput{
		CardRequestInput:  card,
		Offered:           *in.OfferedCard,
		OfferedUserCardID: in.OfferedUserCardID,
		TargetUserCardID:  in.TargetUserCardID,
	}
	quick.Offered.CardID = strings.TrimSpace(quick.Offered.CardID)
	if in.OfferedPrice != nil {
		if in.OfferedPrice.IsNegative() {
			return nil, ErrInvalidPrice
		}
		quick.OfferedPrice = decimal.NewNullDecimal(*in.OfferedPrice)
	}
	if in.TargetPrice != nil {
		if in.TargetPrice.IsNegative() {
			return nil, ErrInvalidPrice
		}
		quick.TargetPrice = decimal.NewNullDecimal(*in.TargetPrice)
	}
	return quick, nil
}

// AcceptResult is returned when a request is promoted into a room or settled on the spot.
type AcceptResult struct {
	Message  string        `json:"message"`
	Request  *TradeRequest `json:"request"`
	TradeID  int64         `json:"tradeId"`
	RoomCode string        `json:"roomCode,omitempty"`
}

type CreateTradeInput struct {
	ReceiverIdentifier string      `json:"receiverIdentifier"`
	TradeType          string      `json:"tradeType" enums:"private,public"`
	Origin             string      `json:"origin" enums:"request,quick-request,direct"`
	RequestID          *int64      `json:"requestId"`
	RequestedCardID    *string     `json:"requestedCardId"`
	InitiatorCards     []TradeCard `json:"initiatorCards"`
	ReceiverCards      []TradeCard `json:"receiverCards"`
}

type CreateTradeResult struct {
	Message  string `json:"message" example:"TRADE_CREATED"`
	TradeID  int64  `json:"tradeId"`
	RoomCode string `json:"roomCode"`
}

type CompleteTradeInput struct {
	MyUserCardID       int64 `json:"myUserCardId"`
	OpponentUserCardID int64 `json:"opponentUserCardId"`
}

type CompleteTradeResult struct {
	Message           string      `json:"message" example:"WAITING_OTHER_USER"`
	TradeID           int64       `json:"tradeId"`
	Status            TradeStatus `json:"status"`
	InitiatorAccepted bool        `json:"initiatorAccepted"`
	ReceiverAccepted  bool        `json:"receiverAccepted"`
}

// TradePatch holds the only fields a trade update may touch.
type TradePatch struct {
	Status      *TradeStatus
	CompletedAt *time.Time
	Messages    *[]TradeMessage
}

// IsEmpty reports whether the patch changes nothing.
func (p *TradePatch) IsEmpty() bool {
	return p.Status == nil && p.CompletedAt == nil && p.Messages == nil
}

// ParseTradePatch decodes a raw JSON object, rejecting any key outside the allow-list.
func ParseTradePatch(raw map[string]json.RawMessage) (*TradePatch, error) {
	patch := &TradePatch{}
	for key, value := range raw {
		switch key {
		case "status":
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, ErrInvalidStatus
			}
			status, err := ParseTradeStatus(s)
			if err != nil {
				return nil, err
			}
			patch.Status = &status
		case "completedAt":
			var at time.Time
			if err := json.Unmarshal(value, &at); err != nil {
				return nil, fmt.Errorf("%w: completedAt: %v", ErrUpdateNotPermitted, err)
			}
			patch.CompletedAt = &at
		case "messages":
			var messages []TradeMessage
			if err := json.Unmarshal(value, &messages); err != nil {
				return nil, fmt.Errorf("%w: messages: %v", ErrUpdateNotPermitted, err)
			}
			patch.Messages = &messages
		default:
			return nil, fmt.Errorf("%w: %s", ErrUpdateNotPermitted, key)
		}
	}
	return patch, nil
}
