package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const maxRoomCodeAttempts = 5

// Repositories groups the stores the trade services work against
type Repositories struct {
	DB            repository.DBManager
	Users         repository.UserRepository
	Cards         repository.CardRepository
	UserCards     repository.UserCardRepository
	TradeRequests repository.TradeRequestRepository
	Trades        repository.TradeRepository
	Invitations   repository.RoomInvitationRepository
}

// RoomCodeGenerator returns a generator of upper-case codes of the given length
func RoomCodeGenerator(length int) func() string {
	if length <= 0 || length > 32 {
		length = 8
	}
	return func() string {
		return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:length]
	}
}

// createTrade assigns a fresh room code and inserts the trade, retrying on collisions
func createTrade(ctx context.Context, trades repository.TradeRepository, trade *model.Trade, newCode func() string, tx pgx.Tx) error {
	for attempt := 0; attempt < maxRoomCodeAttempts; attempt++ {
		trade.RoomCode = newCode()
		err := trades.Create(ctx, trade, tx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, model.ErrRoomCodeTaken) {
			return fmt.Errorf("create trade: %w", err)
		}
	}
	return fmt.Errorf("create trade: %w after %d attempts", model.ErrRoomCodeTaken, maxRoomCodeAttempts)
}

// ownedCard loads a user card and checks it belongs to ownerID
func ownedCard(ctx context.Context, userCards repository.UserCardRepository, id, ownerID int64, tx ...pgx.Tx) (*model.UserCard, error) {
	uc, err := userCards.GetByID(ctx, id, tx...)
	if err != nil {
		return nil, err
	}
	if uc.OwnerID != ownerID {
		return nil, model.ErrUserCardNotOwned
	}
	return uc, nil
}
