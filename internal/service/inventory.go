package service

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type InventoryServiceImpl struct {
	userCardRepo repository.UserCardRepository
	logger       zerolog.Logger
}

func NewInventoryService(userCardRepo repository.UserCardRepository, logger zerolog.Logger) InventoryService {
	return &InventoryServiceImpl{
		userCardRepo: userCardRepo,
		logger:       logger,
	}
}

// TransferOneCopy debits the source first, so a record emptied concurrently fails
// the transfer instead of crediting a copy that no longer exists.
func (s *InventoryServiceImpl) TransferOneCopy(ctx context.Context, source *model.UserCard, toUserID int64, tx pgx.Tx) (*model.UserCard, error) {
	deleted, err := s.userCardRepo.RemoveCopy(ctx, source.ID, tx)
	if err != nil {
		return nil, fmt.Errorf("debit user card %d: %w", source.ID, err)
	}

	credited, err := s.userCardRepo.AddCopy(ctx, &model.UserCard{
		OwnerID:        toUserID,
		CardID:         source.CardID,
		Name:           source.Name,
		Image:          source.Image,
		Condition:      source.Condition,
		CollectionType: source.CollectionType,
		IsPublic:       source.IsPublic,
	}, tx)
	if err != nil {
		return nil, fmt.Errorf("credit card %s to user %d: %w", source.CardID, toUserID, err)
	}

	s.logger.Debug().
		Int64("user_card_id", source.ID).
		Int64("from_user_id", source.OwnerID).
		Int64("to_user_id", toUserID).
		Str("card_id", source.CardID).
		Bool("source_deleted", deleted).
		Int("target_quantity", credited.Quantity).
		Msg("card copy transferred")

	return credited, nil
}

// swapCards moves a to b's owner and b to a's owner
func swapCards(ctx context.Context, inventory InventoryService, a, b *model.UserCard, tx pgx.Tx) error {
	if _, err := inventory.TransferOneCopy(ctx, a, b.OwnerID, tx); err != nil {
		return err
	}
	if _, err := inventory.TransferOneCopy(ctx, b, a.OwnerID, tx); err != nil {
		return err
	}
	return nil
}
