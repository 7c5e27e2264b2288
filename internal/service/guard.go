package service

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"
)

// DuplicateGuard rejects a new request while an equivalent one is pending in
// either direction between the same two users.
type DuplicateGuard struct {
	requests repository.TradeRequestRepository
}

func NewDuplicateGuard(requests repository.TradeRequestRepository) *DuplicateGuard {
	return &DuplicateGuard{requests: requests}
}

func (g *DuplicateGuard) Check(ctx context.Context, userA, userB int64, d model.Discriminator) error {
	exists, err := g.requests.ExistsPendingBetween(ctx, userA, userB, d)
	if err != nil {
		return fmt.Errorf("check pending requests: %w", err)
	}
	if exists {
		return model.ErrTradeAlreadyExists
	}
	return nil
}
