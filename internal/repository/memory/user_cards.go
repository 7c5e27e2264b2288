package memory

import (
	"context"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

var _ repository.UserCardRepository = (*UserCardRepository)(nil)

type UserCardRepository struct{ *state }

func (r *UserCardRepository) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.UserCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	uc, ok := r.userCards[id]
	if !ok {
		return nil, model.ErrUserCardNotFound
	}
	cp := *uc
	return &cp, nil
}

func (r *UserCardRepository) FindByOwnerAndCard(ctx context.Context, ownerID int64, cardID string, tx ...pgx.Tx) (*model.UserCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var best *model.UserCard
	for _, uc := range r.userCards {
		if uc.OwnerID != ownerID || uc.CardID != cardID || uc.Quantity <= 0 {
			continue
		}
		if best == nil || betterMatch(uc, best) {
			best = uc
		}
	}
	if best == nil {
		return nil, model.ErrUserCardNotFound
	}
	cp := *best
	return &cp, nil
}

// betterMatch prefers collection records, then the lowest id.
func betterMatch(a, b *model.UserCard) bool {
	aOwned := a.CollectionType == model.CollectionOwned
	bOwned := b.CollectionType == model.CollectionOwned
	if aOwned != bOwned {
		return aOwned
	}
	return a.ID < b.ID
}

func (r *UserCardRepository) AddCopy(ctx context.Context, card *model.UserCard, tx pgx.Tx) (*model.UserCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	condition := card.Condition
	if condition == "" {
		condition = model.DefaultCondition
	}
	collection := card.CollectionType
	if collection == "" {
		collection = model.DefaultCollectionType
	}
	now := r.now()

	for _, uc := range r.userCards {
		if uc.OwnerID == card.OwnerID && uc.CardID == card.CardID &&
			uc.Condition == condition && uc.CollectionType == collection {
			remember(tx, r.userCards, uc.ID)
			uc.Quantity++
			uc.ForTrade = false
			uc.UpdatedAt = now
			cp := *uc
			return &cp, nil
		}
	}

	uc := &model.UserCard{
		ID:             r.nextID(),
		OwnerID:        card.OwnerID,
		CardID:         card.CardID,
		Name:           card.Name,
		Image:          card.Image,
		Quantity:       1,
		CollectionType: collection,
		Condition:      condition,
		IsPublic:       card.IsPublic,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	remember(tx, r.userCards, uc.ID)
	r.userCards[uc.ID] = uc
	cp := *uc
	return &cp, nil
}

func (r *UserCardRepository) RemoveCopy(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	uc, ok := r.userCards[id]
	if !ok {
		return false, model.ErrUserCardNotFound
	}
	remember(tx, r.userCards, id)
	if uc.Quantity > 1 {
		uc.Quantity--
		uc.ForTrade = false
		uc.UpdatedAt = r.now()
		return false, nil
	}
	delete(r.userCards, id)
	return true, nil
}
