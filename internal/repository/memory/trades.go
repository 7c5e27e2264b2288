package memory

import (
	"context"
	"slices"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

var _ repository.TradeRepository = (*TradeRepository)(nil)

type TradeRepository struct{ *state }

func cloneTrade(t *model.Trade) *model.Trade {
	cp := *t
	cp.InitiatorCards = slices.Clone(t.InitiatorCards)
	cp.ReceiverCards = slices.Clone(t.ReceiverCards)
	cp.Messages = slices.Clone(t.Messages)
	cp.Normalize()
	return &cp
}

func (r *TradeRepository) Create(ctx context.Context, trade *model.Trade, tx ...pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.trades {
		if existing.RoomCode == trade.RoomCode {
			return model.ErrRoomCodeTaken
		}
	}

	trade.Normalize()
	now := r.now()
	trade.ID = r.nextID()
	trade.CreatedAt = now
	trade.UpdatedAt = now
	remember(txOf(tx), r.trades, trade.ID)
	r.trades[trade.ID] = cloneTrade(trade)
	return nil
}

func (r *TradeRepository) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trades[id]
	if !ok {
		return nil, model.ErrTradeNotFound
	}
	return cloneTrade(t), nil
}

func (r *TradeRepository) GetByRoomCode(ctx context.Context, code string) (*model.Trade, error) {
	return r.find(func(t *model.Trade) bool { return t.RoomCode == code })
}

func (r *TradeRepository) GetByRequestID(ctx context.Context, requestID int64, tx ...pgx.Tx) (*model.Trade, error) {
	return r.find(func(t *model.Trade) bool { return t.RequestID != nil && *t.RequestID == requestID })
}

func (r *TradeRepository) find(match func(*model.Trade) bool) (*model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *model.Trade
	for _, t := range r.trades {
		if match(t) && (found == nil || t.ID < found.ID) {
			found = t
		}
	}
	if found == nil {
		return nil, model.ErrTradeNotFound
	}
	return cloneTrade(found), nil
}

func (r *TradeRepository) List(ctx context.Context, filter model.TradeFilter, limit, offset int) ([]*model.Trade, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*model.Trade
	for _, t := range r.trades {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.TradeType != nil && t.TradeType != *filter.TradeType {
			continue
		}
		matched = append(matched, t)
	}
	slices.SortFunc(matched, func(a, b *model.Trade) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})

	total := int64(len(matched))
	page := []*model.Trade{}
	for i := offset; i < len(matched) && i < offset+limit; i++ {
		page = append(page, cloneTrade(matched[i]))
	}
	return page, total, nil
}

func (r *TradeRepository) RecordAcceptance(ctx context.Context, id int64, role model.Role, userCardID int64, tx pgx.Tx) (*model.Trade, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trades[id]
	if !ok || t.Status != model.TradePending || t.Accepted(role) {
		return nil, nil
	}
	remember(tx, r.trades, id)

	slot := model.TradeCard{UserCardID: userCardID}
	if role == model.RoleInitiator {
		t.InitiatorCards = setFirst(t.InitiatorCards, slot)
		t.InitiatorAccepted = true
	} else {
		t.ReceiverCards = setFirst(t.ReceiverCards, slot)
		t.ReceiverAccepted = true
	}
	t.UpdatedAt = r.now()
	return cloneTrade(t), nil
}

func setFirst(cards []model.TradeCard, card model.TradeCard) []model.TradeCard {
	out := slices.Clone(cards)
	if len(out) == 0 {
		return append(out, card)
	}
	out[0] = card
	return out
}

func (r *TradeRepository) CompleteIfAccepted(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trades[id]
	if !ok || t.Status != model.TradePending || !t.BothAccepted() {
		return false, nil
	}
	remember(tx, r.trades, id)
	now := r.now()
	t.Status = model.TradeCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
	return true, nil
}

func (r *TradeRepository) TransitionFromPending(ctx context.Context, id int64, to model.TradeStatus, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trades[id]
	if !ok || t.Status != model.TradePending {
		return false, nil
	}
	remember(tx, r.trades, id)
	t.Status = to
	t.UpdatedAt = r.now()
	return true, nil
}

func (r *TradeRepository) UpdateFields(ctx context.Context, id int64, patch *model.TradePatch, tx pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trades[id]
	if !ok {
		return model.ErrTradeNotFound
	}
	remember(tx, r.trades, id)
	if patch.CompletedAt != nil {
		at := *patch.CompletedAt
		t.CompletedAt = &at
	}
	if patch.Messages != nil {
		t.Messages = slices.Clone(*patch.Messages)
	}
	t.Normalize()
	t.UpdatedAt = r.now()
	return nil
}

func (r *TradeRepository) Delete(ctx context.Context, id int64, tx ...pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trades[id]; !ok {
		return model.ErrTradeNotFound
	}
	remember(txOf(tx), r.trades, id)
	delete(r.trades, id)
	for reqID, req := range r.requests {
		if req.TradeID != nil && *req.TradeID == id {
			remember(txOf(tx), r.requests, reqID)
			req.TradeID = nil
		}
	}
	return nil
}
