package memory

import (
	"context"
	"slices"
	"time"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

var _ repository.TradeRequestRepository = (*TradeRequestRepository)(nil)

type TradeRequestRepository struct{ *state }

func (r *TradeRequestRepository) Create(ctx context.Context, req *model.TradeRequest, tx ...pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.Status == model.RequestPending {
		pair := unorderedPair(req.FromUserID, req.ToUserID)
		for _, existing := range r.requests {
			if existing.Status == model.RequestPending && existing.GuardKey == req.GuardKey &&
				unorderedPair(existing.FromUserID, existing.ToUserID) == pair {
				return model.ErrTradeAlreadyExists
			}
		}
	}

	now := r.now()
	req.ID = r.nextID()
	req.CreatedAt = now
	req.UpdatedAt = now
	stored := *req
	remember(txOf(tx), r.requests, stored.ID)
	r.requests[stored.ID] = &stored
	return nil
}

func (r *TradeRequestRepository) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, model.ErrTradeRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *TradeRequestRepository) ExistsPendingBetween(ctx context.Context, userA, userB int64, d model.Discriminator) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pair := unorderedPair(userA, userB)
	for _, req := range r.requests {
		if req.Status != model.RequestPending || unorderedPair(req.FromUserID, req.ToUserID) != pair {
			continue
		}
		if matchesDiscriminator(req, d) {
			return true, nil
		}
	}
	return false, nil
}

func matchesDiscriminator(req *model.TradeRequest, d model.Discriminator) bool {
	if d.Manual {
		return req.IsManual
	}
	if req.IsManual || req.CardID == nil || *req.CardID != d.CardID {
		return false
	}
	if d.OfferedCardID == "" {
		return true
	}
	return req.OfferedCard != nil && req.OfferedCard.CardID == d.OfferedCardID
}

func (r *TradeRequestRepository) ListReceived(ctx context.Context, userID int64) ([]*model.TradeRequestView, error) {
	return r.listViews(func(req *model.TradeRequest) (bool, int64) {
		return req.ToUserID == userID, req.FromUserID
	}), nil
}

func (r *TradeRequestRepository) ListSent(ctx context.Context, userID int64) ([]*model.TradeRequestView, error) {
	return r.listViews(func(req *model.TradeRequest) (bool, int64) {
		return req.FromUserID == userID, req.ToUserID
	}), nil
}

func (r *TradeRequestRepository) listViews(match func(*model.TradeRequest) (bool, int64)) []*model.TradeRequestView {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := []*model.TradeRequestView{}
	for _, req := range r.requests {
		ok, counterpartID := match(req)
		if !ok {
			continue
		}
		view := &model.TradeRequestView{TradeRequest: *req}
		if u, found := r.users[counterpartID]; found {
			cp := *u
			view.Counterpart = &cp
		}
		if req.TradeID != nil {
			if t, found := r.trades[*req.TradeID]; found {
				code := t.RoomCode
				view.RoomCode = &code
			}
		}
		views = append(views, view)
	}
	slices.SortFunc(views, func(a, b *model.TradeRequestView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return views
}

func (r *TradeRequestRepository) TransitionFromPending(ctx context.Context, id int64, to model.RequestStatus, finishedAt *time.Time, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.Status != model.RequestPending {
		return false, nil
	}
	remember(tx, r.requests, id)
	req.Status = to
	req.FinishedAt = finishedAt
	req.UpdatedAt = r.now()
	return true, nil
}

func (r *TradeRequestRepository) LinkTrade(ctx context.Context, id, tradeID int64, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.TradeID != nil {
		return false, nil
	}
	remember(tx, r.requests, id)
	req.TradeID = &tradeID
	req.UpdatedAt = r.now()
	return true, nil
}

func (r *TradeRequestRepository) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[id]; ok {
		remember(tx, r.requests, id)
	}
	delete(r.requests, id)
	return nil
}

func (r *TradeRequestRepository) ListStaleAccepted(ctx context.Context, olderThan time.Time, limit int) ([]*model.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stale []*model.TradeRequest
	for _, req := range r.requests {
		if req.Status == model.RequestAccepted && req.TradeID == nil && req.UpdatedAt.Before(olderThan) {
			cp := *req
			stale = append(stale, &cp)
		}
	}
	slices.SortFunc(stale, func(a, b *model.TradeRequest) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	if len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}

func (r *TradeRequestRepository) LockForReconcile(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	return ok && req.Status == model.RequestAccepted && req.TradeID == nil, nil
}

func (r *TradeRequestRepository) CancelUnlinked(ctx context.Context, id int64, finishedAt time.Time, tx pgx.Tx) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok || req.Status != model.RequestAccepted || req.TradeID != nil {
		return false, nil
	}
	remember(tx, r.requests, id)
	req.Status = model.RequestCancelled
	req.FinishedAt = &finishedAt
	req.UpdatedAt = r.now()
	return true, nil
}
