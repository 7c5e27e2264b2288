package memory

import (
	"context"
	"strconv"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.CardRepository = (*CardRepository)(nil)
)

type UserRepository struct{ *state }

func (r *UserRepository) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getUser(id)
}

func (r *UserRepository) getUser(id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		if u, err := r.getUser(id); err == nil {
			return u, nil
		}
	}

	var byEmail *model.User
	for _, u := range r.users {
		if equalFoldTrim(u.Username, identifier) {
			cp := *u
			return &cp, nil
		}
		if byEmail == nil && equalFoldTrim(u.Email, identifier) {
			cp := *u
			byEmail = &cp
		}
	}
	if byEmail != nil {
		return byEmail, nil
	}
	return nil, model.ErrUserNotFound
}

type CardRepository struct{ *state }

func (r *CardRepository) GetByExternalID(ctx context.Context, externalID string) (*model.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.cards[externalID]
	if !ok {
		return nil, model.ErrCardNotFound
	}
	cp := *c
	return &cp, nil
}
