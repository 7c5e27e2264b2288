package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.UserCardRepository = (*UserCardRepositoryImpl)(nil)

// UserCardRepositoryImpl is the PostgreSQL implementation of UserCardRepository
type UserCardRepositoryImpl struct {
	*TransactionManager
}

func NewUserCardRepository(pool *pgxpool.Pool) repository.UserCardRepository {
	return &UserCardRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const userCardColumns = `id, owner_id, card_id, name, image, quantity, collection_type, condition, for_trade, is_public, created_at, updated_at`

func scanUserCard(row pgx.Row) (*model.UserCard, error) {
	uc := &model.UserCard{}
	err := row.Scan(
		&uc.ID, &uc.OwnerID, &uc.CardID, &uc.Name, &uc.Image, &uc.Quantity,
		&uc.CollectionType, &uc.Condition, &uc.ForTrade, &uc.IsPublic,
		&uc.CreatedAt, &uc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserCardNotFound
		}
		return nil, fmt.Errorf("failed to scan user card: %w", err)
	}
	return uc, nil
}

func (r *UserCardRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.UserCard, error) {
	query := `SELECT ` + userCardColumns + ` FROM user_cards WHERE id = $1`
	return scanUserCard(r.getExecutor(tx...).QueryRow(ctx, query, id))
}

func (r *UserCardRepositoryImpl) FindByOwnerAndCard(ctx context.Context, ownerID int64, cardID string, tx ...pgx.Tx) (*model.UserCard, error) {
	query := `
		SELECT ` + userCardColumns + `
		FROM user_cards
		WHERE owner_id = $1 AND card_id = $2 AND quantity > 0
		ORDER BY (collection_type = 'collection') DESC, id
		LIMIT 1`
	return scanUserCard(r.getExecutor(tx...).QueryRow(ctx, query, ownerID, cardID))
}

// AddCopy upserts on the merge key so concurrent credits never lose an increment
func (r *UserCardRepositoryImpl) AddCopy(ctx context.Context, card *model.UserCard, tx pgx.Tx) (*model.UserCard, error) {
	condition := card.Condition
	if condition == "" {
		condition = model.DefaultCondition
	}
	collection := card.CollectionType
	if collection == "" {
		collection = model.DefaultCollectionType
	}

	query := `
		INSERT INTO user_cards (owner_id, card_id, name, image, quantity, collection_type, condition, for_trade, is_public)
		VALUES ($1, $2, $3, $4, 1, $5, $6, FALSE, $7)
		ON CONFLICT (owner_id, card_id, condition, collection_type)
		DO UPDATE SET quantity = user_cards.quantity + 1, for_trade = FALSE, updated_at = NOW()
		RETURNING ` + userCardColumns

	row := r.executor(tx).QueryRow(ctx, query,
		card.OwnerID, card.CardID, card.Name, card.Image, collection, condition, card.IsPublic,
	)
	uc, err := scanUserCard(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add card copy: %w", err)
	}
	return uc, nil
}

// RemoveCopy decrements while more than one copy remains, taking the record off
// the trade list, otherwise deletes it
func (r *UserCardRepositoryImpl) RemoveCopy(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	exec := r.executor(tx)

	result, err := exec.Exec(ctx, `
		UPDATE user_cards
		SET quantity = quantity - 1, for_trade = FALSE, updated_at = NOW()
		WHERE id = $1 AND quantity > 1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to decrement user card: %w", err)
	}
	if result.RowsAffected() == 1 {
		return false, nil
	}

	result, err = exec.Exec(ctx, `DELETE FROM user_cards WHERE id = $1 AND quantity <= 1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user card: %w", err)
	}
	if result.RowsAffected() == 0 {
		return false, model.ErrUserCardNotFound
	}
	return true, nil
}
