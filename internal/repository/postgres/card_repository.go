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

var _ repository.CardRepository = (*CardRepositoryImpl)(nil)

// CardRepositoryImpl reads the card catalog table
type CardRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) repository.CardRepository {
	return &CardRepositoryImpl{pool: pool}
}

func (r *CardRepositoryImpl) GetByExternalID(ctx context.Context, externalID string) (*model.Card, error) {
	query := `SELECT id, external_id, name, image_small, image_large FROM cards WHERE external_id = $1`

	card := &model.Card{}
	err := r.pool.QueryRow(ctx, query, externalID).Scan(&card.ID, &card.ExternalID, &card.Name, &card.ImageSmall, &card.ImageLarge)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}
