package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.TradeRepository = (*TradeRepositoryImpl)(nil)

// TradeRepositoryImpl is the PostgreSQL implementation of TradeRepository
type TradeRepositoryImpl struct {
	*TransactionManager
}

func NewTradeRepository(pool *pgxpool.Pool) repository.TradeRepository {
	return &TradeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const tradeColumns = `id, initiator_user_id, receiver_user_id, initiator_cards, receiver_cards, trade_type,
	room_code, status, origin, request_id, requested_card_id, initiator_accepted, receiver_accepted,
	messages, completed_at, created_at, updated_at`

func scanTrade(row pgx.Row) (*model.Trade, error) {
	t := &model.Trade{}
	err := row.Scan(
		&t.ID, &t.InitiatorUserID, &t.ReceiverUserID, &t.InitiatorCards, &t.ReceiverCards, &t.TradeType,
		&t.RoomCode, &t.Status, &t.Origin, &t.RequestID, &t.RequestedCardID, &t.InitiatorAccepted, &t.ReceiverAccepted,
		&t.Messages, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Normalize()
	return t, nil
}

func (r *TradeRepositoryImpl) getOne(ctx context.Context, exec Querier, where string, arg any) (*model.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE ` + where
	t, err := scanTrade(exec.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return t, nil
}

// Create inserts a trade. The room code is claimed with ON CONFLICT DO NOTHING so a
// collision surfaces as model.ErrRoomCodeTaken without aborting the surrounding tx.
func (r *TradeRepositoryImpl) Create(ctx context.Context, trade *model.Trade, tx ...pgx.Tx) error {
	trade.Normalize()
	query := `
		INSERT INTO trades (
			initiator_user_id, receiver_user_id, initiator_cards, receiver_cards, trade_type, room_code,
			status, origin, request_id, requested_card_id, initiator_accepted, receiver_accepted, messages, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (room_code) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query,
		trade.InitiatorUserID, trade.ReceiverUserID, trade.InitiatorCards, trade.ReceiverCards, trade.TradeType, trade.RoomCode,
		trade.Status, trade.Origin, trade.RequestID, trade.RequestedCardID, trade.InitiatorAccepted, trade.ReceiverAccepted,
		trade.Messages, trade.CompletedAt,
	).Scan(&trade.ID, &trade.CreatedAt, &trade.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrRoomCodeTaken
		}
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

func (r *TradeRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.Trade, error) {
	return r.getOne(ctx, r.getExecutor(tx...), `id = $1`, id)
}

func (r *TradeRepositoryImpl) GetByRoomCode(ctx context.Context, code string) (*model.Trade, error) {
	return r.getOne(ctx, r.pool, `room_code = $1`, code)
}

func (r *TradeRepositoryImpl) GetByRequestID(ctx context.Context, requestID int64, tx ...pgx.Tx) (*model.Trade, error) {
	return r.getOne(ctx, r.getExecutor(tx...), `request_id = $1 ORDER BY id LIMIT 1`, requestID)
}

// List returns one page of trades and the total matching the filter
func (r *TradeRepositoryImpl) List(ctx context.Context, filter model.TradeFilter, limit, offset int) ([]*model.Trade, int64, error) {
	var conditions []string
	var args []any
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.TradeType != nil {
		args = append(args, *filter.TradeType)
		conditions = append(conditions, fmt.Sprintf("trade_type = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM trades`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trades: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM trades%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		tradeColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	trades := []*model.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating trades: %w", err)
	}
	return trades, total, nil
}

// RecordAcceptance sets slot 0 of the role's cards and its flag in one conditional write
func (r *TradeRepositoryImpl) RecordAcceptance(ctx context.Context, id int64, role model.Role, userCardID int64, tx pgx.Tx) (*model.Trade, error) {
	cardsCol, flagCol := "initiator_cards", "initiator_accepted"
	if role == model.RoleReceiver {
		cardsCol, flagCol = "receiver_cards", "receiver_accepted"
	}

	query := fmt.Sprintf(`
		UPDATE trades
		SET %[1]s = jsonb_set(%[1]s, '{0}', $2::jsonb, true), %[2]s = TRUE, updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND %[2]s = FALSE
		RETURNING %[3]s`, cardsCol, flagCol, tradeColumns)

	t, err := scanTrade(r.executor(tx).QueryRow(ctx, query, id, model.TradeCard{UserCardID: userCardID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to record acceptance: %w", err)
	}
	return t, nil
}

// CompleteIfAccepted is the settlement gate; exactly one caller sees true
func (r *TradeRepositoryImpl) CompleteIfAccepted(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE trades
		SET status = 'completed', completed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND initiator_accepted AND receiver_accepted`

	result, err := r.executor(tx).Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete trade: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *TradeRepositoryImpl) TransitionFromPending(ctx context.Context, id int64, to model.TradeStatus, tx pgx.Tx) (bool, error) {
	query := `UPDATE trades SET status = $1, updated_at = NOW() WHERE id = $2 AND status = 'pending'`

	result, err := r.executor(tx).Exec(ctx, query, to, id)
	if err != nil {
		return false, fmt.Errorf("failed to update trade status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *TradeRepositoryImpl) UpdateFields(ctx context.Context, id int64, patch *model.TradePatch, tx pgx.Tx) error {
	var sets []string
	var args []any
	if patch.CompletedAt != nil {
		args = append(args, *patch.CompletedAt)
		sets = append(sets, fmt.Sprintf("completed_at = $%d", len(args)))
	}
	if patch.Messages != nil {
		messages := *patch.Messages
		if messages == nil {
			messages = []model.TradeMessage{}
		}
		args = append(args, messages)
		sets = append(sets, fmt.Sprintf("messages = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE trades SET %s, updated_at = NOW() WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	result, err := r.executor(tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTradeNotFound
	}
	return nil
}

func (r *TradeRepositoryImpl) Delete(ctx context.Context, id int64, tx ...pgx.Tx) error {
	result, err := r.getExecutor(tx...).Exec(ctx, `DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrTradeNotFound
	}
	return nil
}
