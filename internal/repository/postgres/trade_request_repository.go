package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.TradeRequestRepository = (*TradeRequestRepositoryImpl)(nil)

const pendingGuardIndex = "trade_requests_pending_guard_idx"

// TradeRequestRepositoryImpl is the PostgreSQL implementation of TradeRequestRepository
type TradeRequestRepositoryImpl struct {
	*TransactionManager
}

func NewTradeRequestRepository(pool *pgxpool.Pool) repository.TradeRequestRepository {
	return &TradeRequestRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const requestColumns = `r.id, r.from_user_id, r.to_user_id, r.card_id, r.card_name, r.card_image, r.note,
	r.status, r.is_manual, r.offered_card, r.offered_price, r.target_price,
	r.offered_user_card_id, r.target_user_card_id, r.trade_id, r.guard_key,
	r.finished_at, r.created_at, r.updated_at`

func requestDest(req *model.TradeRequest) []any {
	return []any{
		&req.ID, &req.FromUserID, &req.ToUserID, &req.CardID, &req.CardName, &req.CardImage, &req.Note,
		&req.Status, &req.IsManual, &req.OfferedCard, &req.OfferedPrice, &req.TargetPrice,
		&req.OfferedUserCardID, &req.TargetUserCardID, &req.TradeID, &req.GuardKey,
		&req.FinishedAt, &req.CreatedAt, &req.UpdatedAt,
	}
}

// Create inserts a new trade request
func (r *TradeRequestRepositoryImpl) Create(ctx context.Context, req *model.TradeRequest, tx ...pgx.Tx) error {
	query := `
		INSERT INTO trade_requests (
			from_user_id, to_user_id, card_id, card_name, card_image, note, status, is_manual,
			offered_card, offered_price, target_price, offered_user_card_id, target_user_card_id, guard_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query,
		req.FromUserID, req.ToUserID, req.CardID, req.CardName, req.CardImage, req.Note, req.Status, req.IsManual,
		req.OfferedCard, req.OfferedPrice, req.TargetPrice, req.OfferedUserCardID, req.TargetUserCardID, req.GuardKey,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, pendingGuardIndex) {
			return model.ErrTradeAlreadyExists
		}
		return fmt.Errorf("failed to create trade request: %w", err)
	}
	return nil
}

func (r *TradeRequestRepositoryImpl) GetByID(ctx context.Context, id int64, tx ...pgx.Tx) (*model.TradeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM trade_requests r WHERE r.id = $1`

	req := &model.TradeRequest{}
	if err := r.getExecutor(tx...).QueryRow(ctx, query, id).Scan(requestDest(req)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTradeRequestNotFound
		}
		return nil, fmt.Errorf("failed to get trade request: %w", err)
	}
	return req, nil
}

// ExistsPendingBetween applies the discriminator scope in both directions of the pair
func (r *TradeRequestRepositoryImpl) ExistsPendingBetween(ctx context.Context, userA, userB int64, d model.Discriminator) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM trade_requests
			WHERE status = 'pending'
			  AND ((from_user_id = $1 AND to_user_id = $2) OR (from_user_id = $2 AND to_user_id = $1))`
	args := []any{userA, userB}

	switch {
	case d.Manual:
		query += ` AND is_manual = TRUE`
	case d.OfferedCardID != "":
		query += ` AND is_manual = FALSE AND card_id = $3 AND offered_card->>'pokemonCardId' = $4`
		args = append(args, d.CardID, d.OfferedCardID)
	default:
		query += ` AND is_manual = FALSE AND card_id = $3`
		args = append(args, d.CardID)
	}
	query += `)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending requests: %w", err)
	}
	return exists, nil
}

func (r *TradeRequestRepositoryImpl) ListReceived(ctx context.Context, userID int64) ([]*model.TradeRequestView, error) {
	return r.listViews(ctx, "r.from_user_id", "r.to_user_id", userID)
}

func (r *TradeRequestRepositoryImpl) ListSent(ctx context.Context, userID int64) ([]*model.TradeRequestView, error) {
	return r.listViews(ctx, "r.to_user_id", "r.from_user_id", userID)
}

// listViews joins the counterpart user and the room code of the linked trade
func (r *TradeRequestRepositoryImpl) listViews(ctx context.Context, counterpartCol, ownerCol string, userID int64) ([]*model.TradeRequestView, error) {
	query := `
		SELECT ` + requestColumns + `,
			u.id, u.username, COALESCE(u.email, ''), u.created_at, t.room_code
		FROM trade_requests r
		JOIN users u ON u.id = ` + counterpartCol + `
		LEFT JOIN trades t ON t.id = r.trade_id
		WHERE ` + ownerCol + ` = $1
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade requests: %w", err)
	}
	defer rows.Close()

	views := []*model.TradeRequestView{}
	for rows.Next() {
		view := &model.TradeRequestView{Counterpart: &model.User{}}
		dest := append(requestDest(&view.TradeRequest),
			&view.Counterpart.ID, &view.Counterpart.Username, &view.Counterpart.Email, &view.Counterpart.CreatedAt,
			&view.RoomCode,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan trade request: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade requests: %w", err)
	}
	return views, nil
}

// TransitionFromPending is a compare-and-swap on status
func (r *TradeRequestRepositoryImpl) TransitionFromPending(ctx context.Context, id int64, to model.RequestStatus, finishedAt *time.Time, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE trade_requests
		SET status = $1, finished_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'`

	result, err := r.executor(tx).Exec(ctx, query, to, finishedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to update trade request status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *TradeRequestRepositoryImpl) LinkTrade(ctx context.Context, id, tradeID int64, tx pgx.Tx) (bool, error) {
	query := `UPDATE trade_requests SET trade_id = $1, updated_at = NOW() WHERE id = $2 AND trade_id IS NULL`

	result, err := r.executor(tx).Exec(ctx, query, tradeID, id)
	if err != nil {
		return false, fmt.Errorf("failed to link trade: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *TradeRequestRepositoryImpl) Delete(ctx context.Context, id int64, tx pgx.Tx) error {
	if _, err := r.executor(tx).Exec(ctx, `DELETE FROM trade_requests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete trade request: %w", err)
	}
	return nil
}

func (r *TradeRequestRepositoryImpl) ListStaleAccepted(ctx context.Context, olderThan time.Time, limit int) ([]*model.TradeRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM trade_requests r
		WHERE r.status = 'accepted' AND r.trade_id IS NULL AND r.updated_at < $1
		ORDER BY r.updated_at
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.TradeRequest
	for rows.Next() {
		req := &model.TradeRequest{}
		if err := rows.Scan(requestDest(req)...); err != nil {
			return nil, fmt.Errorf("failed to scan trade request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade requests: %w", err)
	}
	return requests, nil
}

// LockForReconcile uses SKIP LOCKED so concurrent workers never block each other
func (r *TradeRequestRepositoryImpl) LockForReconcile(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `
		SELECT id FROM trade_requests
		WHERE id = $1 AND status = 'accepted' AND trade_id IS NULL
		FOR UPDATE SKIP LOCKED`

	var locked int64
	if err := r.executor(tx).QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock trade request: %w", err)
	}
	return true, nil
}

func (r *TradeRequestRepositoryImpl) CancelUnlinked(ctx context.Context, id int64, finishedAt time.Time, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE trade_requests
		SET status = 'cancelled', finished_at = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'accepted' AND trade_id IS NULL`

	result, err := r.executor(tx).Exec(ctx, query, finishedAt, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel trade request: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
