package postgres

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.RoomInvitationRepository = (*RoomInvitationRepositoryImpl)(nil)

type RoomInvitationRepositoryImpl struct {
	*TransactionManager
}

func NewRoomInvitationRepository(pool *pgxpool.Pool) repository.RoomInvitationRepository {
	return &RoomInvitationRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *RoomInvitationRepositoryImpl) Create(ctx context.Context, inv *model.RoomInvitation, tx ...pgx.Tx) error {
	if inv.State == "" {
		inv.State = model.InvitationOpen
	}
	query := `
		INSERT INTO room_invitations (room_code, user_id, state)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query, inv.RoomCode, inv.UserID, inv.State).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create room invitation: %w", err)
	}
	return nil
}

func (r *RoomInvitationRepositoryImpl) UpdateStateForRoom(ctx context.Context, roomCode string, state model.InvitationState, tx pgx.Tx) (int64, error) {
	result, err := r.executor(tx).Exec(ctx,
		`UPDATE room_invitations SET state = $1, updated_at = NOW() WHERE room_code = $2 AND state <> $1`,
		state, roomCode)
	if err != nil {
		return 0, fmt.Errorf("failed to update room invitations: %w", err)
	}
	return result.RowsAffected(), nil
}
