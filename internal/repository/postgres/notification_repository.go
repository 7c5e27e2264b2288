package postgres

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.NotificationRepository = (*NotificationRepositoryImpl)(nil)

type NotificationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) repository.NotificationRepository {
	return &NotificationRepositoryImpl{pool: pool}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *model.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, is_read, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	if err := r.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.IsRead, n.Data).Scan(&n.ID, &n.CreatedAt); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Notification, error) {
	query := `
		SELECT id, user_id, title, message, is_read, data, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*model.Notification{}
	for rows.Next() {
		n := &model.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.Data, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead only touches notifications owned by userID
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	result, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
