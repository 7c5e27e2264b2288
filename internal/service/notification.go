package service

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type NotificationServiceImpl struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{repo: repo}
}

func (s *NotificationServiceImpl) List(ctx context.Context, callerID int64, limit int) ([]*model.Notification, error) {
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	notifications, err := s.repo.ListByUser(ctx, callerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id, callerID int64) error {
	if callerID == 0 {
		return model.ErrCallerRequired
	}
	ok, err := s.repo.MarkRead(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if !ok {
		return model.ErrNotificationNotFound
	}
	return nil
}
