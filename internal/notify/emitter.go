package notify

import (
	"context"
	"fmt"

	"card-trading/internal/model"
	"card-trading/internal/repository"
	"card-trading/internal/service"

	"github.com/rs/zerolog"
)

var _ service.Notifier = (*Emitter)(nil)

// BestEffort runs a non-critical side effect. Errors and panics are logged and
// swallowed; the caller's result never depends on fn.
func BestEffort(logger zerolog.Logger, what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Str("side_effect", what).Interface("panic", r).Msg("side effect panicked")
		}
	}()
	if err := fn(); err != nil {
		logger.Warn().Err(err).Str("side_effect", what).Msg("side effect failed")
	}
}

// Emitter stores notifications and pushes them to connected clients.
type Emitter struct {
	repo   repository.NotificationRepository
	hub    *Hub
	logger zerolog.Logger
}

func NewEmitter(repo repository.NotificationRepository, hub *Hub, logger zerolog.Logger) *Emitter {
	return &Emitter{repo: repo, hub: hub, logger: logger}
}

// Emit persists the notification and pushes it to userID's channel. Delivery
// outlives the caller's request context.
func (e *Emitter) Emit(ctx context.Context, userID int64, draft model.NotificationDraft) {
	ctx = context.WithoutCancel(ctx)
	n := &model.Notification{
		UserID:  userID,
		Title:   draft.Title,
		Message: draft.Message,
		Data:    draft.Data,
	}

	BestEffort(e.logger, "store notification", func() error {
		if err := e.repo.Create(ctx, n); err != nil {
			return fmt.Errorf("user %d: %w", userID, err)
		}
		return nil
	})

	BestEffort(e.logger, "push notification", func() error {
		_, err := e.hub.PushToUser(userID, Event{Type: draft.Event, Data: n})
		return err
	})
}

func (e *Emitter) EmitRoom(ctx context.Context, roomCode, event string, data map[string]any) {
	if roomCode == "" {
		return
	}
	BestEffort(e.logger, "push room event", func() error {
		_, err := e.hub.PushToRoom(roomCode, Event{Type: event, Data: data})
		return err
	})
}
