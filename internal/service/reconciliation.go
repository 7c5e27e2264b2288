package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"card-trading/internal/config"
	"card-trading/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type reconcileOutcome int

const (
	outcomeSkipped reconcileOutcome = iota
	outcomeLinked
	outcomeCancelled
)

type ReconciliationServiceImpl struct {
	repos    Repositories
	notifier Notifier
	batch    int
	grace    time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

func NewReconciliationService(
	repos Repositories,
	notifier Notifier,
	cfg config.WorkerConfig,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		repos:    repos,
		notifier: notifier,
		batch:    cfg.ReconcileBatch,
		grace:    cfg.ReconcileGrace,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

// ReconcileAcceptedRequests finds requests that were accepted without ever being
// linked to their trade. A request whose trade exists is linked to it; one whose
// trade was never created is closed as cancelled so the sender can ask again.
func (s *ReconciliationServiceImpl) ReconcileAcceptedRequests(ctx context.Context) (int, error) {
	stale, err := s.repos.TradeRequests.ListStaleAccepted(ctx, s.now().Add(-s.grace), s.batch)
	if err != nil {
		return 0, fmt.Errorf("list stale requests: %w", err)
	}
	if len(stale) == 0 {
		s.logger.Debug().Msg("no unlinked accepted requests to reconcile")
		return 0, nil
	}

	var repaired int
	for _, req := range stale {
		select {
		case <-ctx.Done():
			return repaired, ctx.Err()
		default:
		}

		outcome := outcomeSkipped
		err := s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
			locked, err := s.repos.TradeRequests.LockForReconcile(ctx, req.ID, tx)
			if err != nil {
				return fmt.Errorf("lock request: %w", err)
			}
			if !locked {
				s.logger.Debug().Int64("request_id", req.ID).Msg("request already claimed or repaired")
				return nil
			}

			trade, err := s.repos.Trades.GetByRequestID(ctx, req.ID, tx)
			switch {
			case err == nil:
				linked, err := s.repos.TradeRequests.LinkTrade(ctx, req.ID, trade.ID, tx)
				if err != nil {
					return fmt.Errorf("link trade: %w", err)
				}
				if linked {
					outcome = outcomeLinked
				}
			case errors.Is(err, model.ErrTradeNotFound):
				cancelled, err := s.repos.TradeRequests.CancelUnlinked(ctx, req.ID, s.now(), tx)
				if err != nil {
					return fmt.Errorf("cancel request: %w", err)
				}
				if cancelled {
					outcome = outcomeCancelled
				}
			default:
				return fmt.Errorf("get trade for request: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error().
				Err(err).
				Int64("request_id", req.ID).
				Msg("failed to reconcile trade request")
			continue
		}

		switch outcome {
		case outcomeLinked:
			repaired++
			s.logger.Info().Int64("request_id", req.ID).Msg("trade request relinked to its trade")
		case outcomeCancelled:
			repaired++
			s.logger.Warn().Int64("request_id", req.ID).Msg("trade request closed: its trade was never created")
			s.notifier.Emit(ctx, req.FromUserID, model.NotificationDraft{
				Event:   model.EventTradeRequestCancelled,
				Title:   "Trade request closed",
				Message: fmt.Sprintf("Your trade request for %s could not be opened. Please send it again", req.CardName),
				Data:    map[string]any{"requestId": req.ID},
			})
		}
	}

	s.logger.Info().
		Int("found", len(stale)).
		Int("repaired", repaired).
		Msg("trade request reconciliation completed")

	return repaired, nil
}
