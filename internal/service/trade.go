package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"card-trading/internal/config"
	"card-trading/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type TradeServiceImpl struct {
	repos     Repositories
	inventory InventoryService
	notifier  Notifier
	cfg       config.TradeConfig
	roomCode  func() string
	logger    zerolog.Logger
}

func NewTradeService(
	repos Repositories,
	inventory InventoryService,
	notifier Notifier,
	cfg config.TradeConfig,
	logger zerolog.Logger,
) TradeService {
	return &TradeServiceImpl{
		repos:     repos,
		inventory: inventory,
		notifier:  notifier,
		cfg:       cfg,
		roomCode:  RoomCodeGenerator(cfg.RoomCodeLength),
		logger:    logger,
	}
}

func (s *TradeServiceImpl) Create(ctx context.Context, callerID int64, in *model.CreateTradeInput) (*model.CreateTradeResult, error) {
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}
	identifier := strings.TrimSpace(in.ReceiverIdentifier)
	if identifier == "" {
		return nil, model.ErrReceiverRequired
	}
	tradeType, err := model.ParseTradeType(in.TradeType)
	if err != nil {
		return nil, err
	}
	origin, err := model.ParseTradeOrigin(in.Origin)
	if err != nil {
		return nil, err
	}

	initiator, err := s.repos.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.repos.Users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrReceiverNotFound
		}
		return nil, err
	}
	if receiver.ID == initiator.ID {
		return nil, model.ErrSelfTrade
	}

	trade := &model.Trade{
		InitiatorUserID: initiator.ID,
		ReceiverUserID:  receiver.ID,
		InitiatorCards:  in.InitiatorCards,
		ReceiverCards:   in.ReceiverCards,
		TradeType:       tradeType,
		Status:          model.TradePending,
		Origin:          origin,
		RequestID:       in.RequestID,
		RequestedCardID: in.RequestedCardID,
	}
	err = s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := createTrade(ctx, s.repos.Trades, trade, s.roomCode, tx); err != nil {
			return err
		}
		if err := s.repos.Invitations.Create(ctx, &model.RoomInvitation{RoomCode: trade.RoomCode, UserID: receiver.ID}, tx); err != nil {
			return fmt.Errorf("create room invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("trade_id", trade.ID).
		Int64("initiator_user_id", trade.InitiatorUserID).
		Int64("receiver_user_id", trade.ReceiverUserID).
		Str("room_code", trade.RoomCode).
		Msg("trade created")

	s.notifier.Emit(ctx, receiver.ID, model.NotificationDraft{
		Event:   model.EventTradeInvitation,
		Title:   "New trade invitation",
		Message: fmt.Sprintf("%s invited you to trade room %s", initiator.Username, trade.RoomCode),
		Data:    map[string]any{"tradeId": trade.ID, "roomCode": trade.RoomCode},
	})

	return &model.CreateTradeResult{
		Message:  model.MsgTradeCreated,
		TradeID:  trade.ID,
		RoomCode: trade.RoomCode,
	}, nil
}

func (s *TradeServiceImpl) Get(ctx context.Context, id int64) (*model.Trade, error) {
	return s.repos.Trades.GetByID(ctx, id)
}

func (s *TradeServiceImpl) GetByRoomCode(ctx context.Context, code string) (*model.Trade, error) {
	return s.repos.Trades.GetByRoomCode(ctx, code)
}

func (s *TradeServiceImpl) List(ctx context.Context, filter model.TradeFilter, page, limit int) (*model.Page[*model.Trade], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	trades, total, err := s.repos.Trades.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}

	return &model.Page[*model.Trade]{
		Items:      trades,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// loadForMember fetches the trade and checks the caller takes part in it
func (s *TradeServiceImpl) loadForMember(ctx context.Context, id, callerID int64) (*model.Trade, error) {
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}
	trade, err := s.repos.Trades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := trade.RoleOf(callerID); !ok {
		return nil, model.ErrNotTradeMember
	}
	return trade, nil
}

// Update applies an allow-listed patch. Closing the trade also closes its room
// invitations and removes the request it was opened from.
func (s *TradeServiceImpl) Update(ctx context.Context, id, callerID int64, patch *model.TradePatch) (*model.Trade, error) {
	trade, err := s.loadForMember(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return trade, nil
	}

	closing := patch.Status != nil
	if closing && *patch.Status != model.TradeRejected && *patch.Status != model.TradeCancelled {
		return nil, model.ErrInvalidStatusTransition
	}

	err = s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		if closing {
			ok, err := s.repos.Trades.TransitionFromPending(ctx, id, *patch.Status, tx)
			if err != nil {
				return fmt.Errorf("update trade status: %w", err)
			}
			if !ok {
				return model.ErrTradeNotPending
			}
			if _, err := s.repos.Invitations.UpdateStateForRoom(ctx, trade.RoomCode, model.InvitationClosed, tx); err != nil {
				return fmt.Errorf("close room invitations: %w", err)
			}
			if trade.RequestID != nil {
				if err := s.repos.TradeRequests.Delete(ctx, *trade.RequestID, tx); err != nil {
					return fmt.Errorf("delete linked request: %w", err)
				}
			}
		}
		if patch.CompletedAt != nil || patch.Messages != nil {
			if err := s.repos.Trades.UpdateFields(ctx, id, patch, tx); err != nil {
				return fmt.Errorf("update trade fields: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.Trades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := model.EventTradeUpdated
	if closing {
		event = model.EventTradeRejected
		s.logger.Info().
			Int64("trade_id", id).
			Int64("user_id", callerID).
			Str("status", updated.Status.String()).
			Msg("trade closed")
	}
	s.notifier.EmitRoom(ctx, updated.RoomCode, event, map[string]any{
		"tradeId": updated.ID,
		"status":  updated.Status,
		"userId":  callerID,
	})
	return updated, nil
}

func (s *TradeServiceImpl) Delete(ctx context.Context, id, callerID int64) error {
	if _, err := s.loadForMember(ctx, id, callerID); err != nil {
		return err
	}
	if err := s.repos.Trades.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("trade_id", id).Int64("user_id", callerID).Msg("trade deleted")
	return nil
}

// Complete records the caller's acceptance with their own card and settles the
// trade once both sides have accepted. Each side writes only its own slot;
// opponentUserCardID must match the opponent's committed card when there is one.
func (s *TradeServiceImpl) Complete(ctx context.Context, id, callerID int64, in model.CompleteTradeInput) (*model.CompleteTradeResult, error) {
	if in.MyUserCardID == 0 || in.OpponentUserCardID == 0 {
		return nil, model.ErrCardIDsRequired
	}
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}

	trade, err := s.repos.Trades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role, ok := trade.RoleOf(callerID)
	if !ok {
		return nil, model.ErrNotTradeParticipant
	}
	if trade.Status != model.TradePending {
		return nil, model.ErrTradeNotPending
	}
	trade.Normalize()
	if trade.Accepted(role) {
		return nil, model.ErrAlreadyAccepted
	}

	opponent := role.Opposite()
	if cards := trade.Cards(opponent); len(cards) > 0 && cards[0].UserCardID != in.OpponentUserCardID {
		return nil, model.ErrOpponentCardMismatch
	}
	if _, err := ownedCard(ctx, s.repos.UserCards, in.MyUserCardID, callerID); err != nil {
		return nil, err
	}
	if trade.Accepted(opponent) && len(trade.Cards(opponent)) == 0 {
		return nil, model.ErrMissingCards
	}

	var result *model.CompleteTradeResult
	var settled bool
	err = s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		updated, err := s.repos.Trades.RecordAcceptance(ctx, id, role, in.MyUserCardID, tx)
		if err != nil {
			return fmt.Errorf("record acceptance: %w", err)
		}
		if updated == nil {
			current, err := s.repos.Trades.GetByID(ctx, id, tx)
			if err != nil {
				return err
			}
			if current.Status != model.TradePending {
				return model.ErrTradeNotPending
			}
			return model.ErrAlreadyAccepted
		}

		if !updated.BothAccepted() {
			result = completeResult(model.MsgWaitingOtherUser, updated)
			return nil
		}

		settled, err = s.settle(ctx, updated, tx)
		if err != nil {
			return err
		}
		updated.Status = model.TradeCompleted
		result = completeResult(model.MsgTradeCompleted, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == model.TradePending {
		s.logger.Info().Int64("trade_id", id).Int64("user_id", callerID).Str("role", string(role)).Msg("trade acceptance recorded")
		s.notifier.EmitRoom(ctx, trade.RoomCode, model.EventTradeAccepted, map[string]any{
			"tradeId": id,
			"userId":  callerID,
		})
		return result, nil
	}

	if settled {
		s.logger.Info().Int64("trade_id", id).Str("room_code", trade.RoomCode).Msg("trade settled")
		for _, userID := range []int64{trade.InitiatorUserID, trade.ReceiverUserID} {
			s.notifier.Emit(ctx, userID, model.NotificationDraft{
				Event:   model.EventTradeCompleted,
				Title:   "Trade completed",
				Message: fmt.Sprintf("Trade in room %s is complete", trade.RoomCode),
				Data:    map[string]any{"tradeId": id, "roomCode": trade.RoomCode},
			})
		}
		s.notifier.EmitRoom(ctx, trade.RoomCode, model.EventTradeCompleted, map[string]any{"tradeId": id})
	}
	return result, nil
}

// settle moves both committed cards. The pending -> completed write decides the
// single winner; a caller that loses it returns without transferring anything.
func (s *TradeServiceImpl) settle(ctx context.Context, trade *model.Trade, tx pgx.Tx) (bool, error) {
	if len(trade.InitiatorCards) == 0 || len(trade.ReceiverCards) == 0 {
		return false, model.ErrMissingCards
	}

	initiatorCard, err := ownedCard(ctx, s.repos.UserCards, trade.InitiatorCards[0].UserCardID, trade.InitiatorUserID, tx)
	if err != nil {
		return false, err
	}
	receiverCard, err := ownedCard(ctx, s.repos.UserCards, trade.ReceiverCards[0].UserCardID, trade.ReceiverUserID, tx)
	if err != nil {
		return false, err
	}

	won, err := s.repos.Trades.CompleteIfAccepted(ctx, trade.ID, tx)
	if err != nil {
		return false, fmt.Errorf("complete trade: %w", err)
	}
	if !won {
		s.logger.Debug().Int64("trade_id", trade.ID).Msg("trade already settled")
		return false, nil
	}

	if err := swapCards(ctx, s.inventory, initiatorCard, receiverCard, tx); err != nil {
		return false, err
	}
	return true, nil
}

func completeResult(message string, t *model.Trade) *model.CompleteTradeResult {
	return &model.CompleteTradeResult{
		Message:           message,
		TradeID:           t.ID,
		Status:            t.Status,
		InitiatorAccepted: t.InitiatorAccepted,
		ReceiverAccepted:  t.ReceiverAccepted,
	}
}
