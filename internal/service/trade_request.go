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
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type TradeRequestServiceImpl struct {
	repos     Repositories
	inventory InventoryService
	guard     *DuplicateGuard
	notifier  Notifier
	maxRatio  decimal.Decimal
	roomCode  func() string
	now       func() time.Time
	logger    zerolog.Logger
}

func NewTradeRequestService(
	repos Repositories,
	inventory InventoryService,
	notifier Notifier,
	cfg config.TradeConfig,
	logger zerolog.Logger,
) TradeRequestService {
	return &TradeRequestServiceImpl{
		repos:     repos,
		inventory: inventory,
		guard:     NewDuplicateGuard(repos.TradeRequests),
		notifier:  notifier,
		maxRatio:  decimal.NewFromFloat(cfg.MaxPriceDiffRatio),
		roomCode:  RoomCodeGenerator(cfg.RoomCodeLength),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (s *TradeRequestServiceImpl) Create(ctx context.Context, callerID int64, in *model.CreateTradeRequestInput) (*model.TradeRequest, error) {
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}
	variant, err := in.Classify()
	if err != nil {
		return nil, err
	}

	initiator, err := s.repos.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.repos.Users.FindByIdentifier(ctx, variant.Receiver())
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrReceiverNotFound
		}
		return nil, err
	}
	if receiver.ID == initiator.ID {
		return nil, model.ErrSelfTrade
	}

	discriminator := variant.Discriminator()
	if err := s.guard.Check(ctx, initiator.ID, receiver.ID, discriminator); err != nil {
		return nil, err
	}

	req := &model.TradeRequest{
		FromUserID: initiator.ID,
		ToUserID:   receiver.ID,
		Status:     model.RequestPending,
		GuardKey:   discriminator.Key(),
	}

	var draft model.NotificationDraft
	switch v := variant.(type) {
	case model.ManualRequestInput:
		req.IsManual = true
		req.CardName = model.ManualRequestCardName
		req.Note = v.Note
		draft = model.NotificationDraft{
			Title:   "New private trade request",
			Message: fmt.Sprintf("%s wants to open a private trade room with you", initiator.Username),
		}
	case model.CardRequestInput:
		s.applyCard(ctx, req, v)
		draft = model.NotificationDraft{
			Title:   "New trade request",
			Message: fmt.Sprintf("%s is interested in your %s", initiator.Username, req.CardName),
		}
	case model.QuickRequestInput:
		s.applyCard(ctx, req, v.CardRequestInput)
		if err := s.prepareQuick(ctx, req, v); err != nil {
			return nil, err
		}
		draft = model.NotificationDraft{
			Title:   "New quick trade offer",
			Message: fmt.Sprintf("%s offers %s for your %s", initiator.Username, req.OfferedCard.Name, req.CardName),
		}
	default:
		return nil, fmt.Errorf("unsupported request variant %T", variant)
	}

	if err := s.repos.TradeRequests.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("request_id", req.ID).
		Int64("from_user_id", req.FromUserID).
		Int64("to_user_id", req.ToUserID).
		Str("guard_key", req.GuardKey).
		Msg("trade request created")

	draft.Event = model.EventTradeRequestCreated
	draft.Data = map[string]any{"requestId": req.ID, "fromUserId": req.FromUserID, "isManual": req.IsManual, "isQuick": req.IsQuick()}
	s.notifier.Emit(ctx, receiver.ID, draft)

	return req, nil
}

// applyCard copies the requested card, filling a missing name or image from the catalog
func (s *TradeRequestServiceImpl) applyCard(ctx context.Context, req *model.TradeRequest, in model.CardRequestInput) {
	cardID := in.CardID
	req.CardID = &cardID
	req.CardName = in.CardName
	req.CardImage = in.CardImage
	req.Note = in.Note

	if req.CardName != "" && req.CardImage != "" {
		return
	}
	if card := s.lookupCard(ctx, cardID); card != nil {
		if req.CardName == "" {
			req.CardName = card.Name
		}
		if req.CardImage == "" {
			req.CardImage = card.Image()
		}
	}
}

// prepareQuick checks ownership of any user cards named in the offer and backfills the offered card
func (s *TradeRequestServiceImpl) prepareQuick(ctx context.Context, req *model.TradeRequest, in model.QuickRequestInput) error {
	offer := in.Offered
	req.OfferedCard = &offer
	req.OfferedPrice = in.OfferedPrice
	req.TargetPrice = in.TargetPrice
	req.OfferedUserCardID = in.OfferedUserCardID
	req.TargetUserCardID = in.TargetUserCardID

	var offeredUC *model.UserCard
	g, gctx := errgroup.WithContext(ctx)
	if in.OfferedUserCardID != nil {
		g.Go(func() error {
			uc, err := ownedCard(gctx, s.repos.UserCards, *in.OfferedUserCardID, req.FromUserID)
			offeredUC = uc
			return err
		})
	}
	if in.TargetUserCardID != nil {
		g.Go(func() error {
			_, err := ownedCard(gctx, s.repos.UserCards, *in.TargetUserCardID, req.ToUserID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var catalogName, catalogImage, storedName, storedImage string
	if offeredUC != nil {
		storedName, storedImage = offeredUC.Name, offeredUC.Image
		if card := s.lookupCard(ctx, offeredUC.CardID); card != nil {
			catalogName, catalogImage = card.Name, card.Image()
		}
	}
	req.OfferedCard.Name = firstNonEmpty(catalogName, storedName, req.OfferedCard.Name, model.DefaultOfferedCardName)
	req.OfferedCard.Image = firstNonEmpty(catalogImage, storedImage, req.OfferedCard.Image)
	return nil
}

// lookupCard is best-effort; catalog gaps never fail a request
func (s *TradeRequestServiceImpl) lookupCard(ctx context.Context, cardID string) *model.Card {
	card, err := s.repos.Cards.GetByExternalID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, model.ErrCardNotFound) {
			s.logger.Warn().Err(err).Str("card_id", cardID).Msg("catalog lookup failed")
		}
		return nil
	}
	return card
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *TradeRequestServiceImpl) ListReceived(ctx context.Context, callerID, userID int64) ([]*model.TradeRequestView, error) {
	if err := authorizeList(callerID, userID); err != nil {
		return nil, err
	}
	return s.repos.TradeRequests.ListReceived(ctx, userID)
}

func (s *TradeRequestServiceImpl) ListSent(ctx context.Context, callerID, userID int64) ([]*model.TradeRequestView, error) {
	if err := authorizeList(callerID, userID); err != nil {
		return nil, err
	}
	return s.repos.TradeRequests.ListSent(ctx, userID)
}

func authorizeList(callerID, userID int64) error {
	if callerID == 0 {
		return model.ErrCallerRequired
	}
	if callerID != userID {
		return model.ErrListForbidden
	}
	return nil
}

type requestParty int

const (
	partySender requestParty = iota
	partyReceiver
)

// loadPending fetches the request and checks the caller's party before its status
func (s *TradeRequestServiceImpl) loadPending(ctx context.Context, requestID, callerID int64, party requestParty) (*model.TradeRequest, error) {
	if callerID == 0 {
		return nil, model.ErrCallerRequired
	}
	req, err := s.repos.TradeRequests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	switch party {
	case partyReceiver:
		if req.ToUserID != callerID {
			return nil, model.ErrNotRequestReceiver
		}
	case partySender:
		if req.FromUserID != callerID {
			return nil, model.ErrNotRequestSender
		}
	}
	if req.Status != model.RequestPending {
		return nil, model.ErrRequestNotPending
	}
	return req, nil
}

// finish moves a pending request into a terminal status with a single conditional write
func (s *TradeRequestServiceImpl) finish(ctx context.Context, req *model.TradeRequest, to model.RequestStatus) error {
	now := s.now()
	ok, err := s.repos.TradeRequests.TransitionFromPending(ctx, req.ID, to, &now, nil)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if !ok {
		return model.ErrRequestNotPending
	}
	req.Status = to
	req.FinishedAt = &now
	return nil
}

func (s *TradeRequestServiceImpl) Reject(ctx context.Context, requestID, callerID int64) (*model.TradeRequest, error) {
	req, err := s.loadPending(ctx, requestID, callerID, partyReceiver)
	if err != nil {
		return nil, err
	}
	if err := s.finish(ctx, req, model.RequestRejected); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", req.ID).Int64("user_id", callerID).Msg("trade request rejected")
	s.notifier.Emit(ctx, req.FromUserID, model.NotificationDraft{
		Event:   model.EventTradeRequestRejected,
		Title:   "Trade request rejected",
		Message: fmt.Sprintf("Your trade request for %s was rejected", req.CardName),
		Data:    map[string]any{"requestId": req.ID},
	})
	return req, nil
}

func (s *TradeRequestServiceImpl) Cancel(ctx context.Context, requestID, callerID int64) (*model.TradeRequest, error) {
	req, err := s.loadPending(ctx, requestID, callerID, partySender)
	if err != nil {
		return nil, err
	}
	if err := s.finish(ctx, req, model.RequestCancelled); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", req.ID).Int64("user_id", callerID).Msg("trade request cancelled")
	s.notifier.Emit(ctx, req.ToUserID, model.NotificationDraft{
		Event:   model.EventTradeRequestCancelled,
		Title:   "Trade request cancelled",
		Message: fmt.Sprintf("A trade request for %s was withdrawn", req.CardName),
		Data:    map[string]any{"requestId": req.ID},
	})
	return req, nil
}

func (s *TradeRequestServiceImpl) OpenRoom(ctx context.Context, requestID, callerID int64) (*model.AcceptResult, error) {
	req, err := s.loadPending(ctx, requestID, callerID, partyReceiver)
	if err != nil {
		return nil, err
	}
	return s.openRoom(ctx, req, model.MsgTradeRoomOpened, model.EventTradeRoomOpened)
}

func (s *TradeRequestServiceImpl) Accept(ctx context.Context, requestID, callerID int64) (*model.AcceptResult, error) {
	req, err := s.loadPending(ctx, requestID, callerID, partyReceiver)
	if err != nil {
		return nil, err
	}
	if !req.IsQuick() {
		return s.openRoom(ctx, req, model.MsgTradeRequestAccepted, model.EventTradeRequestAccepted)
	}
	return s.settleQuick(ctx, req)
}

// openRoom accepts the request and creates its private trade room in one transaction.
// Accepted is not terminal here, so finishedAt stays unset.
func (s *TradeRequestServiceImpl) openRoom(ctx context.Context, req *model.TradeRequest, message, event string) (*model.AcceptResult, error) {
	var trade *model.Trade
	err := s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		ok, err := s.repos.TradeRequests.TransitionFromPending(ctx, req.ID, model.RequestAccepted, nil, tx)
		if err != nil {
			return fmt.Errorf("accept request: %w", err)
		}
		if !ok {
			return model.ErrRequestNotPending
		}

		trade = &model.Trade{
			InitiatorUserID: req.FromUserID,
			ReceiverUserID:  req.ToUserID,
			TradeType:       model.TradeTypePrivate,
			Status:          model.TradePending,
			Origin:          model.OriginRequest,
			RequestID:       &req.ID,
			RequestedCardID: req.CardID,
		}
		if err := createTrade(ctx, s.repos.Trades, trade, s.roomCode, tx); err != nil {
			return err
		}
		if _, err := s.repos.TradeRequests.LinkTrade(ctx, req.ID, trade.ID, tx); err != nil {
			return fmt.Errorf("link trade: %w", err)
		}
		if err := s.repos.Invitations.Create(ctx, &model.RoomInvitation{RoomCode: trade.RoomCode, UserID: req.FromUserID}, tx); err != nil {
			return fmt.Errorf("create room invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req.Status = model.RequestAccepted
	req.FinishedAt = nil
	req.TradeID = &trade.ID

	s.logger.Info().
		Int64("request_id", req.ID).
		Int64("trade_id", trade.ID).
		Str("room_code", trade.RoomCode).
		Msg("trade room opened")

	s.notifier.Emit(ctx, req.FromUserID, model.NotificationDraft{
		Event:   event,
		Title:   "Trade request accepted",
		Message: fmt.Sprintf("Your trade request was accepted. Join room %s", trade.RoomCode),
		Data:    map[string]any{"requestId": req.ID, "tradeId": trade.ID, "roomCode": trade.RoomCode},
	})

	return &model.AcceptResult{
		Message:  message,
		Request:  req,
		TradeID:  trade.ID,
		RoomCode: trade.RoomCode,
	}, nil
}

// settleQuick swaps the two committed cards and closes request and trade together
func (s *TradeRequestServiceImpl) settleQuick(ctx context.Context, req *model.TradeRequest) (*model.AcceptResult, error) {
	offeredUC, targetUC, err := s.resolveQuickCards(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := checkPriceParity(req.OfferedPrice, req.TargetPrice, s.maxRatio); err != nil {
		return nil, err
	}

	now := s.now()
	var trade *model.Trade
	err = s.repos.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
		ok, err := s.repos.TradeRequests.TransitionFromPending(ctx, req.ID, model.RequestCompleted, &now, tx)
		if err != nil {
			return fmt.Errorf("complete request: %w", err)
		}
		if !ok {
			return model.ErrRequestNotPending
		}

		trade = &model.Trade{
			InitiatorUserID:   req.FromUserID,
			ReceiverUserID:    req.ToUserID,
			InitiatorCards:    []model.TradeCard{{UserCardID: offeredUC.ID}},
			ReceiverCards:     []model.TradeCard{{UserCardID: targetUC.ID}},
			TradeType:         model.TradeTypePrivate,
			Status:            model.TradePending,
			Origin:            model.OriginQuickRequest,
			RequestID:         &req.ID,
			RequestedCardID:   req.CardID,
			InitiatorAccepted: true,
			ReceiverAccepted:  true,
		}
		if err := createTrade(ctx, s.repos.Trades, trade, s.roomCode, tx); err != nil {
			return err
		}
		if err := swapCards(ctx, s.inventory, offeredUC, targetUC, tx); err != nil {
			return err
		}
		completed, err := s.repos.Trades.CompleteIfAccepted(ctx, trade.ID, tx)
		if err != nil {
			return fmt.Errorf("complete trade: %w", err)
		}
		if !completed {
			return fmt.Errorf("complete trade %d: %w", trade.ID, model.ErrTradeNotPending)
		}
		if _, err := s.repos.TradeRequests.LinkTrade(ctx, req.ID, trade.ID, tx); err != nil {
			return fmt.Errorf("link trade: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	trade.Status = model.TradeCompleted
	trade.CompletedAt = &now
	req.Status = model.RequestCompleted
	req.FinishedAt = &now
	req.TradeID = &trade.ID

	s.logger.Info().
		Int64("request_id", req.ID).
		Int64("trade_id", trade.ID).
		Int64("offered_user_card_id", offeredUC.ID).
		Int64("target_user_card_id", targetUC.ID).
		Msg("quick trade settled")

	s.notifier.Emit(ctx, req.FromUserID, model.NotificationDraft{
		Event:   model.EventTradeCompleted,
		Title:   "Quick trade completed",
		Message: fmt.Sprintf("Your %s was traded for %s", req.OfferedCard.Name, req.CardName),
		Data:    map[string]any{"requestId": req.ID, "tradeId": trade.ID},
	})

	return &model.AcceptResult{
		Message: model.MsgQuickTradeCompleted,
		Request: req,
		TradeID: trade.ID,
	}, nil
}

// resolveQuickCards loads both committed cards, by explicit id when the request carries one
func (s *TradeRequestServiceImpl) resolveQuickCards(ctx context.Context, req *model.TradeRequest) (*model.UserCard, *model.UserCard, error) {
	var offeredUC, targetUC *model.UserCard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		uc, err := s.resolveCard(gctx, req.OfferedUserCardID, req.FromUserID, req.OfferedCard.CardID)
		offeredUC = uc
		return err
	})
	g.Go(func() error {
		uc, err := s.resolveCard(gctx, req.TargetUserCardID, req.ToUserID, *req.CardID)
		targetUC = uc
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return offeredUC, targetUC, nil
}

func (s *TradeRequestServiceImpl) resolveCard(ctx context.Context, userCardID *int64, ownerID int64, cardID string) (*model.UserCard, error) {
	if userCardID != nil {
		return ownedCard(ctx, s.repos.UserCards, *userCardID, ownerID)
	}
	return s.repos.UserCards.FindByOwnerAndCard(ctx, ownerID, cardID)
}

// checkPriceParity applies only when both prices are known and at least one is positive
func checkPriceParity(offered, target decimal.NullDecimal, maxRatio decimal.Decimal) error {
	if !offered.Valid || !target.Valid {
		return nil
	}
	highest := decimal.Max(offered.Decimal, target.Decimal)
	if !highest.IsPositive() {
		return nil
	}
	ratio := offered.Decimal.Sub(target.Decimal).Abs().Div(highest)
	if ratio.GreaterThan(maxRatio) {
		return &model.ValueMismatchError{
			Ratio:        ratio,
			OfferedPrice: offered.Decimal,
			TargetPrice:  target.Decimal,
		}
	}
	return nil
}
