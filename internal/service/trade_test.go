package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"card-trading/internal/model"
	repomocks "card-trading/mocks/repository"
	svcmocks "card-trading/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// openTrade creates a room from ash to misty with one card each
func (f *fixture) openTrade(t *testing.T) (trade *model.Trade, ashCard, mistyCard *model.UserCard) {
	t.Helper()
	ctx := context.Background()
	ashCard = f.give(f.ash, "base1-4")
	mistyCard = f.give(f.misty, "base1-2")

	created, err := f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty", Origin: "direct"})
	require.NoError(t, err)
	trade, err = f.trades.Get(ctx, created.TradeID)
	require.NoError(t, err)
	return trade, ashCard, mistyCard
}

func TestCreateTrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	result, err := f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty"})

	require.NoError(t, err)
	assert.Equal(t, model.MsgTradeCreated, result.Message)
	assert.Len(t, result.RoomCode, 8)

	trade, err := f.trades.Get(ctx, result.TradeID)
	require.NoError(t, err)
	assert.Equal(t, model.TradePending, trade.Status)
	assert.Equal(t, model.TradeTypePrivate, trade.TradeType)
	assert.Equal(t, model.OriginRequest, trade.Origin)
	assert.Empty(t, trade.InitiatorCards)
	assert.Empty(t, trade.Messages)

	invitations := f.store.Invitations(result.RoomCode)
	require.Len(t, invitations, 1)
	assert.Equal(t, f.misty.ID, invitations[0].UserID)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.misty.ID, emitted(model.EventTradeInvitation))
}

func TestCreateTrade_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{})
	assert.ErrorIs(t, err, model.ErrReceiverRequired)
	_, err = f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty", TradeType: "secret"})
	assert.ErrorIs(t, err, model.ErrInvalidTradeType)
	_, err = f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty", Origin: "mail"})
	assert.ErrorIs(t, err, model.ErrInvalidOrigin)
	_, err = f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "ash"})
	assert.ErrorIs(t, err, model.ErrSelfTrade)
	_, err = f.trades.Create(ctx, 0, &model.CreateTradeInput{ReceiverIdentifier: "misty"})
	assert.ErrorIs(t, err, model.ErrCallerRequired)
}

func TestCompleteTrade_BothSidesSettle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, ashCard, mistyCard := f.openTrade(t)

	first, err := f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{
		MyUserCardID:       ashCard.ID,
		OpponentUserCardID: mistyCard.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.MsgWaitingOtherUser, first.Message)
	assert.Equal(t, model.TradePending, first.Status)
	assert.True(t, first.InitiatorAccepted)
	assert.False(t, first.ReceiverAccepted)
	f.notifier.AssertCalled(t, "EmitRoom", mock.Anything, trade.RoomCode, model.EventTradeAccepted, mock.Anything)

	second, err := f.trades.Complete(ctx, trade.ID, f.misty.ID, model.CompleteTradeInput{
		MyUserCardID:       mistyCard.ID,
		OpponentUserCardID: ashCard.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.MsgTradeCompleted, second.Message)
	assert.Equal(t, model.TradeCompleted, second.Status)

	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-2"))
	assert.Equal(t, 0, f.quantityOf(f.ash, "base1-4"))
	assert.Equal(t, 1, f.quantityOf(f.misty, "base1-4"))
	assert.Equal(t, 0, f.quantityOf(f.misty, "base1-2"))

	settled, err := f.trades.Get(ctx, trade.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TradeCompleted, settled.Status)
	assert.NotNil(t, settled.CompletedAt)
	// the committed cards stay on the trade as its settlement record
	assert.Equal(t, []model.TradeCard{{UserCardID: ashCard.ID}}, settled.InitiatorCards)
	assert.Equal(t, []model.TradeCard{{UserCardID: mistyCard.ID}}, settled.ReceiverCards)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.ash.ID, emitted(model.EventTradeCompleted))
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.misty.ID, emitted(model.EventTradeCompleted))
	f.notifier.AssertCalled(t, "EmitRoom", mock.Anything, trade.RoomCode, model.EventTradeCompleted, mock.Anything)

	_, err = f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{MyUserCardID: ashCard.ID, OpponentUserCardID: mistyCard.ID})
	assert.ErrorIs(t, err, model.ErrTradeNotPending)
}

func TestCompleteTrade_FailedSettlementKeepsAcceptanceOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, ashCard, mistyCard := f.openTrade(t)

	_, err := f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{MyUserCardID: ashCard.ID, OpponentUserCardID: mistyCard.ID})
	require.NoError(t, err)
	// ash's committed copy leaves the collection before misty accepts
	_, err = f.store.UserCards.RemoveCopy(ctx, ashCard.ID, nil)
	require.NoError(t, err)

	in := model.CompleteTradeInput{MyUserCardID: mistyCard.ID, OpponentUserCardID: ashCard.ID}
	_, err = f.trades.Complete(ctx, trade.ID, f.misty.ID, in)
	assert.ErrorIs(t, err, model.ErrUserCardNotFound)

	current, err := f.trades.Get(ctx, trade.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TradePending, current.Status)
	assert.True(t, current.InitiatorAccepted)
	assert.False(t, current.ReceiverAccepted)
	assert.Empty(t, current.ReceiverCards)
	assert.Equal(t, 1, f.quantityOf(f.misty, "base1-2"))

	// a retry reports the same cause instead of "already accepted"
	_, err = f.trades.Complete(ctx, trade.ID, f.misty.ID, in)
	assert.ErrorIs(t, err, model.ErrUserCardNotFound)
}

func TestCompleteTrade_CallerNeverWritesOpponentSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, ashCard, mistyCard := f.openTrade(t)
	brockCard := f.give(f.brock, "base1-4")

	// receiver goes first and names a card the initiator never committed
	_, err := f.trades.Complete(ctx, trade.ID, f.misty.ID, model.CompleteTradeInput{
		MyUserCardID:       mistyCard.ID,
		OpponentUserCardID: brockCard.ID,
	})
	require.NoError(t, err)

	stored, err := f.trades.Get(ctx, trade.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.InitiatorCards)
	require.Len(t, stored.ReceiverCards, 1)
	assert.Equal(t, mistyCard.ID, stored.ReceiverCards[0].UserCardID)

	// once a card is committed the opponent id must match it
	_, err = f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{
		MyUserCardID:       ashCard.ID,
		OpponentUserCardID: brockCard.ID,
	})
	assert.ErrorIs(t, err, model.ErrOpponentCardMismatch)
	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-4"))
}

func TestCompleteTrade_AcceptanceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, ashCard, mistyCard := f.openTrade(t)
	otherCard := f.give(f.ash, "base1-15")

	in := model.CompleteTradeInput{MyUserCardID: ashCard.ID, OpponentUserCardID: mistyCard.ID}
	_, err := f.trades.Complete(ctx, trade.ID, f.ash.ID, in)
	require.NoError(t, err)

	_, err = f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{MyUserCardID: otherCard.ID, OpponentUserCardID: mistyCard.ID})
	assert.ErrorIs(t, err, model.ErrAlreadyAccepted)

	stored, err := f.trades.Get(ctx, trade.ID)
	require.NoError(t, err)
	require.Len(t, stored.InitiatorCards, 1)
	assert.Equal(t, ashCard.ID, stored.InitiatorCards[0].UserCardID)
}

func TestCompleteTrade_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  func(f *fixture) int64
		in      func(ash, misty *model.UserCard) model.CompleteTradeInput
		wantErr error
	}{
		{
			name:   "missing card ids",
			caller: func(f *fixture) int64 { return f.ash.ID },
			in: func(ash, misty *model.UserCard) model.CompleteTradeInput {
				return model.CompleteTradeInput{MyUserCardID: ash.ID}
			},
			wantErr: model.ErrCardIDsRequired,
		},
		{
			name:   "not a participant",
			caller: func(f *fixture) int64 { return f.brock.ID },
			in: func(ash, misty *model.UserCard) model.CompleteTradeInput {
				return model.CompleteTradeInput{MyUserCardID: ash.ID, OpponentUserCardID: misty.ID}
			},
			wantErr: model.ErrNotTradeParticipant,
		},
		{
			name:   "card owned by someone else",
			caller: func(f *fixture) int64 { return f.ash.ID },
			in: func(ash, misty *model.UserCard) model.CompleteTradeInput {
				return model.CompleteTradeInput{MyUserCardID: misty.ID, OpponentUserCardID: misty.ID}
			},
			wantErr: model.ErrUserCardNotOwned,
		},
		{
			name:   "anonymous",
			caller: func(f *fixture) int64 { return 0 },
			in: func(ash, misty *model.UserCard) model.CompleteTradeInput {
				return model.CompleteTradeInput{MyUserCardID: ash.ID, OpponentUserCardID: misty.ID}
			},
			wantErr: model.ErrCallerRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			trade, ashCard, mistyCard := f.openTrade(t)

			_, err := f.trades.Complete(ctx, trade.ID, tt.caller(f), tt.in(ashCard, mistyCard))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompleteTrade_SettlesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, ashCard, mistyCard := f.openTrade(t)

	_, err := f.trades.Complete(ctx, trade.ID, f.ash.ID, model.CompleteTradeInput{MyUserCardID: ashCard.ID, OpponentUserCardID: mistyCard.ID})
	require.NoError(t, err)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.trades.Complete(ctx, trade.ID, f.misty.ID, model.CompleteTradeInput{MyUserCardID: mistyCard.ID, OpponentUserCardID: ashCard.ID})
			if err != nil {
				assert.True(t, model.IsBusinessError(err), "unexpected error: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Message == model.MsgTradeCompleted {
				completed++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-2"))
	assert.Equal(t, 1, f.quantityOf(f.misty, "base1-4"))
	assert.Equal(t, 0, f.quantityOf(f.ash, "base1-4"))
	assert.Equal(t, 0, f.quantityOf(f.misty, "base1-2"))
}

func TestCompleteTrade_LosingSettlementMovesNothing(t *testing.T) {
	ctx := context.Background()

	db := repomocks.NewDBManager(t)
	trades := repomocks.NewTradeRepository(t)
	userCards := repomocks.NewUserCardRepository(t)
	inventory := svcmocks.NewInventoryService(t)
	notifier := svcmocks.NewNotifier(t)

	pending := &model.Trade{
		ID:                7,
		InitiatorUserID:   1,
		ReceiverUserID:    2,
		RoomCode:          "ABCD1234",
		Status:            model.TradePending,
		InitiatorCards:    []model.TradeCard{{UserCardID: 10}},
		InitiatorAccepted: true,
	}
	accepted := *pending
	accepted.ReceiverCards = []model.TradeCard{{UserCardID: 20}}
	accepted.ReceiverAccepted = true

	db.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
	trades.On("GetByID", ctx, int64(7)).Return(pending, nil)
	userCards.On("GetByID", ctx, int64(20)).Return(&model.UserCard{ID: 20, OwnerID: 2, CardID: "base1-2", Quantity: 1}, nil)
	trades.On("RecordAcceptance", ctx, int64(7), model.RoleReceiver, int64(20), mock.Anything).Return(&accepted, nil)
	userCards.On("GetByID", ctx, int64(10), mock.Anything).Return(&model.UserCard{ID: 10, OwnerID: 1, CardID: "base1-4", Quantity: 1}, nil)
	userCards.On("GetByID", ctx, int64(20), mock.Anything).Return(&model.UserCard{ID: 20, OwnerID: 2, CardID: "base1-2", Quantity: 1}, nil)
	trades.On("CompleteIfAccepted", ctx, int64(7), mock.Anything).Return(false, nil)

	svc := NewTradeService(Repositories{DB: db, Trades: trades, UserCards: userCards}, inventory, notifier, testTradeConfig, zerolog.Nop())

	result, err := svc.Complete(ctx, 7, 2, model.CompleteTradeInput{MyUserCardID: 20, OpponentUserCardID: 10})

	require.NoError(t, err)
	assert.Equal(t, model.MsgTradeCompleted, result.Message)
	inventory.AssertNotCalled(t, "TransferOneCopy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTrade_RejectClosesRoomAndRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-2"))
	require.NoError(t, err)
	opened, err := f.requests.Accept(ctx, req.ID, f.misty.ID)
	require.NoError(t, err)

	rejected := model.TradeRejected
	updated, err := f.trades.Update(ctx, opened.TradeID, f.ash.ID, &model.TradePatch{Status: &rejected})

	require.NoError(t, err)
	assert.Equal(t, model.TradeRejected, updated.Status)
	_, err = f.store.TradeRequests.GetByID(ctx, req.ID)
	assert.ErrorIs(t, err, model.ErrTradeRequestNotFound)
	for _, inv := range f.store.Invitations(opened.RoomCode) {
		assert.Equal(t, model.InvitationClosed, inv.State)
	}
	f.notifier.AssertCalled(t, "EmitRoom", mock.Anything, opened.RoomCode, model.EventTradeRejected, mock.Anything)

	// terminal trades stay put
	cancelled := model.TradeCancelled
	_, err = f.trades.Update(ctx, opened.TradeID, f.misty.ID, &model.TradePatch{Status: &cancelled})
	assert.ErrorIs(t, err, model.ErrTradeNotPending)
	_, err = f.trades.Complete(ctx, opened.TradeID, f.misty.ID, model.CompleteTradeInput{MyUserCardID: 1, OpponentUserCardID: 2})
	assert.ErrorIs(t, err, model.ErrTradeNotPending)
}

func TestUpdateTrade_Rules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, _, _ := f.openTrade(t)

	completed := model.TradeCompleted
	_, err := f.trades.Update(ctx, trade.ID, f.ash.ID, &model.TradePatch{Status: &completed})
	assert.ErrorIs(t, err, model.ErrInvalidStatusTransition)

	_, err = f.trades.Update(ctx, trade.ID, f.brock.ID, &model.TradePatch{})
	assert.ErrorIs(t, err, model.ErrNotTradeMember)

	unchanged, err := f.trades.Update(ctx, trade.ID, f.misty.ID, &model.TradePatch{})
	require.NoError(t, err)
	assert.Equal(t, model.TradePending, unchanged.Status)

	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	messages := []model.TradeMessage{{UserID: f.ash.ID, Text: "deal?", SentAt: sentAt}}
	updated, err := f.trades.Update(ctx, trade.ID, f.ash.ID, &model.TradePatch{Messages: &messages})
	require.NoError(t, err)
	assert.Equal(t, model.TradePending, updated.Status)
	require.Len(t, updated.Messages, 1)
	assert.Equal(t, "deal?", updated.Messages[0].Text)
	f.notifier.AssertCalled(t, "EmitRoom", mock.Anything, trade.RoomCode, model.EventTradeUpdated, mock.Anything)
}

func TestListTrades_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		_, err := f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty"})
		require.NoError(t, err)
	}
	_, err := f.trades.Create(ctx, f.ash.ID, &model.CreateTradeInput{ReceiverIdentifier: "misty", TradeType: "public"})
	require.NoError(t, err)

	page, err := f.trades.List(ctx, model.TradeFilter{}, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)

	public := model.TradeTypePublic
	filtered, err := f.trades.List(ctx, model.TradeFilter{TradeType: &public}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), filtered.Total)
	assert.Equal(t, 1, filtered.Page)
	assert.Equal(t, testTradeConfig.DefaultPageSize, filtered.PageSize)

	clamped, err := f.trades.List(ctx, model.TradeFilter{}, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, testTradeConfig.MaxPageSize, clamped.PageSize)
}

func TestDeleteTrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	trade, _, _ := f.openTrade(t)

	assert.ErrorIs(t, f.trades.Delete(ctx, trade.ID, f.brock.ID), model.ErrNotTradeMember)
	require.NoError(t, f.trades.Delete(ctx, trade.ID, f.misty.ID))

	_, err := f.trades.Get(ctx, trade.ID)
	assert.ErrorIs(t, err, model.ErrTradeNotFound)
	assert.ErrorIs(t, f.trades.Delete(ctx, trade.ID, f.misty.ID), model.ErrTradeNotFound)
}
