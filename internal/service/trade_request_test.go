package service

import (
	"context"
	"errors"
	"testing"

	"card-trading/internal/model"
	repomocks "card-trading/mocks/repository"
	svcmocks "card-trading/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cardRequest(receiver, cardID string) *model.CreateTradeRequestInput {
	return &model.CreateTradeRequestInput{ReceiverIdentifier: receiver, CardID: cardID}
}

func quickRequest(receiver, cardID, offeredID string) *model.CreateTradeRequestInput {
	return &model.CreateTradeRequestInput{
		ReceiverIdentifier: receiver,
		CardID:             cardID,
		OfferedCard:        &model.OfferedCard{CardID: offeredID},
	}
}

func TestCreateTradeRequest_FillsCardFromCatalog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req, err := f.requests.Create(ctx, f.ash.ID, cardRequest("Misty", "base1-4"))

	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, req.Status)
	assert.Equal(t, f.ash.ID, req.FromUserID)
	assert.Equal(t, f.misty.ID, req.ToUserID)
	assert.Equal(t, "Charizard", req.CardName)
	assert.Equal(t, "charizard.png", req.CardImage)
	assert.Nil(t, req.FinishedAt)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.misty.ID, emitted(model.EventTradeRequestCreated))
}

func TestCreateTradeRequest_KeepsProvidedCardDetails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := cardRequest("misty", "base1-4")
	in.CardName = "My Charizard"
	in.CardImage = "mine.png"
	req, err := f.requests.Create(ctx, f.ash.ID, in)

	require.NoError(t, err)
	assert.Equal(t, "My Charizard", req.CardName)
	assert.Equal(t, "mine.png", req.CardImage)
}

func TestCreateTradeRequest_ResolvesReceiverByEmailAndID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	byEmail, err := f.requests.Create(ctx, f.ash.ID, cardRequest("MISTY@example.com", "base1-4"))
	require.NoError(t, err)
	assert.Equal(t, f.misty.ID, byEmail.ToUserID)

	byID, err := f.requests.Create(ctx, f.ash.ID, &model.CreateTradeRequestInput{ReceiverIdentifier: "3", IsManual: true})
	require.NoError(t, err)
	assert.Equal(t, f.brock.ID, byID.ToUserID)
}

func TestCreateTradeRequest_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  func(f *fixture) int64
		in      *model.CreateTradeRequestInput
		wantErr error
	}{
		{
			name:    "anonymous caller",
			caller:  func(f *fixture) int64 { return 0 },
			in:      cardRequest("misty", "base1-4"),
			wantErr: model.ErrCallerRequired,
		},
		{
			name:    "self trade by username",
			caller:  func(f *fixture) int64 { return f.ash.ID },
			in:      cardRequest("ASH", "base1-4"),
			wantErr: model.ErrSelfTrade,
		},
		{
			name:    "unknown receiver",
			caller:  func(f *fixture) int64 { return f.ash.ID },
			in:      cardRequest("gary", "base1-4"),
			wantErr: model.ErrReceiverNotFound,
		},
		{
			name:    "missing card",
			caller:  func(f *fixture) int64 { return f.ash.ID },
			in:      cardRequest("misty", " "),
			wantErr: model.ErrCardRequired,
		},
		{
			name:    "missing receiver",
			caller:  func(f *fixture) int64 { return f.ash.ID },
			in:      cardRequest("", "base1-4"),
			wantErr: model.ErrReceiverRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.requests.Create(ctx, tt.caller(f), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTradeRequest_GuardIsSymmetric(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	require.NoError(t, err)

	_, err = f.requests.Create(ctx, f.misty.ID, cardRequest("ash", "base1-4"))
	assert.ErrorIs(t, err, model.ErrTradeAlreadyExists)

	// other cards and manual rooms are scoped separately
	_, err = f.requests.Create(ctx, f.misty.ID, cardRequest("ash", "base1-2"))
	assert.NoError(t, err)
	_, err = f.requests.Create(ctx, f.misty.ID, &model.CreateTradeRequestInput{ReceiverIdentifier: "ash", IsManual: true})
	assert.NoError(t, err)
	_, err = f.requests.Create(ctx, f.ash.ID, &model.CreateTradeRequestInput{ReceiverIdentifier: "misty", IsManual: true})
	assert.ErrorIs(t, err, model.ErrTradeAlreadyExists)
}

func TestCreateTradeRequest_GuardReleasedAfterReject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	require.NoError(t, err)
	_, err = f.requests.Reject(ctx, first.ID, f.misty.ID)
	require.NoError(t, err)

	_, err = f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	assert.NoError(t, err)
}

func TestCreateQuickRequest_DefaultsOfferedName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req, err := f.requests.Create(ctx, f.ash.ID, quickRequest("misty", "base1-2", "base1-999"))

	require.NoError(t, err)
	assert.True(t, req.IsQuick())
	assert.Equal(t, model.DefaultOfferedCardName, req.OfferedCard.Name)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.misty.ID, emitted(model.EventTradeRequestCreated))
}

func TestCreateQuickRequest_BackfillsOfferedCardFromCatalog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	offered := f.give(f.ash, "base1-4")

	in := quickRequest("misty", "base1-2", "base1-4")
	in.OfferedUserCardID = &offered.ID
	req, err := f.requests.Create(ctx, f.ash.ID, in)

	require.NoError(t, err)
	assert.Equal(t, "Charizard", req.OfferedCard.Name)
	assert.Equal(t, "charizard.png", req.OfferedCard.Image)
}

func TestCreateQuickRequest_RejectsForeignUserCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	notMine := f.give(f.brock, "base1-4")

	in := quickRequest("misty", "base1-2", "base1-4")
	in.OfferedUserCardID = &notMine.ID
	_, err := f.requests.Create(ctx, f.ash.ID, in)

	assert.ErrorIs(t, err, model.ErrUserCardNotOwned)
}

func TestRejectTradeRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	require.NoError(t, err)

	_, err = f.requests.Reject(ctx, req.ID, f.ash.ID)
	assert.ErrorIs(t, err, model.ErrNotRequestReceiver)

	rejected, err := f.requests.Reject(ctx, req.ID, f.misty.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, rejected.Status)
	assert.NotNil(t, rejected.FinishedAt)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.ash.ID, emitted(model.EventTradeRequestRejected))

	_, err = f.requests.Reject(ctx, req.ID, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrRequestNotPending)
	_, err = f.requests.Cancel(ctx, req.ID, f.ash.ID)
	assert.ErrorIs(t, err, model.ErrRequestNotPending)
}

func TestCancelTradeRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	require.NoError(t, err)

	_, err = f.requests.Cancel(ctx, req.ID, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrNotRequestSender)

	cancelled, err := f.requests.Cancel(ctx, req.ID, f.ash.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestCancelled, cancelled.Status)
	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.misty.ID, emitted(model.EventTradeRequestCancelled))

	_, err = f.requests.Accept(ctx, req.ID, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrRequestNotPending)
}

func TestRespondToUnknownRequest(t *testing.T) {
	f := newFixture(t)
	_, err := f.requests.Reject(context.Background(), 9999, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrTradeRequestNotFound)
}

func TestOpenRoom_CreatesLinkedPrivateTrade(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req, err := f.requests.Create(ctx, f.ash.ID, &model.CreateTradeRequestInput{ReceiverIdentifier: "misty", IsManual: true})
	require.NoError(t, err)

	result, err := f.requests.OpenRoom(ctx, req.ID, f.misty.ID)

	require.NoError(t, err)
	assert.Equal(t, model.MsgTradeRoomOpened, result.Message)
	assert.Len(t, result.RoomCode, 8)
	assert.Equal(t, model.RequestAccepted, result.Request.Status)
	assert.Nil(t, result.Request.FinishedAt)

	trade, err := f.trades.GetByRoomCode(ctx, result.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, result.TradeID, trade.ID)
	assert.Equal(t, model.TradeTypePrivate, trade.TradeType)
	assert.Equal(t, model.OriginRequest, trade.Origin)
	assert.Equal(t, req.ID, *trade.RequestID)

	stored, err := f.store.TradeRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TradeID)
	assert.Equal(t, trade.ID, *stored.TradeID)

	invitations := f.store.Invitations(result.RoomCode)
	require.Len(t, invitations, 1)
	assert.Equal(t, f.ash.ID, invitations[0].UserID)
	assert.Equal(t, model.InvitationOpen, invitations[0].State)

	sent, err := f.requests.ListSent(ctx, f.ash.ID, f.ash.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.NotNil(t, sent[0].RoomCode)
	assert.Equal(t, result.RoomCode, *sent[0].RoomCode)
	assert.Equal(t, "misty", sent[0].Counterpart.Username)

	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.ash.ID, emitted(model.EventTradeRoomOpened))
}

func TestAccept_CardRequestOpensRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-2"))
	require.NoError(t, err)

	result, err := f.requests.Accept(ctx, req.ID, f.misty.ID)

	require.NoError(t, err)
	assert.Equal(t, model.MsgTradeRequestAccepted, result.Message)
	assert.NotEmpty(t, result.RoomCode)

	trade, err := f.trades.Get(ctx, result.TradeID)
	require.NoError(t, err)
	assert.Equal(t, "base1-2", *trade.RequestedCardID)
	assert.Equal(t, model.TradePending, trade.Status)
}

func TestAccept_QuickRequestSwapsCards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.give(f.ash, "base1-4")
	f.give(f.misty, "base1-2")

	req, err := f.requests.Create(ctx, f.ash.ID, quickRequest("misty", "base1-2", "base1-4"))
	require.NoError(t, err)

	result, err := f.requests.Accept(ctx, req.ID, f.misty.ID)

	require.NoError(t, err)
	assert.Equal(t, model.MsgQuickTradeCompleted, result.Message)
	assert.Empty(t, result.RoomCode)
	assert.Equal(t, model.RequestCompleted, result.Request.Status)
	assert.NotNil(t, result.Request.FinishedAt)

	assert.Equal(t, 0, f.quantityOf(f.ash, "base1-4"))
	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-2"))
	assert.Equal(t, 1, f.quantityOf(f.misty, "base1-4"))
	assert.Equal(t, 0, f.quantityOf(f.misty, "base1-2"))

	trade, err := f.trades.Get(ctx, result.TradeID)
	require.NoError(t, err)
	assert.Equal(t, model.TradeCompleted, trade.Status)
	assert.Equal(t, model.OriginQuickRequest, trade.Origin)
	assert.True(t, trade.BothAccepted())
	assert.NotNil(t, trade.CompletedAt)

	f.notifier.AssertCalled(t, "Emit", mock.Anything, f.ash.ID, emitted(model.EventTradeCompleted))
}

// flakyInventory fails transfer number failOn and delegates the others
type flakyInventory struct {
	InventoryService
	calls  int
	failOn int
}

func (i *flakyInventory) TransferOneCopy(ctx context.Context, source *model.UserCard, toUserID int64, tx pgx.Tx) (*model.UserCard, error) {
	i.calls++
	if i.calls == i.failOn {
		return nil, errors.New("credit failed")
	}
	return i.InventoryService.TransferOneCopy(ctx, source, toUserID, tx)
}

func TestAccept_QuickRequestFailedSwapLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.give(f.ash, "base1-4")
	f.store.AddUserCard(model.UserCard{OwnerID: f.misty.ID, CardID: "base1-2", Quantity: 2, ForTrade: true})

	req, err := f.requests.Create(ctx, f.ash.ID, quickRequest("misty", "base1-2", "base1-4"))
	require.NoError(t, err)

	inventory := &flakyInventory{InventoryService: NewInventoryService(f.repos.UserCards, zerolog.Nop()), failOn: 2}
	requests := NewTradeRequestService(f.repos, inventory, f.notifier, testTradeConfig, zerolog.Nop())
	_, err = requests.Accept(ctx, req.ID, f.misty.ID)
	require.Error(t, err)

	stored, err := f.repos.TradeRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, stored.Status)
	assert.Nil(t, stored.TradeID)
	assert.Nil(t, stored.FinishedAt)

	trades, err := f.trades.List(ctx, model.TradeFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, trades.Total)

	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-4"))
	assert.Equal(t, 0, f.quantityOf(f.ash, "base1-2"))
	assert.Equal(t, 2, f.quantityOf(f.misty, "base1-2"))
	assert.Equal(t, 0, f.quantityOf(f.misty, "base1-4"))

	// nothing was half-applied, so the request can still settle
	result, err := f.requests.Accept(ctx, req.ID, f.misty.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MsgQuickTradeCompleted, result.Message)
	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-2"))
	assert.Equal(t, 1, f.quantityOf(f.misty, "base1-4"))

	// the debited record keeps its last copy but leaves the trade list
	for _, uc := range f.store.Inventory(f.misty.ID) {
		if uc.CardID == "base1-2" {
			assert.Equal(t, 1, uc.Quantity)
			assert.False(t, uc.ForTrade)
		}
	}
}

func TestAccept_QuickRequestMergesIntoExistingRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.give(f.ash, "base1-4")
	f.give(f.misty, "base1-2")
	existing := f.give(f.misty, "base1-4")

	req, err := f.requests.Create(ctx, f.ash.ID, quickRequest("misty", "base1-2", "base1-4"))
	require.NoError(t, err)
	_, err = f.requests.Accept(ctx, req.ID, f.misty.ID)
	require.NoError(t, err)

	merged, err := f.store.UserCards.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Quantity)
	assert.False(t, merged.ForTrade)
}

func TestAccept_QuickRequestPriceGate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		offered int64
		target  int64
		wantErr bool
	}{
		{name: "within ratio", offered: 100, target: 124},
		{name: "too far apart", offered: 100, target: 140, wantErr: true},
		{name: "both zero", offered: 0, target: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.give(f.ash, "base1-4")
			f.give(f.misty, "base1-2")

			offered := decimal.NewFromInt(tt.offered)
			target := decimal.NewFromInt(tt.target)
			in := quickRequest("misty", "base1-2", "base1-4")
			in.OfferedPrice = &offered
			in.TargetPrice = &target
			req, err := f.requests.Create(ctx, f.ash.ID, in)
			require.NoError(t, err)

			_, err = f.requests.Accept(ctx, req.ID, f.misty.ID)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var mismatch *model.ValueMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.True(t, errors.Is(err, model.ErrValueMismatch))
			assert.Equal(t, "0.286", mismatch.Ratio.StringFixed(3))

			// nothing moved and the request can still be answered
			assert.Equal(t, 1, f.quantityOf(f.ash, "base1-4"))
			assert.Equal(t, 1, f.quantityOf(f.misty, "base1-2"))
			stored, err := f.store.TradeRequests.GetByID(ctx, req.ID)
			require.NoError(t, err)
			assert.Equal(t, model.RequestPending, stored.Status)
		})
	}
}

func TestAccept_QuickRequestMissingCard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.give(f.ash, "base1-4")

	req, err := f.requests.Create(ctx, f.ash.ID, quickRequest("misty", "base1-2", "base1-4"))
	require.NoError(t, err)

	_, err = f.requests.Accept(ctx, req.ID, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrUserCardNotFound)
	assert.Equal(t, 1, f.quantityOf(f.ash, "base1-4"))
}

func TestListTradeRequests_OnlyOwnLists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.requests.Create(ctx, f.ash.ID, cardRequest("misty", "base1-4"))
	require.NoError(t, err)

	received, err := f.requests.ListReceived(ctx, f.misty.ID, f.misty.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "ash", received[0].Counterpart.Username)

	_, err = f.requests.ListReceived(ctx, f.ash.ID, f.misty.ID)
	assert.ErrorIs(t, err, model.ErrListForbidden)
	_, err = f.requests.ListSent(ctx, 0, f.ash.ID)
	assert.ErrorIs(t, err, model.ErrCallerRequired)
}

func TestCreateTradeRequest_RepositoryConflictSurfaces(t *testing.T) {
	ctx := context.Background()

	users := repomocks.NewUserRepository(t)
	requests := repomocks.NewTradeRequestRepository(t)
	cards := repomocks.NewCardRepository(t)
	notifier := svcmocks.NewNotifier(t)

	users.On("GetByID", ctx, int64(1)).Return(&model.User{ID: 1, Username: "ash"}, nil)
	users.On("FindByIdentifier", ctx, "misty").Return(&model.User{ID: 2, Username: "misty"}, nil)
	requests.On("ExistsPendingBetween", ctx, int64(1), int64(2), model.Discriminator{CardID: "base1-4"}).Return(false, nil)
	cards.On("GetByExternalID", ctx, "base1-4").Return(nil, model.ErrCardNotFound)
	// a concurrent insert won the unique index
	requests.On("Create", ctx, mock.MatchedBy(func(r *model.TradeRequest) bool {
		return r.GuardKey == "card:base1-4" && r.Status == model.RequestPending
	})).Return(model.ErrTradeAlreadyExists)

	svc := NewTradeRequestService(Repositories{Users: users, TradeRequests: requests, Cards: cards}, nil, notifier, testTradeConfig, zerolog.Nop())

	_, err := svc.Create(ctx, 1, cardRequest("misty", "base1-4"))
	assert.ErrorIs(t, err, model.ErrTradeAlreadyExists)
	notifier.AssertNotCalled(t, "Emit", mock.Anything, int64(2), mock.Anything)
}
