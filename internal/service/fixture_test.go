package service

import (
	"card-trading/internal/config"
	"card-trading/internal/model"
	"card-trading/internal/repository/memory"
	svcmocks "card-trading/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

var testTradeConfig = config.TradeConfig{
	MaxPriceDiffRatio: 0.25,
	RoomCodeLength:    8,
	DefaultPageSize:   20,
	MaxPageSize:       100,
}

// fixture wires the services over the in-memory store with ash and misty seeded
type fixture struct {
	store     *memory.Store
	notifier  *svcmocks.Notifier
	repos     Repositories
	requests  TradeRequestService
	trades    TradeService
	reconcile ReconciliationService

	ash, misty, brock *model.User
}

func newFixture(t interface {
	mock.TestingT
	Cleanup(func())
}) *fixture {
	store := memory.New()
	notifier := svcmocks.NewNotifier(t)
	notifier.On("Emit", mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.On("EmitRoom", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	repos := memoryRepos(store)
	logger := zerolog.Nop()
	inventory := NewInventoryService(repos.UserCards, logger)

	f := &fixture{
		store:     store,
		notifier:  notifier,
		repos:     repos,
		requests:  NewTradeRequestService(repos, inventory, notifier, testTradeConfig, logger),
		trades:    NewTradeService(repos, inventory, notifier, testTradeConfig, logger),
		reconcile: NewReconciliationService(repos, notifier, config.WorkerConfig{ReconcileBatch: 50}, logger),
	}
	f.ash = store.AddUser("ash", "ash@example.com")
	f.misty = store.AddUser("misty", "misty@example.com")
	f.brock = store.AddUser("brock", "brock@example.com")
	store.AddCard(model.Card{ExternalID: "base1-4", Name: "Charizard", ImageSmall: "small.png", ImageLarge: "charizard.png"})
	store.AddCard(model.Card{ExternalID: "base1-2", Name: "Blastoise", ImageSmall: "blastoise.png"})
	return f
}

func memoryRepos(store *memory.Store) Repositories {
	return Repositories{
		DB:            store,
		Users:         store.Users,
		Cards:         store.Cards,
		UserCards:     store.UserCards,
		TradeRequests: store.TradeRequests,
		Trades:        store.Trades,
		Invitations:   store.RoomInvitations,
	}
}

// give seeds one copy of cardID for owner
func (f *fixture) give(owner *model.User, cardID string) *model.UserCard {
	return f.store.AddUserCard(model.UserCard{OwnerID: owner.ID, CardID: cardID, Name: cardID})
}

// quantityOf sums owner's copies of cardID
func (f *fixture) quantityOf(owner *model.User, cardID string) int {
	total := 0
	for _, uc := range f.store.Inventory(owner.ID) {
		if uc.CardID == cardID {
			total += uc.Quantity
		}
	}
	return total
}

func emitted(event string) any {
	return mock.MatchedBy(func(d model.NotificationDraft) bool { return d.Event == event })
}
