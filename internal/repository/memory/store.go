// Package memory is an in-process implementation of the repository interfaces.
// Every write is a conditional update under a single mutex, which gives the same
// compare-and-swap guarantees as the postgres queries. Transactions run one at a
// time and undo their writes when fn fails.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

type state struct {
	mu   sync.Mutex
	txMu sync.Mutex
	seq  int64
	now  func() time.Time

	users       map[int64]*model.User
	cards       map[string]*model.Card
	userCards   map[int64]*model.UserCard
	requests    map[int64]*model.TradeRequest
	trades      map[int64]*model.Trade
	notes       map[int64]*model.Notification
	invitations map[int64]*model.RoomInvitation
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store bundles one repository per table over shared state.
type Store struct {
	state *state

	Users           *UserRepository
	Cards           *CardRepository
	UserCards       *UserCardRepository
	TradeRequests   *TradeRequestRepository
	Trades          *TradeRepository
	Notifications   *NotificationRepository
	RoomInvitations *RoomInvitationRepository
}

var _ repository.DBManager = (*Store)(nil)

func New() *Store {
	st := &state{
		now:         func() time.Time { return time.Now().UTC() },
		users:       make(map[int64]*model.User),
		cards:       make(map[string]*model.Card),
		userCards:   make(map[int64]*model.UserCard),
		requests:    make(map[int64]*model.TradeRequest),
		trades:      make(map[int64]*model.Trade),
		notes:       make(map[int64]*model.Notification),
		invitations: make(map[int64]*model.RoomInvitation),
	}
	return &Store{
		state:           st,
		Users:           &UserRepository{st},
		Cards:           &CardRepository{st},
		UserCards:       &UserCardRepository{st},
		TradeRequests:   &TradeRequestRepository{st},
		Trades:          &TradeRepository{st},
		Notifications:   &NotificationRepository{st},
		RoomInvitations: &RoomInvitationRepository{st},
	}
}

// WithTransaction runs fn with a tx that journals every write made through it.
// An error or panic from fn replays the journal backwards.
func (s *Store) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state.txMu.Lock()
	defer s.state.txMu.Unlock()

	tx := &memTx{}
	committed := false
	defer func() {
		if !committed {
			s.state.rollback(tx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// memTx carries the undo journal. The embedded pgx.Tx is nil: repositories only
// use the value to find the journal.
type memTx struct {
	pgx.Tx
	undo []func()
}

func (s *state) rollback(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func txOf(tx []pgx.Tx) pgx.Tx {
	if len(tx) > 0 {
		return tx[0]
	}
	return nil
}

// remember journals the current value of m[id] so a failed transaction can put
// it back. Callers hold mu. Writes made outside a transaction are not journaled.
func remember[V any](tx pgx.Tx, m map[int64]*V, id int64) {
	mt, ok := tx.(*memTx)
	if !ok || mt == nil {
		return
	}
	if v, found := m[id]; found {
		prev := *v
		mt.undo = append(mt.undo, func() { m[id] = &prev })
		return
	}
	mt.undo = append(mt.undo, func() { delete(m, id) })
}

// SetClock overrides the time source used for timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.now = now
}

// AddUser seeds a user.
func (s *Store) AddUser(username, email string) *model.User {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	u := &model.User{ID: st.nextID(), Username: username, Email: email, CreatedAt: st.now()}
	st.users[u.ID] = u
	cp := *u
	return &cp
}

// AddCard seeds a catalog entry.
func (s *Store) AddCard(card model.Card) *model.Card {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	card.ID = st.nextID()
	st.cards[card.ExternalID] = &card
	cp := card
	return &cp
}

// AddUserCard seeds an ownership record as given, without merging.
func (s *Store) AddUserCard(uc model.UserCard) *model.UserCard {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if uc.Quantity == 0 {
		uc.Quantity = 1
	}
	if uc.Condition == "" {
		uc.Condition = model.DefaultCondition
	}
	if uc.CollectionType == "" {
		uc.CollectionType = model.DefaultCollectionType
	}
	uc.ID = st.nextID()
	uc.CreatedAt = st.now()
	uc.UpdatedAt = uc.CreatedAt
	st.userCards[uc.ID] = &uc
	cp := uc
	return &cp
}

// Inventory returns every record owned by ownerID, for inspection.
func (s *Store) Inventory(ownerID int64) []model.UserCard {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	var out []model.UserCard
	for _, uc := range st.userCards {
		if uc.OwnerID == ownerID {
			out = append(out, *uc)
		}
	}
	return out
}

// SeedDemo loads a small fixture set for local runs.
func (s *Store) SeedDemo() {
	ash := s.AddUser("ash", "ash@example.com")
	misty := s.AddUser("misty", "misty@example.com")
	s.AddUser("brock", "brock@example.com")

	for _, c := range []model.Card{
		{ExternalID: "base1-4", Name: "Charizard", ImageLarge: "https://images.pokemontcg.io/base1/4_hires.png"},
		{ExternalID: "base1-2", Name: "Blastoise", ImageLarge: "https://images.pokemontcg.io/base1/2_hires.png"},
		{ExternalID: "base1-15", Name: "Venusaur", ImageLarge: "https://images.pokemontcg.io/base1/15_hires.png"},
	} {
		s.AddCard(c)
	}

	s.AddUserCard(model.UserCard{OwnerID: ash.ID, CardID: "base1-4", Name: "Charizard", ForTrade: true, IsPublic: true})
	s.AddUserCard(model.UserCard{OwnerID: misty.ID, CardID: "base1-2", Name: "Blastoise", ForTrade: true, IsPublic: true})
	s.AddUserCard(model.UserCard{OwnerID: misty.ID, CardID: "base1-15", Name: "Venusaur", Quantity: 2, IsPublic: true})
}

func unorderedPair(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

func equalFoldTrim(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
