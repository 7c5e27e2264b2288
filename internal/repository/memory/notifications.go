package memory

import (
	"context"
	"maps"
	"slices"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	_ repository.NotificationRepository   = (*NotificationRepository)(nil)
	_ repository.RoomInvitationRepository = (*RoomInvitationRepository)(nil)
)

type NotificationRepository struct{ *state }

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.ID = r.nextID()
	n.CreatedAt = r.now()
	stored := *n
	stored.Data = maps.Clone(n.Data)
	r.notes[stored.ID] = &stored
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*model.Notification{}
	for _, n := range r.notes {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *model.Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.IsRead = true
	return true, nil
}

type RoomInvitationRepository struct{ *state }

func (r *RoomInvitationRepository) Create(ctx context.Context, inv *model.RoomInvitation, tx ...pgx.Tx) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inv.State == "" {
		inv.State = model.InvitationOpen
	}
	now := r.now()
	inv.ID = r.nextID()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	stored := *inv
	remember(txOf(tx), r.invitations, stored.ID)
	r.invitations[stored.ID] = &stored
	return nil
}

func (r *RoomInvitationRepository) UpdateStateForRoom(ctx context.Context, roomCode string, to model.InvitationState, tx pgx.Tx) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, inv := range r.invitations {
		if inv.RoomCode == roomCode && inv.State != to {
			remember(tx, r.invitations, id)
			inv.State = to
			inv.UpdatedAt = r.now()
			n++
		}
	}
	return n, nil
}

// Invitations returns the invitations for a room, for inspection.
func (s *Store) Invitations(roomCode string) []model.RoomInvitation {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	var out []model.RoomInvitation
	for _, inv := range st.invitations {
		if inv.RoomCode == roomCode {
			out = append(out, *inv)
		}
	}
	return out
}
