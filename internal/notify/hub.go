// Package notify delivers notifications: it stores them and pushes realtime
// events to websocket subscribers keyed by user and by trade room.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"card-trading/internal/config"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const pingPeriod = 30 * time.Second

// Event is the realtime envelope written to subscribers.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type subscriber struct {
	userID int64
	room   string
	send   chan []byte
}

// Hub fans events out to subscribers. Pushes never block: a subscriber whose
// buffer is full misses the event.
type Hub struct {
	mu    sync.RWMutex
	users map[int64]map[*subscriber]struct{}
	rooms map[string]map[*subscriber]struct{}

	sendBuffer   int
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
	logger       zerolog.Logger
}

func NewHub(cfg config.NotifyConfig, logger zerolog.Logger) *Hub {
	buffer := cfg.SendBuffer
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		users:        make(map[int64]map[*subscriber]struct{}),
		rooms:        make(map[string]map[*subscriber]struct{}),
		sendBuffer:   buffer,
		writeTimeout: cfg.WriteTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // the gateway in front enforces origins
			},
		},
		logger: logger,
	}
}

// Subscribe registers a channel for userID and, when room is set, for that room.
// The returned func unsubscribes and closes the channel; it is safe to call twice.
func (h *Hub) Subscribe(userID int64, room string) (<-chan []byte, func()) {
	sub := &subscriber{userID: userID, room: room, send: make(chan []byte, h.sendBuffer)}

	h.mu.Lock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[*subscriber]struct{})
	}
	h.users[userID][sub] = struct{}{}
	if room != "" {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*subscriber]struct{})
		}
		h.rooms[room][sub] = struct{}{}
	}
	h.mu.Unlock()

	var once sync.Once
	return sub.send, func() {
		once.Do(func() { h.remove(sub) })
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.users[sub.userID], sub)
	if len(h.users[sub.userID]) == 0 {
		delete(h.users, sub.userID)
	}
	if sub.room != "" {
		delete(h.rooms[sub.room], sub)
		if len(h.rooms[sub.room]) == 0 {
			delete(h.rooms, sub.room)
		}
	}
	close(sub.send)
}

// PushToUser returns how many subscribers received the event.
func (h *Hub) PushToUser(userID int64, event Event) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.deliver(h.users[userID], event)
}

// PushToRoom returns how many subscribers received the event.
func (h *Hub) PushToRoom(room string, event Event) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.deliver(h.rooms[room], event)
}

// deliver must be called with the read lock held so remove cannot close a channel mid-send
func (h *Hub) deliver(subs map[*subscriber]struct{}, event Event) (int, error) {
	if len(subs) == 0 {
		return 0, nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for sub := range subs {
		select {
		case sub.send <- payload:
			delivered++
		default:
			h.logger.Warn().Int64("user_id", sub.userID).Str("event", event.Type).Msg("subscriber buffer full, event dropped")
		}
	}
	return delivered, nil
}

// ServeWS upgrades the request and streams events until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID int64, room string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Int64("user_id", userID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	send, unsubscribe := h.Subscribe(userID, room)
	defer unsubscribe()

	h.logger.Debug().Int64("user_id", userID).Str("room_code", room).Msg("websocket client connected")

	// Reads only detect the close; clients do not send anything meaningful.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-send:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug().Err(err).Int64("user_id", userID).Msg("websocket write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				return
			}
		case <-closed:
			h.logger.Debug().Int64("user_id", userID).Msg("websocket client disconnected")
			return
		}
	}
}
