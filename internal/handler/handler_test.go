package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-trading/internal/model"
	mocks "card-trading/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeRealtime struct {
	userID int64
	room   string
}

func (f *fakeRealtime) ServeWS(w http.ResponseWriter, r *http.Request, userID int64, room string) {
	f.userID = userID
	f.room = room
	w.WriteHeader(http.StatusSwitchingProtocols)
}

type testServer struct {
	requests      *mocks.TradeRequestService
	trades        *mocks.TradeService
	notifications *mocks.NotificationService
	realtime      *fakeRealtime
	router        *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	s := &testServer{
		requests:      mocks.NewTradeRequestService(t),
		trades:        mocks.NewTradeService(t),
		notifications: mocks.NewNotificationService(t),
		realtime:      &fakeRealtime{},
	}
	h := NewHandler(s.requests, s.trades, s.notifications, s.realtime, zerolog.Nop())
	s.router = h.SetupRoutes()
	return s
}

func (s *testServer) do(method, path, caller string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("X-User-ID", caller)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Health(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandler_CreateTradeRequest(t *testing.T) {
	s := newTestServer(t)
	card := "base1-4"
	s.requests.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in *model.CreateTradeRequestInput) bool {
		return in.ReceiverIdentifier == "misty" && in.CardID == "base1-4"
	})).Return(&model.TradeRequest{ID: 5, FromUserID: 1, ToUserID: 2, CardID: &card, Status: model.RequestPending}, nil)

	w := s.do(http.MethodPost, "/api/v1/trade-requests", "1", map[string]any{
		"receiverIdentifier": "misty",
		"pokemonCardId":      "base1-4",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.TradeRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, model.RequestPending, resp.Status)
}

func TestHandler_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "validation", err: model.ErrSelfTrade, status: http.StatusBadRequest, code: model.CodeValidation, message: "cannot trade with yourself"},
		{name: "unauthorized", err: model.ErrCallerRequired, status: http.StatusUnauthorized, code: model.CodeUnauthorized},
		{name: "not found", err: model.ErrReceiverNotFound, status: http.StatusNotFound, code: model.CodeNotFound},
		{name: "forbidden", err: model.ErrUserCardNotOwned, status: http.StatusForbidden, code: model.CodeForbidden},
		{name: "conflict", err: model.ErrTradeAlreadyExists, status: http.StatusConflict, code: model.CodeTradeAlreadyExists},
		{name: "infrastructure", err: errors.New("pq: connection refused"), status: http.StatusInternalServerError, code: model.CodeInternal, message: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.requests.On("Create", mock.Anything, int64(1), mock.Anything).Return(nil, tt.err)

			w := s.do(http.MethodPost, "/api/v1/trade-requests", "1", map[string]any{"receiverIdentifier": "misty", "pokemonCardId": "base1-4"})

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.code, resp.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Error)
			}
		})
	}
}

func TestHandler_CallerHeader(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/trade-requests", "abc", map[string]any{"receiverIdentifier": "misty"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/v1/trade-requests", "-4", map[string]any{"receiverIdentifier": "misty"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// no header reaches the service with an empty caller
	s.requests.On("Create", mock.Anything, int64(0), mock.Anything).Return(nil, model.ErrCallerRequired)
	w = s.do(http.MethodPost, "/api/v1/trade-requests", "", map[string]any{"receiverIdentifier": "misty"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InvalidBody(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/v1/trade-requests", "1", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.CodeValidation, decodeError(t, w).Code)
}

func TestHandler_AcceptValueMismatch(t *testing.T) {
	s := newTestServer(t)
	s.requests.On("Accept", mock.Anything, int64(5), int64(2)).Return(nil, &model.ValueMismatchError{
		Ratio:        decimal.RequireFromString("0.2857142857"),
		OfferedPrice: decimal.NewFromInt(100),
		TargetPrice:  decimal.NewFromInt(140),
	})

	w := s.do(http.MethodPost, "/api/v1/trade-requests/5/accept", "2", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, model.CodeTradeValueDiffTooHigh, resp.Code)
	assert.Equal(t, "0.286", resp.Details["ratio"])
}

func TestHandler_OpenRoomAndRespond(t *testing.T) {
	s := newTestServer(t)
	s.requests.On("OpenRoom", mock.Anything, int64(5), int64(2)).Return(&model.AcceptResult{
		Message:  model.MsgTradeRoomOpened,
		TradeID:  9,
		RoomCode: "ABCD1234",
	}, nil)
	s.requests.On("Reject", mock.Anything, int64(6), int64(2)).Return(nil, model.ErrRequestNotPending)
	s.requests.On("Cancel", mock.Anything, int64(7), int64(1)).Return(nil, model.ErrNotRequestSender)

	w := s.do(http.MethodPost, "/api/v1/trade-requests/5/room", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var result model.AcceptResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "ABCD1234", result.RoomCode)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/trade-requests/6/reject", "2", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/v1/trade-requests/7/cancel", "1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/trade-requests/abc/cancel", "1", nil).Code)
}

func TestHandler_ListTradeRequests(t *testing.T) {
	s := newTestServer(t)
	s.requests.On("ListReceived", mock.Anything, int64(2), int64(2)).Return([]*model.TradeRequestView{{TradeRequest: model.TradeRequest{ID: 5}}}, nil)
	s.requests.On("ListSent", mock.Anything, int64(1), int64(2)).Return(nil, model.ErrListForbidden)

	w := s.do(http.MethodGet, "/api/v1/users/2/trade-requests/received", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var views []model.TradeRequestView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 1)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/v1/users/2/trade-requests/sent", "1", nil).Code)
}

func TestHandler_CompleteTrade(t *testing.T) {
	s := newTestServer(t)
	in := model.CompleteTradeInput{MyUserCardID: 10, OpponentUserCardID: 20}

	s.trades.On("Complete", mock.Anything, int64(7), int64(1), in).Return(&model.CompleteTradeResult{
		Message: model.MsgWaitingOtherUser,
		TradeID: 7,
		Status:  model.TradePending,
	}, nil).Once()
	w := s.do(http.MethodPost, "/api/v1/trades/7/complete", "1", in)
	assert.Equal(t, http.StatusAccepted, w.Code)

	s.trades.On("Complete", mock.Anything, int64(7), int64(2), in).Return(&model.CompleteTradeResult{
		Message: model.MsgTradeCompleted,
		TradeID: 7,
		Status:  model.TradeCompleted,
	}, nil).Once()
	w = s.do(http.MethodPost, "/api/v1/trades/7/complete", "2", in)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteTradeErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not participant", err: model.ErrNotTradeParticipant, status: http.StatusBadRequest},
		{name: "trade missing", err: model.ErrTradeNotFound, status: http.StatusBadRequest},
		{name: "card not owned", err: model.ErrUserCardNotOwned, status: http.StatusBadRequest},
		{name: "database", err: errors.New("deadlock detected"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.trades.On("Complete", mock.Anything, int64(7), int64(3), mock.Anything).Return(nil, tt.err)

			w := s.do(http.MethodPost, "/api/v1/trades/7/complete", "3", model.CompleteTradeInput{MyUserCardID: 1, OpponentUserCardID: 2})
			assert.Equal(t, tt.status, w.Code)
		})
	}

	s := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/trades/zero/complete", "3", nil).Code)
}

func TestHandler_CreateAndGetTrade(t *testing.T) {
	s := newTestServer(t)
	s.trades.On("Create", mock.Anything, int64(1), mock.MatchedBy(func(in *model.CreateTradeInput) bool {
		return in.ReceiverIdentifier == "misty" && in.TradeType == "public"
	})).Return(&model.CreateTradeResult{Message: model.MsgTradeCreated, TradeID: 7, RoomCode: "ABCD1234"}, nil)
	s.trades.On("GetByRoomCode", mock.Anything, "ABCD1234").Return(&model.Trade{ID: 7, RoomCode: "ABCD1234"}, nil)
	s.trades.On("Get", mock.Anything, int64(8)).Return(nil, model.ErrTradeNotFound)

	w := s.do(http.MethodPost, "/api/v1/trades", "1", map[string]any{"receiverIdentifier": "misty", "tradeType": "public"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/v1/trades/room/ABCD1234", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var trade model.Trade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trade))
	assert.Equal(t, int64(7), trade.ID)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/trades/8", "", nil).Code)
}

func TestHandler_ListTrades(t *testing.T) {
	s := newTestServer(t)
	pending := model.TradePending
	s.trades.On("List", mock.Anything, model.TradeFilter{Status: &pending}, 2, 10).Return(&model.Page[*model.Trade]{
		Items:    []*model.Trade{},
		Total:    11,
		Page:     2,
		PageSize: 10,
	}, nil)

	w := s.do(http.MethodGet, "/api/v1/trades?status=pending&page=2&limit=10", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/trades?status=unknown", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateTrade(t *testing.T) {
	s := newTestServer(t)
	s.trades.On("Update", mock.Anything, int64(7), int64(1), mock.MatchedBy(func(p *model.TradePatch) bool {
		return p.Status != nil && *p.Status == model.TradeRejected
	})).Return(&model.Trade{ID: 7, Status: model.TradeRejected}, nil)

	w := s.do(http.MethodPatch, "/api/v1/trades/7", "1", map[string]any{"status": "rejected"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, "/api/v1/trades/7", "1", map[string]any{"initiatorAccepted": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "update not permitted")
}

func TestHandler_DeleteTrade(t *testing.T) {
	s := newTestServer(t)
	s.trades.On("Delete", mock.Anything, int64(7), int64(1)).Return(nil)
	s.trades.On("Delete", mock.Anything, int64(7), int64(3)).Return(model.ErrNotTradeMember)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/trades/7", "1", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/api/v1/trades/7", "3", nil).Code)
}

func TestHandler_Notifications(t *testing.T) {
	s := newTestServer(t)
	s.notifications.On("List", mock.Anything, int64(1), 10).Return([]*model.Notification{{ID: 3, UserID: 1}}, nil)
	s.notifications.On("MarkRead", mock.Anything, int64(3), int64(1)).Return(nil)
	s.notifications.On("MarkRead", mock.Anything, int64(4), int64(1)).Return(model.ErrNotificationNotFound)

	w := s.do(http.MethodGet, "/api/v1/notifications?limit=10", "1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodPost, "/api/v1/notifications/3/read", "1", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/notifications/4/read", "1", nil).Code)
}

func TestHandler_WebsocketNeedsCaller(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/ws?room=ABCD1234", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.do(http.MethodGet, "/ws?room=ABCD1234", "2", nil)
	assert.Equal(t, int64(2), s.realtime.userID)
	assert.Equal(t, "ABCD1234", s.realtime.room)
}
