package handler

import (
	"context"
	"net/http"

	"card-trading/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateTradeRequest
// @Summary Create a trade request
// @Description Sends a manual, card or quick trade request to another user
// @Tags trade-requests
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param request body model.CreateTradeRequestInput true "Request payload"
// @Success 201 {object} model.TradeRequest
// @Failure 400 {object} model.ErrorResponse "Validation error"
// @Failure 401 {object} model.ErrorResponse "Missing caller"
// @Failure 403 {object} model.ErrorResponse "Card not owned"
// @Failure 404 {object} model.ErrorResponse "User or card not found"
// @Failure 409 {object} model.ErrorResponse "Pending request already exists"
// @Router /trade-requests [post]
func (h *Handler) CreateTradeRequest(c *gin.Context) {
	var in model.CreateTradeRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	req, err := h.requestService.Create(c.Request.Context(), callerID(c), &in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// ListReceivedTradeRequests
// @Summary List received trade requests
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "User ID"
// @Success 200 {array} model.TradeRequestView
// @Failure 403 {object} model.ErrorResponse "Not your requests"
// @Router /users/{id}/trade-requests/received [get]
func (h *Handler) ListReceivedTradeRequests(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrUserNotFound)
		return
	}

	views, err := h.requestService.ListReceived(c.Request.Context(), callerID(c), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListSentTradeRequests
// @Summary List sent trade requests
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "User ID"
// @Success 200 {array} model.TradeRequestView
// @Failure 403 {object} model.ErrorResponse "Not your requests"
// @Router /users/{id}/trade-requests/sent [get]
func (h *Handler) ListSentTradeRequests(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrUserNotFound)
		return
	}

	views, err := h.requestService.ListSent(c.Request.Context(), callerID(c), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// RejectTradeRequest
// @Summary Reject a trade request
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade request ID"
// @Success 200 {object} model.TradeRequest
// @Failure 400 {object} model.ErrorResponse "Not pending"
// @Failure 403 {object} model.ErrorResponse "Not the receiver"
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Router /trade-requests/{id}/reject [post]
func (h *Handler) RejectTradeRequest(c *gin.Context) {
	h.respondRequest(c, h.requestService.Reject)
}

// CancelTradeRequest
// @Summary Cancel a trade request
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade request ID"
// @Success 200 {object} model.TradeRequest
// @Failure 400 {object} model.ErrorResponse "Not pending"
// @Failure 403 {object} model.ErrorResponse "Not the sender"
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Router /trade-requests/{id}/cancel [post]
func (h *Handler) CancelTradeRequest(c *gin.Context) {
	h.respondRequest(c, h.requestService.Cancel)
}

// OpenTradeRoom
// @Summary Open a private trade room from a request
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade request ID"
// @Success 200 {object} model.AcceptResult
// @Failure 400 {object} model.ErrorResponse "Not pending"
// @Failure 403 {object} model.ErrorResponse "Not the receiver"
// @Failure 404 {object} model.ErrorResponse "Request not found"
// @Router /trade-requests/{id}/room [post]
func (h *Handler) OpenTradeRoom(c *gin.Context) {
	h.respondAccept(c, h.requestService.OpenRoom)
}

// AcceptTradeRequest
// @Summary Accept a trade request
// @Description Plain requests open a room; quick requests settle immediately
// @Tags trade-requests
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade request ID"
// @Success 200 {object} model.AcceptResult
// @Failure 400 {object} model.ErrorResponse "Not pending"
// @Failure 403 {object} model.ErrorResponse "Not the receiver or card not owned"
// @Failure 404 {object} model.ErrorResponse "Request or card not found"
// @Failure 422 {object} model.ErrorResponse "Trade value difference too high"
// @Router /trade-requests/{id}/accept [post]
func (h *Handler) AcceptTradeRequest(c *gin.Context) {
	h.respondAccept(c, h.requestService.Accept)
}

type requestAction func(ctx context.Context, requestID, callerID int64) (*model.TradeRequest, error)

type acceptAction func(ctx context.Context, requestID, callerID int64) (*model.AcceptResult, error)

func (h *Handler) respondRequest(c *gin.Context, action requestAction) {
	requestID, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrTradeRequestNotFound)
		return
	}

	req, err := action(c.Request.Context(), requestID, callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

func (h *Handler) respondAccept(c *gin.Context, action acceptAction) {
	requestID, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrTradeRequestNotFound)
		return
	}

	result, err := action(c.Request.Context(), requestID, callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
