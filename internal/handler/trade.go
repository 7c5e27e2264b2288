package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"card-trading/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateTrade
// @Summary Create a trade room
// @Tags trades
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param trade body model.CreateTradeInput true "Trade payload"
// @Success 201 {object} model.CreateTradeResult
// @Failure 400 {object} model.ErrorResponse "Validation error"
// @Failure 401 {object} model.ErrorResponse "Missing caller"
// @Failure 404 {object} model.ErrorResponse "Receiver not found"
// @Router /trades [post]
func (h *Handler) CreateTrade(c *gin.Context) {
	var in model.CreateTradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.tradeService.Create(c.Request.Context(), callerID(c), &in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListTrades
// @Summary List trades
// @Tags trades
// @Produce json
// @Param status query string false "Status filter" Enums(pending, accepted, rejected, cancelled, completed)
// @Param tradeType query string false "Trade type filter" Enums(private, public)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} model.Page[model.Trade]
// @Failure 400 {object} model.ErrorResponse "Invalid filter"
// @Router /trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	var filter model.TradeFilter
	if s := c.Query("status"); s != "" {
		status, err := model.ParseTradeStatus(s)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Status = &status
	}
	if t := c.Query("tradeType"); t != "" {
		tradeType, err := model.ParseTradeType(t)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.TradeType = &tradeType
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.tradeService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrade
// @Summary Get a trade
// @Tags trades
// @Produce json
// @Param id path int true "Trade ID"
// @Success 200 {object} model.Trade
// @Failure 404 {object} model.ErrorResponse "Trade not found"
// @Router /trades/{id} [get]
func (h *Handler) GetTrade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrTradeNotFound)
		return
	}

	trade, err := h.tradeService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

// GetTradeByRoomCode
// @Summary Get a trade by its room code
// @Tags trades
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} model.Trade
// @Failure 404 {object} model.ErrorResponse "Trade not found"
// @Router /trades/room/{code} [get]
func (h *Handler) GetTradeByRoomCode(c *gin.Context) {
	trade, err := h.tradeService.GetByRoomCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

// UpdateTrade
// @Summary Update a trade
// @Description Only status (rejected, cancelled), completedAt and messages may be patched
// @Tags trades
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade ID"
// @Param patch body object true "Patch"
// @Success 200 {object} model.Trade
// @Failure 400 {object} model.ErrorResponse "Update not permitted"
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 404 {object} model.ErrorResponse "Trade not found"
// @Router /trades/{id} [patch]
func (h *Handler) UpdateTrade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrTradeNotFound)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	patch, err := model.ParseTradePatch(raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	trade, err := h.tradeService.Update(c.Request.Context(), id, callerID(c), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

// DeleteTrade
// @Summary Delete a trade
// @Tags trades
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade ID"
// @Success 204
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 404 {object} model.ErrorResponse "Trade not found"
// @Router /trades/{id} [delete]
func (h *Handler) DeleteTrade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrTradeNotFound)
		return
	}

	if err := h.tradeService.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteTrade
// @Summary Accept a trade with your card
// @Description Records the caller's card and acceptance; settles once both sides accepted.
// @Description Every rule violation is reported as 400.
// @Tags trades
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Trade ID"
// @Param body body model.CompleteTradeInput true "Committed cards"
// @Success 200 {object} model.CompleteTradeResult "Completed"
// @Success 202 {object} model.CompleteTradeResult "Waiting for the other user"
// @Failure 400 {object} model.ErrorResponse "Rule violation"
// @Router /trades/{id}/complete [post]
func (h *Handler) CompleteTrade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		badRequest(c, model.ErrTradeNotFound.Error())
		return
	}

	var in model.CompleteTradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	result, err := h.tradeService.Complete(c.Request.Context(), id, callerID(c), in)
	if err != nil {
		if model.IsBusinessError(err) {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if result.Message == model.MsgWaitingOtherUser {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}
