package handler

import (
	"card-trading/internal/model"

	"github.com/gin-gonic/gin"
)

// ServeWS
// @Summary Realtime event stream
// @Description Upgrades to a websocket carrying the caller's notifications and, with room set, that room's events
// @Tags realtime
// @Param X-User-ID header int true "Caller user ID"
// @Param room query string false "Trade room code"
// @Success 101
// @Failure 401 {object} model.ErrorResponse "Missing caller"
// @Router /ws [get]
func (h *Handler) ServeWS(c *gin.Context) {
	userID := callerID(c)
	if userID == 0 {
		h.handleError(c, model.ErrCallerRequired)
		return
	}
	h.realtime.ServeWS(c.Writer, c.Request, userID, c.Query("room"))
}
