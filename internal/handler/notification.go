package handler

import (
	"net/http"
	"strconv"

	"card-trading/internal/model"

	"github.com/gin-gonic/gin"
)

// ListNotifications
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param limit query int false "Limit" default(50)
// @Success 200 {array} model.Notification
// @Failure 401 {object} model.ErrorResponse "Missing caller"
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	notifications, err := h.notificationService.List(c.Request.Context(), callerID(c), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead
// @Summary Mark a notification as read
// @Tags notifications
// @Param X-User-ID header int true "Caller user ID"
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} model.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		h.handleError(c, model.ErrNotificationNotFound)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
