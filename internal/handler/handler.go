package handler

import (
	"errors"
	"net/http"

	"card-trading/internal/model"
	"card-trading/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Realtime upgrades a request into a push channel for userID and an optional room
type Realtime interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID int64, room string)
}

type Handler struct {
	requestService      service.TradeRequestService
	tradeService        service.TradeService
	notificationService service.NotificationService
	realtime            Realtime
	logger              zerolog.Logger
}

func NewHandler(
	requestService service.TradeRequestService,
	tradeService service.TradeService,
	notificationService service.NotificationService,
	realtime Realtime,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		requestService:      requestService,
		tradeService:        tradeService,
		notificationService: notificationService,
		realtime:            realtime,
		logger:              logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ws", CallerMiddleware(), h.ServeWS)

	// API routes
	v1 := router.Group("/api/v1", CallerMiddleware())

	requests := v1.Group("/trade-requests")
	requests.POST("", h.CreateTradeRequest)
	requests.POST("/:id/reject", h.RejectTradeRequest)
	requests.POST("/:id/cancel", h.CancelTradeRequest)
	requests.POST("/:id/room", h.OpenTradeRoom)
	requests.POST("/:id/accept", h.AcceptTradeRequest)

	users := v1.Group("/users")
	users.GET("/:id/trade-requests/received", h.ListReceivedTradeRequests)
	users.GET("/:id/trade-requests/sent", h.ListSentTradeRequests)

	trades := v1.Group("/trades")
	trades.POST("", h.CreateTrade)
	trades.GET("", h.ListTrades)
	trades.GET("/room/:code", h.GetTradeByRoomCode)
	trades.GET("/:id", h.GetTrade)
	trades.PATCH("/:id", h.UpdateTrade)
	trades.DELETE("/:id", h.DeleteTrade)
	trades.POST("/:id/complete", h.CompleteTrade)

	notifications := v1.Group("/notifications")
	notifications.GET("", h.ListNotifications)
	notifications.POST("/:id/read", h.MarkNotificationRead)

	return router
}

func statusForKind(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrValueMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds the client body; infrastructure failures never leak their message
func errorResponse(err error) model.ErrorResponse {
	var mismatch *model.ValueMismatchError
	if errors.As(err, &mismatch) {
		return model.ErrorResponse{
			Error: mismatch.Error(),
			Code:  mismatch.Code(),
			Details: map[string]any{
				"ratio":        mismatch.Ratio.Round(3),
				"offeredPrice": mismatch.OfferedPrice,
				"targetPrice":  mismatch.TargetPrice,
			},
		}
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return model.ErrorResponse{Error: err.Error(), Code: domainErr.Code}
	}

	return model.ErrorResponse{Error: "internal server error", Code: model.CodeInternal}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := statusForKind(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
	}
	c.JSON(status, errorResponse(err))
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: message,
		Code:  model.CodeValidation,
	})
}
