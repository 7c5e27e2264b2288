package handler

import (
	"net/http"
	"strconv"
	"time"

	"card-trading/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	callerHeader = "X-User-ID"
	callerKey    = "callerID"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		log.Info().
			Str("request_id", requestID).
			Int64("caller_id", c.GetInt64(callerKey)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// CallerMiddleware reads the authenticated user id set by the gateway. A missing
// header leaves the caller empty and services decide; a malformed one is rejected.
func CallerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(callerHeader)
		if header == "" {
			c.Next()
			return
		}
		callerID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || callerID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "X-User-ID must be a positive integer",
				Code:  model.CodeUnauthorized,
			})
			return
		}
		c.Set(callerKey, callerID)
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64(callerKey)
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
