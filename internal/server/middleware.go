package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/madagraph/neo4j-filter-service/internal/database"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a correlation ID to every request, honoring an inbound
// X-Request-ID header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// RequireStore rejects requests with 503 when the store is unreachable, so
// filter requests fail fast instead of timing out inside a session.
func RequireStore(db database.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.VerifyConnectivity(c.Request.Context()); err != nil {
			slog.Error("store connectivity check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":   "ConnectionError",
				"message": "graph store is unavailable",
			})
			return
		}
		c.Next()
	}
}
