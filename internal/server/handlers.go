package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madagraph/neo4j-filter-service/internal/database"
	"github.com/madagraph/neo4j-filter-service/internal/filter"
	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// FilterAPI is the orchestrator surface the HTTP handlers depend on.
type FilterAPI interface {
	FilterNodes(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
	FilterRelationships(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
}

// HandleFilterNodes serves POST /nodes/filter.
func HandleFilterNodes(svc FilterAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graph.FilterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Error("failed to parse node filter request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "InvalidFilterError",
				"message": "invalid request body: " + err.Error(),
			})
			return
		}

		response, err := svc.FilterNodes(c.Request.Context(), &req)
		if err != nil {
			writeFilterError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// HandleFilterRelationships serves POST /relationships/filter.
func HandleFilterRelationships(svc FilterAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graph.FilterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Error("failed to parse relationship filter request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "InvalidFilterError",
				"message": "invalid request body: " + err.Error(),
			})
			return
		}

		response, err := svc.FilterRelationships(c.Request.Context(), &req)
		if err != nil {
			writeFilterError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
	}
}

// HandleHealth serves GET /health, reporting store connectivity.
func HandleHealth(db database.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		connected := db.VerifyConnectivity(c.Request.Context()) == nil
		status := "ok"
		code := http.StatusOK
		if !connected {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":          status,
			"neo4j_connected": connected,
			"version":         Version,
		})
	}
}

// writeFilterError maps the filter error taxonomy onto HTTP statuses:
// invalid filter 400, execution failure 500, store unavailable 503,
// anything else 500 without leaking internals.
func writeFilterError(c *gin.Context, err error) {
	var invalid *filter.InvalidFilterError
	if errors.As(err, &invalid) {
		slog.Warn("invalid filter request", "error", invalid.Message)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "InvalidFilterError",
			"message":     invalid.Message,
			"filter_type": invalid.FilterType,
			"field":       invalid.Field,
		})
		return
	}

	var exec *filter.QueryExecutionError
	if errors.As(err, &exec) {
		slog.Error("query execution failed", "error", exec.CypherError)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "QueryExecutionError",
			"message":      exec.Message,
			"query":        exec.Query,
			"cypher_error": exec.CypherError,
		})
		return
	}

	var conn *filter.ConnectionError
	if errors.As(err, &conn) {
		slog.Error("store unavailable", "error", conn.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "ConnectionError",
			"message": conn.Message,
		})
		return
	}

	slog.Error("unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "InternalServerError",
		"message": "an unexpected error occurred",
	})
}
