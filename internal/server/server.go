// Package server exposes the filter service over HTTP (JSON) and over MCP
// for agent clients. Both surfaces share the same orchestrator and error
// taxonomy.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/madagraph/neo4j-filter-service/internal/config"
	"github.com/madagraph/neo4j-filter-service/internal/database"
)

// Version is reported by the health endpoint and the MCP server handshake.
const Version = "1.0.0"

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front end.
type Server struct {
	engine *gin.Engine
	addr   string
}

// New assembles the router with its middleware and routes.
func New(cfg config.Config, svc FilterAPI, db database.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger())

	v1 := engine.Group("/api/v1")
	v1.GET("/health", HandleHealth(db))

	filtered := v1.Group("", RequireStore(db))
	filtered.POST("/nodes/filter", HandleFilterNodes(svc))
	filtered.POST("/relationships/filter", HandleFilterRelationships(svc))

	return &Server{engine: engine, addr: cfg.HTTP.Addr}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
