// Command graph-filter runs the Neo4j graph filter service, either as an
// HTTP JSON API (serve) or as an MCP stdio server (mcp). All dependencies
// are constructed here and injected explicitly; there are no package-level
// singletons.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/madagraph/neo4j-filter-service/internal/config"
	"github.com/madagraph/neo4j-filter-service/internal/database"
	"github.com/madagraph/neo4j-filter-service/internal/filter"
	"github.com/madagraph/neo4j-filter-service/internal/server"
	"github.com/madagraph/neo4j-filter-service/internal/tools"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "graph-filter",
		Short:         "Declarative filter API over a Neo4j graph database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (env vars take precedence)")
	root.AddCommand(serveCmd(), mcpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			setupLogger(cfg, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.NewNeo4jService(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(context.Background()); closeErr != nil {
					slog.Error("failed to close store client", "error", closeErr)
				}
			}()

			svc := filter.NewService(db)
			return server.New(cfg, svc, db).Run(ctx)
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the filter tools over MCP stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Stdout carries the MCP transport; logs go to stderr.
			setupLogger(cfg, os.Stderr)

			ctx := cmd.Context()
			db, err := database.NewNeo4jService(ctx, cfg.Neo4j.URI, cfg.Neo4j.Username, cfg.Neo4j.Password, cfg.Neo4j.Database)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := db.Close(context.Background()); closeErr != nil {
					slog.Error("failed to close store client", "error", closeErr)
				}
			}()

			deps := &tools.ToolDependencies{
				FilterService: filter.NewService(db),
				DBService:     db,
			}
			return server.ServeMCPStdio(server.NewMCPServer(deps))
		},
	}
}

func setupLogger(cfg config.Config, w *os.File) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
