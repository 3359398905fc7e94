package relationships

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
	"github.com/madagraph/neo4j-filter-service/internal/tools"
)

// Handler returns the tool handler function for filter-relationships.
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleFilterRelationships(ctx, request, deps)
	}
}

func handleFilterRelationships(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.FilterService == nil {
		errMessage := "filter service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.DBService != nil {
		if err := deps.DBService.VerifyConnectivity(ctx); err != nil {
			slog.Error("store connectivity check failed",
				"database", deps.DBService.GetDatabaseName(), "error", err)
			return mcp.NewToolResultError("graph store is unavailable"), nil
		}
	}

	var req graph.FilterRequest
	if err := request.BindArguments(&req); err != nil {
		slog.Error("error binding filter-relationships arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("filtering relationships",
		"relationship_blocks", len(req.Relationships),
		"source_blocks", len(req.SourceNodes),
		"target_blocks", len(req.TargetNodes))

	response, err := deps.FilterService.FilterRelationships(ctx, &req)
	if err != nil {
		slog.Error("filter-relationships failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		slog.Error("error marshalling filter-relationships response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
