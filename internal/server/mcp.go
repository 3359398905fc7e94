package server

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/madagraph/neo4j-filter-service/internal/tools"
	"github.com/madagraph/neo4j-filter-service/internal/tools/nodes"
	"github.com/madagraph/neo4j-filter-service/internal/tools/relationships"
)

// NewMCPServer builds the MCP server exposing the filter operations as
// tools. Both tools are read-only.
func NewMCPServer(deps *tools.ToolDependencies) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"neo4j-filter-service",
		Version,
		mcpserver.WithToolCapabilities(true),
	)
	s.AddTools(
		mcpserver.ServerTool{Tool: nodes.Spec(), Handler: nodes.Handler(deps)},
		mcpserver.ServerTool{Tool: relationships.Spec(), Handler: relationships.Handler(deps)},
	)
	return s
}

// ServeMCPStdio runs the MCP server over stdio until the client disconnects.
func ServeMCPStdio(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}
