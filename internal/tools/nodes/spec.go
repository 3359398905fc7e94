package nodes

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// Spec returns the MCP tool specification for filter-nodes.
func Spec() mcp.Tool {
	return mcp.NewTool("filter-nodes",
		mcp.WithDescription(`Filters graph nodes with a declarative, injection-safe criteria request. No Cypher required.

**REQUEST SHAPE:**
- source_nodes: list of criteria blocks. A node matches when it matches ANY block (blocks are ORed). Each block has:
  - node_types: labels to match (membership test, not exact match)
  - property_filters: [{property_name, operator, value}] joined by logical_operator (AND/OR)
- search_query: free-text search across labels and stringified property values (case-insensitive)
- skip / limit: pagination (limit 1-1000, default 100)

**SUPPORTED OPERATORS:** =, !=, >, >=, <, <=, CONTAINS, STARTS WITH, ENDS WITH, IN, NOT IN, =~

**EXAMPLE:** persons over 25:
{"source_nodes":[{"node_types":["Person"],"property_filters":[{"property_name":"age","operator":">","value":25}]}],"limit":100}

Returns {total, limit, skip, data, active_filters} where data holds {id, labels, properties} nodes and active_filters is a human-readable summary of the applied criteria.`),
		mcp.WithInputSchema[graph.FilterRequest](),
		mcp.WithTitleAnnotation("Filter Nodes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
