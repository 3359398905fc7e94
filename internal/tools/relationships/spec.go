package relationships

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// Spec returns the MCP tool specification for filter-relationships.
func Spec() mcp.Tool {
	return mcp.NewTool("filter-relationships",
		mcp.WithDescription(`Filters graph relationships (and their endpoint nodes) with a declarative criteria request. No Cypher required.

**REQUEST SHAPE:**
- source_nodes / target_nodes: lists of node criteria blocks constraining the endpoints (blocks ORed, see filter-nodes)
- relationships: list of criteria blocks; a relationship matches when it matches ANY block. Each block has:
  - relationship_types: type names (membership test)
  - property_filters: [{property_name, operator, value}]
  - direction: outgoing | incoming | both (relative to the source node)
  - min_depth / max_depth: traversal depth (default 1/1). Any depth other than exactly 1 switches the query to variable-length paths: every relationship on the path must satisfy the block's constraints, and the returned relationship is the path's terminal edge. Direction is not enforced on multi-hop paths.
- skip / limit: pagination (limit 1-1000, default 100)

**EXAMPLE:** SEND_TO chains up to 2 hops:
{"relationships":[{"relationship_types":["SEND_TO"],"direction":"outgoing","min_depth":1,"max_depth":2}],"limit":50}

Returns {total, limit, skip, data, active_filters} where data holds {id, type, source, target, properties} relationships.`),
		mcp.WithInputSchema[graph.FilterRequest](),
		mcp.WithTitleAnnotation("Filter Relationships"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
