package tools

import (
	"context"

	"github.com/madagraph/neo4j-filter-service/internal/database"
	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// FilterService is the filter orchestrator surface consumed by tool
// handlers, kept as an interface so handlers can be tested without a store.
type FilterService interface {
	FilterNodes(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
	FilterRelationships(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
}

// ToolDependencies contains all dependencies needed by tools.
type ToolDependencies struct {
	FilterService FilterService
	DBService     database.Service
}
