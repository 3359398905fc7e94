// Package filter orchestrates the declarative filter pipeline: validate the
// request, compile it to Cypher, execute it through a scoped store session,
// map the raw records to typed results, and summarize the active filters.
package filter

import (
	"context"
	"log/slog"

	"github.com/madagraph/neo4j-filter-service/internal/cypher"
	"github.com/madagraph/neo4j-filter-service/internal/database"
	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

// Service executes declarative filter requests against the graph store. The
// store client is injected at construction; Service itself holds no mutable
// state and is safe for concurrent use.
type Service struct {
	db database.Service
}

// NewService builds a filter service on top of the given store client.
func NewService(db database.Service) *Service {
	return &Service{db: db}
}

// FilterNodes validates and executes a node filter request.
func (s *Service) FilterNodes(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	compiled, err := cypher.BuildNodeQuery(req)
	if err != nil {
		// Compilation failures only arise from inputs validation rejects;
		// reaching here still classifies as an invalid filter, not a store
		// error.
		return nil, &InvalidFilterError{Message: err.Error(), FilterType: "request"}
	}

	slog.Debug("executing node filter query", "query", compiled.Text)
	records, err := s.db.ExecuteReadQuery(ctx, compiled.Text, compiled.Params)
	if err != nil {
		slog.Error("node filter query failed", "error", err)
		return nil, &QueryExecutionError{
			Message:     "failed to execute node query",
			Query:       truncateQuery(compiled.Text),
			CypherError: err.Error(),
		}
	}

	data := make([]any, 0, len(records))
	for _, rec := range records {
		node, mapErr := mapNodeRecord(rec)
		if mapErr != nil {
			slog.Error("node record mapping failed", "error", mapErr)
			return nil, &QueryExecutionError{
				Message:     "failed to map node query results",
				Query:       truncateQuery(compiled.Text),
				CypherError: mapErr.Error(),
			}
		}
		data = append(data, node)
	}

	slog.Info("node filter complete", "count", len(data))
	return s.respond(req, data), nil
}

// FilterRelationships validates and executes a relationship filter request.
func (s *Service) FilterRelationships(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	compiled, err := cypher.BuildRelationshipQuery(req)
	if err != nil {
		return nil, &InvalidFilterError{Message: err.Error(), FilterType: "request"}
	}

	slog.Debug("executing relationship filter query", "query", compiled.Text)
	records, err := s.db.ExecuteReadQuery(ctx, compiled.Text, compiled.Params)
	if err != nil {
		slog.Error("relationship filter query failed", "error", err)
		return nil, &QueryExecutionError{
			Message:     "failed to execute relationship query",
			Query:       truncateQuery(compiled.Text),
			CypherError: err.Error(),
		}
	}

	data := make([]any, 0, len(records))
	for _, rec := range records {
		rel, mapErr := mapRelationshipRecord(rec)
		if mapErr != nil {
			slog.Error("relationship record mapping failed", "error", mapErr)
			return nil, &QueryExecutionError{
				Message:     "failed to map relationship query results",
				Query:       truncateQuery(compiled.Text),
				CypherError: mapErr.Error(),
			}
		}
		data = append(data, rel)
	}

	slog.Info("relationship filter complete", "count", len(data))
	return s.respond(req, data), nil
}

func (s *Service) respond(req *graph.FilterRequest, data []any) *graph.FilterResponse {
	return &graph.FilterResponse{
		Total:         len(data),
		Limit:         req.Limit,
		Skip:          req.Skip,
		Data:          data,
		ActiveFilters: ActiveFilterSummary(req),
	}
}
