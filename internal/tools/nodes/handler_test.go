package nodes_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	database_mocks "github.com/madagraph/neo4j-filter-service/internal/database/mocks"
	"github.com/madagraph/neo4j-filter-service/internal/graph"
	"github.com/madagraph/neo4j-filter-service/internal/tools"
	"github.com/madagraph/neo4j-filter-service/internal/tools/nodes"
)

type fakeFilterService struct {
	nodesFn func(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
	relsFn  func(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error)
}

func (f *fakeFilterService) FilterNodes(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error) {
	return f.nodesFn(ctx, req)
}

func (f *fakeFilterService) FilterRelationships(ctx context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error) {
	return f.relsFn(ctx, req)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "filter-nodes"
	req.Params.Arguments = args
	return req
}

func TestFilterNodesHandler(t *testing.T) {
	t.Run("successfully filters nodes", func(t *testing.T) {
		svc := &fakeFilterService{
			nodesFn: func(_ context.Context, req *graph.FilterRequest) (*graph.FilterResponse, error) {
				if len(req.SourceNodes) != 1 || req.SourceNodes[0].Types[0] != "Person" {
					t.Errorf("unexpected request: %+v", req)
				}
				return &graph.FilterResponse{
					Total:         1,
					Limit:         100,
					Data:          []any{graph.ResultNode{ID: 42, Labels: []string{"Person"}}},
					ActiveFilters: []string{"Source #1 Types: Person"},
				}, nil
			},
		}
		deps := &tools.ToolDependencies{FilterService: svc}

		handler := nodes.Handler(deps)
		result, err := handler(context.Background(), callRequest(map[string]any{
			"source_nodes": []any{map[string]any{"node_types": []any{"Person"}}},
		}))

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, `"total": 1`) {
			t.Errorf("Expected total in response, got: %s", text)
		}
		if !strings.Contains(text, "Source #1 Types: Person") {
			t.Errorf("Expected active filter summary in response, got: %s", text)
		}
	})

	t.Run("service error becomes tool error result", func(t *testing.T) {
		svc := &fakeFilterService{
			nodesFn: func(context.Context, *graph.FilterRequest) (*graph.FilterResponse, error) {
				return nil, errors.New("invalid filter (request): empty")
			},
		}
		deps := &tools.ToolDependencies{FilterService: svc}

		handler := nodes.Handler(deps)
		result, err := handler(context.Background(), callRequest(map[string]any{}))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result when the filter service fails")
		}
	})

	t.Run("unbindable arguments become tool error result", func(t *testing.T) {
		svc := &fakeFilterService{
			nodesFn: func(context.Context, *graph.FilterRequest) (*graph.FilterResponse, error) {
				t.Error("filter service must not be called when binding fails")
				return nil, nil
			},
		}
		deps := &tools.ToolDependencies{FilterService: svc}

		handler := nodes.Handler(deps)
		result, err := handler(context.Background(), callRequest(map[string]any{
			"limit": "not-a-number",
		}))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for unbindable arguments")
		}
	})

	t.Run("unreachable store becomes tool error result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := database_mocks.NewMockService(ctrl)
		db.EXPECT().VerifyConnectivity(gomock.Any()).Return(errors.New("connection refused"))
		db.EXPECT().GetDatabaseName().Return("neo4j").AnyTimes()

		svc := &fakeFilterService{
			nodesFn: func(context.Context, *graph.FilterRequest) (*graph.FilterResponse, error) {
				t.Error("filter service must not be called when the store is down")
				return nil, nil
			},
		}
		deps := &tools.ToolDependencies{FilterService: svc, DBService: db}

		handler := nodes.Handler(deps)
		result, err := handler(context.Background(), callRequest(map[string]any{"search_query": "x"}))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result when the store is unreachable")
		}
	})

	t.Run("nil filter service", func(t *testing.T) {
		deps := &tools.ToolDependencies{FilterService: nil}

		handler := nodes.Handler(deps)
		result, err := handler(context.Background(), callRequest(nil))

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil filter service")
		}
	})
}
