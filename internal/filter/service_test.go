package filter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	database_mocks "github.com/madagraph/neo4j-filter-service/internal/database/mocks"
	"github.com/madagraph/neo4j-filter-service/internal/graph"
)

func nodeRecord(id int64, labels []string, props map[string]any) *neo4j.Record {
	return &neo4j.Record{
		Keys: []string{"n", "node_labels", "node_id"},
		Values: []any{
			dbtype.Node{Labels: labels, Props: props},
			labels,
			id,
		},
	}
}

func relationshipRecord(relID int64, relType string, sourceID, targetID int64) *neo4j.Record {
	return &neo4j.Record{
		Keys: []string{"n", "r", "m", "rel_type", "rel_id", "source_id", "target_id"},
		Values: []any{
			dbtype.Node{Labels: []string{"Person"}, Props: map[string]any{"name": "Ana"}},
			dbtype.Relationship{Type: relType, Props: map[string]any{"since": int64(2019)}},
			dbtype.Node{Labels: []string{"Office"}, Props: map[string]any{"city": "Toamasina"}},
			relType,
			relID,
			sourceID,
			targetID,
		},
	}
}

func TestFilterNodes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)

	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
			assert.Contains(t, query, "MATCH (n)")
			assert.Equal(t, []string{"Person"}, params["s0_labels"])
			return []*neo4j.Record{
				nodeRecord(42, []string{"Person"}, map[string]any{"name": "Ana"}),
			}, nil
		})

	svc := NewService(db)
	resp, err := svc.FilterNodes(context.Background(), &graph.FilterRequest{
		SourceNodes: []graph.NodeCriteria{{Types: []string{"Person"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, defaultLimit, resp.Limit)
	assert.Equal(t, 0, resp.Skip)
	require.Len(t, resp.Data, 1)
	node, ok := resp.Data[0].(graph.ResultNode)
	require.True(t, ok)
	assert.Equal(t, int64(42), node.ID)
	assert.Equal(t, []string{"Person"}, node.Labels)
	assert.Equal(t, map[string]any{"name": "Ana"}, node.Properties)
	assert.Contains(t, resp.ActiveFilters, "Source #1 Types: Person")
}

func TestFilterNodes_ValidationShortCircuitsBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	// No ExecuteReadQuery expectation: the store must never be reached.

	svc := NewService(db)
	_, err := svc.FilterNodes(context.Background(), &graph.FilterRequest{})

	var invalid *InvalidFilterError
	require.ErrorAs(t, err, &invalid)
}

func TestFilterNodes_StoreErrorBecomesQueryExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("Neo.ClientError.Statement.SyntaxError: oops"))

	svc := NewService(db)
	_, err := svc.FilterNodes(context.Background(), &graph.FilterRequest{
		SourceNodes: []graph.NodeCriteria{{Types: []string{"Person"}}},
	})

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "failed to execute node query", execErr.Message)
	assert.Contains(t, execErr.Query, "MATCH (n)")
	assert.LessOrEqual(t, len(execErr.Query), maxQueryErrorLength+len("... (truncated)"))
	assert.Contains(t, execErr.CypherError, "SyntaxError")
}

func TestFilterNodes_LongQueryTruncatedInError(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))

	// Enough conditions to push the compiled text past the error cap.
	conds := make([]graph.PropertyCondition, 0, 40)
	for range 40 {
		conds = append(conds, graph.PropertyCondition{
			PropertyName: "some_longer_property_name",
			Operator:     graph.OperatorContains,
			Value:        "x",
		})
	}

	svc := NewService(db)
	_, err := svc.FilterNodes(context.Background(), &graph.FilterRequest{
		SourceNodes: []graph.NodeCriteria{{Conditions: conds}},
	})

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.True(t, strings.HasSuffix(execErr.Query, "... (truncated)"))
	assert.Len(t, execErr.Query, maxQueryErrorLength+len("... (truncated)"))
}

func TestFilterNodes_MappingErrorBecomesQueryExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*neo4j.Record{
			{Keys: []string{"n"}, Values: []any{dbtype.Node{Labels: []string{"Person"}}}},
		}, nil)

	svc := NewService(db)
	_, err := svc.FilterNodes(context.Background(), &graph.FilterRequest{
		SourceNodes: []graph.NodeCriteria{{Types: []string{"Person"}}},
	})

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "failed to map node query results", execErr.Message)
	assert.Contains(t, execErr.CypherError, `"node_id"`)
}

func TestFilterRelationships_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
			assert.Contains(t, query, "MATCH (n)-[r]-(m)")
			assert.Equal(t, []string{"KNOWS"}, params["rel0_types"])
			return []*neo4j.Record{relationshipRecord(7, "KNOWS", 1, 2)}, nil
		})

	svc := NewService(db)
	resp, err := svc.FilterRelationships(context.Background(), &graph.FilterRequest{
		Relationships: []graph.RelationshipCriteria{{Types: []string{"KNOWS"}}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Data, 1)
	rel, ok := resp.Data[0].(graph.ResultRelationship)
	require.True(t, ok)
	assert.Equal(t, int64(7), rel.ID)
	assert.Equal(t, "KNOWS", rel.Type)
	assert.Equal(t, int64(1), rel.Source.ID)
	assert.Equal(t, []string{"Person"}, rel.Source.Labels)
	assert.Equal(t, int64(2), rel.Target.ID)
	assert.Equal(t, []string{"Office"}, rel.Target.Labels)
	assert.Equal(t, map[string]any{"since": int64(2019)}, rel.Properties)
}

func TestFilterRelationships_InjectionValueStaysOutOfQueryText(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)

	hostile := "') DETACH DELETE n //"
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
			assert.NotContains(t, query, "DETACH")
			assert.Equal(t, hostile, params["rel0_note_equal"])
			return nil, nil
		})

	svc := NewService(db)
	_, err := svc.FilterRelationships(context.Background(), &graph.FilterRequest{
		Relationships: []graph.RelationshipCriteria{{
			Conditions: []graph.PropertyCondition{
				{PropertyName: "note", Operator: graph.OperatorEqual, Value: hostile},
			},
		}},
	})
	require.NoError(t, err)
}

func TestFilterRelationships_StoreErrorOmitsParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("deadline exceeded"))

	secret := "very-secret-value"
	svc := NewService(db)
	_, err := svc.FilterRelationships(context.Background(), &graph.FilterRequest{
		Relationships: []graph.RelationshipCriteria{{
			Conditions: []graph.PropertyCondition{
				{PropertyName: "token", Operator: graph.OperatorEqual, Value: secret},
			},
		}},
	})

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.NotContains(t, execErr.Query, secret)
	assert.NotContains(t, execErr.Error(), secret)
}

func TestFilterRelationships_EmptyResultSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := database_mocks.NewMockService(ctrl)
	db.EXPECT().
		ExecuteReadQuery(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	svc := NewService(db)
	resp, err := svc.FilterRelationships(context.Background(), &graph.FilterRequest{
		Relationships: []graph.RelationshipCriteria{{Types: []string{"KNOWS"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
