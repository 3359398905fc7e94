package server

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madagraph/neo4j-filter-service/internal/tools"
	"github.com/madagraph/neo4j-filter-service/internal/tools/nodes"
	"github.com/madagraph/neo4j-filter-service/internal/tools/relationships"
)

func TestNewMCPServer(t *testing.T) {
	s := NewMCPServer(&tools.ToolDependencies{})
	require.NotNil(t, s)
}

func TestFilterToolSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec mcp.Tool
	}{
		{"filter-nodes", nodes.Spec()},
		{"filter-relationships", relationships.Spec()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.spec.Name)
			assert.NotEmpty(t, tc.spec.Description)

			require.NotNil(t, tc.spec.Annotations.ReadOnlyHint)
			assert.True(t, *tc.spec.Annotations.ReadOnlyHint)
			require.NotNil(t, tc.spec.Annotations.DestructiveHint)
			assert.False(t, *tc.spec.Annotations.DestructiveHint)

			// The input schema is generated from the request type, so the
			// declarative surface and the wire schema cannot drift.
			assert.NotEmpty(t, tc.spec.RawInputSchema)
		})
	}
}
