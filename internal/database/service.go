// Package database wraps the Neo4j Go driver behind a small service
// interface so the orchestrator and tool handlers can be tested against
// mocks.
package database

//go:generate mockgen -destination=mocks/mock_database.go -package=database_mocks github.com/madagraph/neo4j-filter-service/internal/database Service

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Service is the store abstraction consumed by the rest of the application.
type Service interface {
	// ExecuteReadQuery runs a single read query in a session scoped to the
	// call: the session is opened, used for exactly this query, and released
	// before the method returns.
	ExecuteReadQuery(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error)

	// VerifyConnectivity checks that the store is reachable.
	VerifyConnectivity(ctx context.Context) error

	// GetDatabaseName returns the configured database name.
	GetDatabaseName() string

	// Close releases the underlying driver.
	Close(ctx context.Context) error
}
