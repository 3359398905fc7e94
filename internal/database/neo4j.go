package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// neo4jService implements Service on top of neo4j-go-driver. The driver is
// constructed once at bootstrap and owns the connection pool; every query
// gets its own read-scoped session.
type neo4jService struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jService connects to Neo4j and verifies connectivity before
// returning. The caller owns the returned service and must Close it.
func NewNeo4jService(ctx context.Context, uri, username, password, databaseName string) (Service, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}
	slog.Info("connected to neo4j", "uri", uri, "database", databaseName)
	return &neo4jService{driver: driver, database: databaseName}, nil
}

func (s *neo4jService) ExecuteReadQuery(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer func() {
		if err := session.Close(ctx); err != nil {
			slog.Warn("failed to close neo4j session", "error", err)
		}
	}()

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}

func (s *neo4jService) VerifyConnectivity(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

func (s *neo4jService) GetDatabaseName() string {
	return s.database
}

func (s *neo4jService) Close(ctx context.Context) error {
	slog.Info("closing neo4j driver")
	return s.driver.Close(ctx)
}
