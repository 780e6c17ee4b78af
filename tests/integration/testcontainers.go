// Package integration runs the price store, ingestion and valuation paths
// against a real PostgreSQL started with testcontainers. Docker is required;
// the suite is skipped under -short.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tropicaldog17/stockfolio/internal/db"
	"github.com/tropicaldog17/stockfolio/migrations"
)

// TestContainer holds the PostgreSQL container and connection details
type TestContainer struct {
	Container testcontainers.Container
	SQL       *sql.DB
	DB        *db.DB
	Config    *db.Config
}

var suiteContainer *TestContainer

func setupWithContext(ctx context.Context) (*TestContainer, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("stockfolio_test"),
		postgres.WithUsername("stockfolio"),
		postgres.WithPassword("stockfolio"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	config := &db.Config{
		Driver:       db.DriverPostgres,
		Host:         host,
		Port:         port.Port(),
		User:         "stockfolio",
		Password:     "stockfolio",
		Name:         "stockfolio_test",
		SSLMode:      "disable",
		MaxOpenConns: 20,
		MaxIdleConns: 5,
	}

	raw, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	if err := raw.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := migrations.Apply(raw); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	database, err := db.Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestContainer{Container: pgContainer, SQL: raw, DB: database, Config: config}, nil
}

// requireContainer returns the shared container with empty tables, or skips.
func requireContainer(t *testing.T) *TestContainer {
	t.Helper()
	if testing.Short() || suiteContainer == nil {
		t.Skip("skipping container-based tests in short mode")
	}
	_, err := suiteContainer.SQL.Exec(`TRUNCATE stock_prices, portfolio_stocks, portfolios, customers, stocks CASCADE`)
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
	return suiteContainer
}

// Cleanup terminates the container and closes the database connections
func (tc *TestContainer) Cleanup() {
	if tc.DB != nil {
		tc.DB.Close()
	}
	if tc.SQL != nil {
		tc.SQL.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(context.Background())
	}
}
