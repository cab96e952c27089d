package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/homebase-apps/saved-locations-api/internal/adapters/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS locations (
	id            uuid PRIMARY KEY,
	tag           text NOT NULL,
	latitude      double precision NOT NULL,
	longitude     double precision NOT NULL,
	place_id      text NOT NULL,
	owner_subject text NOT NULL,
	owner_email   text NOT NULL,
	created_at    timestamptz NOT NULL
)`

// OpenMigratedPool connects to the database named by TEST_DATABASE_URL,
// ensures the schema exists, and truncates it so each test run starts clean.
// Tests are skipped when TEST_DATABASE_URL is unset.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolOptions{})
	if err != nil {
		t.Fatalf("open postgres pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE locations`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}
