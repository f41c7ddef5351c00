package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testStore is nil when no test database is configured; every test calls
// requireTestDB and skips in that case.
var testStore *Store

func TestMain(m *testing.M) {
	if dsn := os.Getenv("TEST_DB_SOURCE"); dsn != "" {
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("cannot create db pool: %v", err)
		}
		testStore = NewStore(pool)
	}

	os.Exit(m.Run())
}

func requireTestDB(t *testing.T) {
	t.Helper()
	if testStore == nil {
		t.Skip("TEST_DB_SOURCE is not set; skipping database tests")
	}
}
