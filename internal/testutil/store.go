package testutil

import (
	"context"
	"testing"

	dbadapter "github.com/ChaiyasitZ/backend-project-AdvCompro/internal/adapter/db"

	"github.com/jmoiron/sqlx"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
// It is closed automatically when the test completes.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.ConnectSQLite(":memory:")
	if err != nil {
		t.Fatalf("creating test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test db: %v", err)
		}
	})

	if err := dbadapter.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	return db
}

// NewTestStore wraps NewTestDB in a store.
func NewTestStore(t *testing.T) *dbadapter.Store {
	t.Helper()
	return dbadapter.NewStore(NewTestDB(t))
}
