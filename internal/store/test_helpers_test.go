package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/minhvu/cutcoach/internal/db"
	"github.com/minhvu/cutcoach/internal/store"
)

func newTestStore(t *testing.T) (store.Store, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cutcoach.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	return store.NewSQLite(sqldb), sqldb
}

func floatPtr(v float64) *float64 {
	return &v
}
