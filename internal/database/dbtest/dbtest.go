// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"film-backend/internal/config"
	"film-backend/internal/database"
)

var seq atomic.Int64

// New returns a migrated sqlite database with roles seeded. It is closed
// when the test finishes.
func New(t testing.TB) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   dsn,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("dbtest: connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.EnsureRoles(context.Background()); err != nil {
		t.Fatalf("dbtest: ensure roles: %v", err)
	}
	return db
}
