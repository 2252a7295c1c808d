// Package databasetest opens migrated in-memory databases for tests.
package databasetest

import (
	"testing"

	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/database"
	"gorm.io/gorm"
)

// Config returns a production-mode config backed by an in-memory SQLite database.
func Config() *config.AppConfig {
	cfg := config.Default()
	cfg.Env = "production"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = ":memory:"
	cfg.DSN = ":memory:"
	return cfg
}

// Open returns a fresh migrated database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Connect(Config(), true)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
