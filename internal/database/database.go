package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/rmstack/rmstack/internal/countries"
	"github.com/rmstack/rmstack/internal/users"
)

// Open opens the embedded SQLite database and returns the process-wide bun
// handle. The handle is created once at startup and shared across all
// requests; SQLite serializes writes internally.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single connection keeps the shared-cache handle alive and avoids
	// SQLITE_BUSY on concurrent writes.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}

// OpenFile ensures the parent directory of the database file exists before
// opening it.
func OpenFile(path string) (*bun.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return Open(fmt.Sprintf("file:%s?cache=shared", path))
}

// CreateTables creates all tables used by the application
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []interface{}{
		(*users.UserSchema)(nil),
		(*countries.CountrySchema)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for model %T: %w", model, err)
		}
	}

	return nil
}

// SetupDefaults seeds reference data that the application expects to exist
func SetupDefaults(ctx context.Context, db *bun.DB) error {
	return countries.Seed(ctx, db)
}
