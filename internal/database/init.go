package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/yourusername/pick-settler/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Initialize creates a database connection pool and makes sure the picks
// table exists.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema applies the idempotent picks schema
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
