package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the declarative schema shared by EnsureSchema and cmd/migrate.
//
//go:embed schema.sql
var Schema string

// EnsureSchema creates missing tables. Every statement is idempotent, so it
// is safe to run on each start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
