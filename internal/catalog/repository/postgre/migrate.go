package postgre

import (
	"context"
	"database/sql"
	_ "embed"
)

//go:embed migrations/0001_init.up.sql
var initMigrationUp string

//go:embed migrations/0001_init.down.sql
var initMigrationDown string

// MigrateUp creates the catalog schema. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, initMigrationUp)
	return err
}

// MigrateDown drops the catalog schema.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, initMigrationDown)
	return err
}
