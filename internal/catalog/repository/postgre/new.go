package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgtype"

	"qr-menu/internal/catalog/repository"
	"qr-menu/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	types sync.Pool // *pgtype.Map, which is not safe for concurrent use
}

// New creates a new PostgreSQL-backed Repository for the catalog domain. db is
// expected to be opened with the pgx stdlib driver.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{
		db:    db,
		l:     l,
		types: sync.Pool{New: func() any { return pgtype.NewMap() }},
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}

// Revision implements repository.Repository. Triggers on every catalog table keep it current.
func (r *implRepository) Revision(ctx context.Context) (int64, error) {
	var rev int64
	if err := r.db.QueryRowContext(ctx, `SELECT revision FROM catalog_revision WHERE id = 1`).Scan(&rev); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Revision"), err)
		return 0, repository.ErrFailedToGet
	}
	return rev, nil
}
