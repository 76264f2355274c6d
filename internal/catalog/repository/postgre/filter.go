package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

const filterColumns = `id, key, label, description, icon, type, predicate, is_active, sort_order, created_at, updated_at`

func scanFilter(row rowScanner) (model.Filter, error) {
	var f model.Filter
	var predicate []byte
	err := row.Scan(
		&f.ID, &f.Key, &f.Label, &f.Description, &f.Icon, &f.Type, &predicate,
		&f.IsActive, &f.Order, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return model.Filter{}, err
	}
	if len(predicate) > 0 {
		if err := json.Unmarshal(predicate, &f.Predicate); err != nil {
			return model.Filter{}, fmt.Errorf("decode predicate of filter %s: %w", f.ID, err)
		}
	}
	return f, nil
}

func (r *implRepository) CreateFilter(ctx context.Context, opt repo.CreateFilterOptions) (model.Filter, error) {
	predicate, err := json.Marshal(opt.Predicate)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateFilter"), err)
		return model.Filter{}, repo.ErrFailedToInsert
	}

	query := `
		INSERT INTO menu_filters (id, key, label, description, icon, type, predicate, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + filterColumns

	f, err := scanFilter(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Key, opt.Label, opt.Description, opt.Icon, string(opt.Type), predicate, opt.IsActive, opt.Order,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFilter"), err)
		return model.Filter{}, repo.ErrFailedToInsert
	}
	return f, nil
}

// buildGetOneFilterQuery builds WHERE clause + args for GetOneFilter.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneFilterQuery(opt repo.GetOneFilterOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Key != "" {
		conditions = append(conditions, fmt.Sprintf("key = $%d", idx))
		args = append(args, opt.Key)
	}

	if len(conditions) == 0 {
		return "1=0", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) GetOneFilter(ctx context.Context, opt repo.GetOneFilterOptions) (model.Filter, error) {
	where, args := r.buildGetOneFilterQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM menu_filters WHERE %s LIMIT 1", filterColumns, where)

	f, err := scanFilter(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Filter{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneFilter"), err)
		return model.Filter{}, repo.ErrFailedToGet
	}
	return f, nil
}

func (r *implRepository) ListFilters(ctx context.Context, opt repo.ListFiltersOptions) ([]model.Filter, error) {
	query := `SELECT ` + filterColumns + ` FROM menu_filters`
	if opt.ActiveOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFilters"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.Filter{}
	for rows.Next() {
		f, err := scanFilter(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFilters"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListFilters"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) UpdateFilter(ctx context.Context, opt repo.UpdateFilterOptions) (model.Filter, error) {
	predicate, err := json.Marshal(opt.Predicate)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("UpdateFilter"), err)
		return model.Filter{}, repo.ErrFailedToUpdate
	}

	query := `
		UPDATE menu_filters
		SET key = $1, label = $2, description = $3, icon = $4, type = $5, predicate = $6,
		    is_active = $7, sort_order = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + filterColumns

	f, err := scanFilter(r.db.QueryRowContext(ctx, query,
		opt.Key, opt.Label, opt.Description, opt.Icon, string(opt.Type), predicate, opt.IsActive, opt.Order, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Filter{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateFilter"), err)
		return model.Filter{}, repo.ErrFailedToUpdate
	}
	return f, nil
}

func (r *implRepository) DeleteFilter(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_filters WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteFilter"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReorderFilters writes every position in one transaction.
func (r *implRepository) ReorderFilters(ctx context.Context, orderedIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ReorderFilters"), err)
		return repo.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	const query = `UPDATE menu_filters SET sort_order = $1, updated_at = NOW() WHERE id = $2`
	for pos, id := range orderedIDs {
		if _, err := tx.ExecContext(ctx, query, pos, id); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("ReorderFilters"), id, err)
			return repo.ErrFailedToUpdate
		}
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ReorderFilters"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
