package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

const tagColumns = `id, key, label, color, category, is_active, sort_order, created_at, updated_at`

func scanTag(row rowScanner) (model.Tag, error) {
	var t model.Tag
	err := row.Scan(&t.ID, &t.Key, &t.Label, &t.Color, &t.Category, &t.IsActive, &t.Order, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *implRepository) CreateTag(ctx context.Context, opt repo.CreateTagOptions) (model.Tag, error) {
	query := `
		INSERT INTO menu_tags (id, key, label, color, category, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + tagColumns

	t, err := scanTag(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Key, opt.Label, opt.Color, string(opt.Category), opt.IsActive, opt.Order,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTag"), err)
		return model.Tag{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// buildGetOneTagQuery builds WHERE clause + args for GetOneTag.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneTagQuery(opt repo.GetOneTagOptions) (string, []any) {
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

func (r *implRepository) GetOneTag(ctx context.Context, opt repo.GetOneTagOptions) (model.Tag, error) {
	where, args := r.buildGetOneTagQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM menu_tags WHERE %s LIMIT 1", tagColumns, where)

	t, err := scanTag(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTag"), err)
		return model.Tag{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) ListTags(ctx context.Context, opt repo.ListTagsOptions) ([]model.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM menu_tags`
	if opt.ActiveOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, key`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTags"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) UpdateTag(ctx context.Context, opt repo.UpdateTagOptions) (model.Tag, error) {
	query := `
		UPDATE menu_tags
		SET key = $1, label = $2, color = $3, category = $4, is_active = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + tagColumns

	t, err := scanTag(r.db.QueryRowContext(ctx, query,
		opt.Key, opt.Label, opt.Color, string(opt.Category), opt.IsActive, opt.Order, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tag{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTag"), err)
		return model.Tag{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

func (r *implRepository) DeleteTag(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_tags WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTag"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
