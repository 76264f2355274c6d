package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

const categoryColumns = `id, name, description, sort_order, created_at, updated_at`

func scanCategory(row rowScanner) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	query := `
		INSERT INTO menu_categories (id, name, description, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, opt.ID, opt.Name, opt.Description, opt.Order))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) GetOneCategory(ctx context.Context, id string) (model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM menu_categories WHERE id = $1 LIMIT 1`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM menu_categories ORDER BY sort_order, name`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	query := `
		UPDATE menu_categories SET name = $1, description = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Order, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

func (r *implRepository) DeleteCategory(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_categories WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
