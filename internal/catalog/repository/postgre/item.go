package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanItem(row rowScanner) (model.Item, error) {
	types := r.types.Get().(*pgtype.Map)
	defer r.types.Put(types)

	var item model.Item
	tagIDs := []string{}
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		types.SQLScanner(&tagIDs), &item.IsVisible, &item.Image, &item.CreatedAt, &item.UpdatedAt,
	)
	item.TagIDs = tagIDs
	return item, err
}

func tagArg(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query := `
		INSERT INTO menu_items (id, name, description, price, category_id, tag_ids, is_visible, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + itemColumns

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Name, opt.Description, opt.Price, opt.Category, tagArg(opt.TagIDs), opt.IsVisible, opt.Image,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem returns a zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, id string) (model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items WHERE id = $1 LIMIT 1`

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a page of Items and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	// 1. Count total (without pagination)
	where, countArgs := r.buildItemFilter(opt)
	var total int
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM menu_items WHERE %s", where), countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM menu_items %s", itemColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem overwrites an Item by ID. Returns a zero-value Item when the row is gone.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category_id = $4, tag_ids = $5,
		    is_visible = $6, image = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + itemColumns

	item, err := r.scanItem(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Price, opt.Category, tagArg(opt.TagIDs), opt.IsVisible, opt.Image, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) CountItemsInCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, categoryID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountItemsInCategory"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}

func (r *implRepository) RemoveTagFromItems(ctx context.Context, tagID string) error {
	const query = `UPDATE menu_items SET tag_ids = array_remove(tag_ids, $1), updated_at = NOW() WHERE $1 = ANY(tag_ids)`
	if _, err := r.db.ExecContext(ctx, query, tagID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RemoveTagFromItems"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
