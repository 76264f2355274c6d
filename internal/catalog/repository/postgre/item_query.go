package postgre

import (
	"fmt"
	"strings"

	repo "qr-menu/internal/catalog/repository"
)

const itemColumns = `id, name, description, price, category_id, tag_ids, is_visible, image, created_at, updated_at`

// buildItemFilter builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildItemFilter(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}
	if opt.VisibleOnly {
		conditions = append(conditions, "is_visible")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	where, args := r.buildItemFilter(opt)
	parts := []string{"WHERE " + where, "ORDER BY created_at, id"}
	idx := len(args) + 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
