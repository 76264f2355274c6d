package memory

import (
	"context"
	"slices"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

func cloneItem(it model.Item) model.Item {
	it.TagIDs = slices.Clone(it.TagIDs)
	if it.TagIDs == nil {
		it.TagIDs = []string{}
	}
	return it
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	item := cloneItem(model.Item{
		ID:          opt.ID,
		Name:        opt.Name,
		Description: opt.Description,
		Price:       opt.Price,
		Category:    opt.Category,
		TagIDs:      opt.TagIDs,
		IsVisible:   opt.IsVisible,
		Image:       opt.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	r.items = append(r.items, item)
	r.bump()
	return cloneItem(item), nil
}

// GetOneItem returns a zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, id string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.items, func(it model.Item) bool { return it.ID == id })
	if i < 0 {
		return model.Item{}, nil
	}
	return cloneItem(r.items[i]), nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if opt.Category != "" && it.Category != opt.Category {
			continue
		}
		if opt.VisibleOnly && !it.IsVisible {
			continue
		}
		matched = append(matched, cloneItem(it))
	}

	total := len(matched)
	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			return []model.Item{}, total, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, total, nil
}

// UpdateItem returns a zero-value Item when the item does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.items, func(it model.Item) bool { return it.ID == opt.ID })
	if i < 0 {
		return model.Item{}, nil
	}
	it := &r.items[i]
	it.Name = opt.Name
	it.Description = opt.Description
	it.Price = opt.Price
	it.Category = opt.Category
	it.TagIDs = slices.Clone(opt.TagIDs)
	it.IsVisible = opt.IsVisible
	it.Image = opt.Image
	it.UpdatedAt = r.now()
	r.bump()
	return cloneItem(*it), nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = slices.DeleteFunc(r.items, func(it model.Item) bool { return it.ID == id })
	r.bump()
	return nil
}

func (r *implRepository) CountItemsInCategory(ctx context.Context, categoryID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, it := range r.items {
		if it.Category == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *implRepository) RemoveTagFromItems(ctx context.Context, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		r.items[i].TagIDs = slices.DeleteFunc(r.items[i].TagIDs, func(t string) bool { return t == tagID })
	}
	r.bump()
	return nil
}
