package memory

import (
	"cmp"
	"context"
	"slices"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	c := model.Category{
		ID:          opt.ID,
		Name:        opt.Name,
		Description: opt.Description,
		Order:       opt.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.categories = append(r.categories, c)
	r.bump()
	return c, nil
}

func (r *implRepository) GetOneCategory(ctx context.Context, id string) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.categories, func(c model.Category) bool { return c.ID == id })
	if i < 0 {
		return model.Category{}, nil
	}
	return r.categories[i], nil
}

// ListCategories returns categories by sort order, then name.
func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.categories)
	slices.SortStableFunc(out, func(a, b model.Category) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Name, b.Name))
	})
	if out == nil {
		out = []model.Category{}
	}
	return out, nil
}

func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.categories, func(c model.Category) bool { return c.ID == opt.ID })
	if i < 0 {
		return model.Category{}, nil
	}
	c := &r.categories[i]
	c.Name = opt.Name
	c.Description = opt.Description
	c.Order = opt.Order
	c.UpdatedAt = r.now()
	r.bump()
	return *c, nil
}

func (r *implRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = slices.DeleteFunc(r.categories, func(c model.Category) bool { return c.ID == id })
	r.bump()
	return nil
}
