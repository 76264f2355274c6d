package memory

import (
	"cmp"
	"context"
	"slices"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

func (r *implRepository) CreateTag(ctx context.Context, opt repo.CreateTagOptions) (model.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	t := model.Tag{
		ID:        opt.ID,
		Key:       opt.Key,
		Label:     opt.Label,
		Color:     opt.Color,
		Category:  opt.Category,
		IsActive:  opt.IsActive,
		Order:     opt.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tags = append(r.tags, t)
	r.bump()
	return t, nil
}

// GetOneTag matches every non-empty option field; zero-value Tag when not found.
func (r *implRepository) GetOneTag(ctx context.Context, opt repo.GetOneTagOptions) (model.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.tags, func(t model.Tag) bool {
		return (opt.ID == "" || t.ID == opt.ID) && (opt.Key == "" || t.Key == opt.Key)
	})
	if i < 0 || (opt.ID == "" && opt.Key == "") {
		return model.Tag{}, nil
	}
	return r.tags[i], nil
}

func (r *implRepository) ListTags(ctx context.Context, opt repo.ListTagsOptions) ([]model.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		if opt.ActiveOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b model.Tag) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Key, b.Key))
	})
	return out, nil
}

func (r *implRepository) UpdateTag(ctx context.Context, opt repo.UpdateTagOptions) (model.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.tags, func(t model.Tag) bool { return t.ID == opt.ID })
	if i < 0 {
		return model.Tag{}, nil
	}
	t := &r.tags[i]
	t.Key = opt.Key
	t.Label = opt.Label
	t.Color = opt.Color
	t.Category = opt.Category
	t.IsActive = opt.IsActive
	t.Order = opt.Order
	t.UpdatedAt = r.now()
	r.bump()
	return *t, nil
}

func (r *implRepository) DeleteTag(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tags = slices.DeleteFunc(r.tags, func(t model.Tag) bool { return t.ID == id })
	r.bump()
	return nil
}
