package memory

import (
	"cmp"
	"context"
	"slices"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/model"
)

func (r *implRepository) CreateFilter(ctx context.Context, opt repo.CreateFilterOptions) (model.Filter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	f := model.Filter{
		ID:          opt.ID,
		Key:         opt.Key,
		Label:       opt.Label,
		Description: opt.Description,
		Icon:        opt.Icon,
		Type:        opt.Type,
		Predicate:   opt.Predicate,
		IsActive:    opt.IsActive,
		Order:       opt.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.filters = append(r.filters, f)
	r.bump()
	return f, nil
}

// GetOneFilter matches every non-empty option field; zero-value Filter when not found.
func (r *implRepository) GetOneFilter(ctx context.Context, opt repo.GetOneFilterOptions) (model.Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.filters, func(f model.Filter) bool {
		return (opt.ID == "" || f.ID == opt.ID) && (opt.Key == "" || f.Key == opt.Key)
	})
	if i < 0 || (opt.ID == "" && opt.Key == "") {
		return model.Filter{}, nil
	}
	return r.filters[i], nil
}

func (r *implRepository) ListFilters(ctx context.Context, opt repo.ListFiltersOptions) ([]model.Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Filter, 0, len(r.filters))
	for _, f := range r.filters {
		if opt.ActiveOnly && !f.IsActive {
			continue
		}
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b model.Filter) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Key, b.Key))
	})
	return out, nil
}

func (r *implRepository) UpdateFilter(ctx context.Context, opt repo.UpdateFilterOptions) (model.Filter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.filters, func(f model.Filter) bool { return f.ID == opt.ID })
	if i < 0 {
		return model.Filter{}, nil
	}
	f := &r.filters[i]
	f.Key = opt.Key
	f.Label = opt.Label
	f.Description = opt.Description
	f.Icon = opt.Icon
	f.Type = opt.Type
	f.Predicate = opt.Predicate
	f.IsActive = opt.IsActive
	f.Order = opt.Order
	f.UpdatedAt = r.now()
	r.bump()
	return *f, nil
}

func (r *implRepository) DeleteFilter(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.filters = slices.DeleteFunc(r.filters, func(f model.Filter) bool { return f.ID == id })
	r.bump()
	return nil
}

// ReorderFilters sets each listed filter's order to its position in orderedIDs.
// Unknown IDs are ignored.
func (r *implRepository) ReorderFilters(ctx context.Context, orderedIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for pos, id := range orderedIDs {
		if i := indexOf(r.filters, func(f model.Filter) bool { return f.ID == id }); i >= 0 {
			r.filters[i].Order = pos
			r.filters[i].UpdatedAt = now
		}
	}
	r.bump()
	return nil
}
