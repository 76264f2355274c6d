package usecase

import (
	"context"

	repo "qr-menu/internal/catalog/repository"
	"qr-menu/internal/filterengine"
	"qr-menu/internal/model"
)

// snapshot is one consistent read of the catalog. It is shared between requests and
// must not be mutated.
type snapshot struct {
	revision   int64
	items      []model.Item
	filters    []model.Filter
	categories []model.Category
	tags       filterengine.TagIndex
}

func (uc *implUseCase) loadSnapshot(ctx context.Context) (snapshot, error) {
	rev, err := uc.repo.Revision(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadSnapshot Revision: %v", err)
		return snapshot{}, err
	}
	if s, ok := uc.snapshots.Get(rev); ok {
		return s, nil
	}

	items, _, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadSnapshot ListItems: %v", err)
		return snapshot{}, err
	}
	tags, err := uc.repo.ListTags(ctx, repo.ListTagsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadSnapshot ListTags: %v", err)
		return snapshot{}, err
	}
	filters, err := uc.repo.ListFilters(ctx, repo.ListFiltersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadSnapshot ListFilters: %v", err)
		return snapshot{}, err
	}
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadSnapshot ListCategories: %v", err)
		return snapshot{}, err
	}

	s := snapshot{
		revision:   rev,
		items:      items,
		filters:    filters,
		categories: categories,
		tags:       filterengine.NewTagIndex(tags),
	}
	uc.snapshots.Add(rev, s)
	return s, nil
}

// visible returns the items customers may see.
func (s snapshot) visible() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.IsVisible {
			out = append(out, it)
		}
	}
	return out
}
