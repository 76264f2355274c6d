package usecase

import (
	"context"
	"strings"

	"qr-menu/internal/filterengine"
	"qr-menu/internal/menu"
	"qr-menu/internal/model"
)

// GetMenu renders the customer menu for the requested filter. Hidden items are never
// shown. An unknown or inactive filter key falls back to the full menu.
func (uc *implUseCase) GetMenu(ctx context.Context, input menu.GetMenuInput) (menu.MenuOutput, error) {
	s, err := uc.loadSnapshot(ctx)
	if err != nil {
		return menu.MenuOutput{}, err
	}

	f, ok := filterengine.SelectFilter(s.filters, input.FilterKey)
	key := menuKey{revision: s.revision, filterKey: model.FilterKeyAll}
	if ok {
		key.filterKey = f.Key
	}
	if out, hit := uc.menus.Get(key); hit {
		return out, nil
	}

	out := uc.render(ctx, s, s.visible(), f, ok, nil)
	uc.menus.Add(key, out)
	return out, nil
}

// Preview renders the menu with hidden items included and drafts appended to their
// categories. It is never cached.
func (uc *implUseCase) Preview(ctx context.Context, input menu.PreviewInput) (menu.MenuOutput, error) {
	for _, d := range input.Drafts {
		if strings.TrimSpace(d.Name) == "" || d.Category == "" || d.Price < 0 {
			return menu.MenuOutput{}, menu.ErrInvalidDraft
		}
	}

	s, err := uc.loadSnapshot(ctx)
	if err != nil {
		return menu.MenuOutput{}, err
	}
	f, ok := filterengine.SelectFilter(s.filters, input.FilterKey)
	return uc.render(ctx, s, s.items, f, ok, input.Drafts), nil
}

func (uc *implUseCase) render(ctx context.Context, s snapshot, items []model.Item, f model.Filter, selected bool, drafts []model.Item) menu.MenuOutput {
	out := menu.MenuOutput{ActiveFilter: model.FilterKeyAll, Revision: s.revision}
	if selected {
		out.ActiveFilter = f.Key
		if err := filterengine.CheckPredicate(f.Predicate); err != nil {
			uc.l.Warnf(ctx, "uc.render filter %q: %v: %v", f.Key, menu.ErrInvalidPredicate, err)
		}
		items = filterengine.FilterItems(items, f.Predicate, s.tags)
	}
	out.Groups = filterengine.GroupByCategory(s.categories, items, drafts)
	return out
}

// ListFilters returns the customer filter bar: "all" first, then every active filter
// in display order.
func (uc *implUseCase) ListFilters(ctx context.Context) (menu.ListFiltersOutput, error) {
	s, err := uc.loadSnapshot(ctx)
	if err != nil {
		return menu.ListFiltersOutput{}, err
	}

	opts := []menu.FilterOption{{Key: model.FilterKeyAll, Label: "Todos"}}
	for _, f := range s.filters {
		if !f.IsActive {
			continue
		}
		opts = append(opts, menu.FilterOption{Key: f.Key, Label: f.Label, Icon: f.Icon, Type: f.Type})
	}
	return menu.ListFiltersOutput{Filters: opts, Revision: s.revision}, nil
}
