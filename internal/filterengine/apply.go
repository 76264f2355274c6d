package filterengine

import "qr-menu/internal/model"

// SelectFilter finds the active filter named key. The "all" sentinel, an empty key,
// an unknown key and an inactive filter all report false.
func SelectFilter(filters []model.Filter, key string) (model.Filter, bool) {
	if key == "" || key == model.FilterKeyAll {
		return model.Filter{}, false
	}
	for _, f := range filters {
		if f.Key == key && f.IsActive {
			return f, true
		}
	}
	return model.Filter{}, false
}

// ApplyFilter narrows items to the filter selected by key. When no filter is selected
// the catalog is returned unchanged.
func ApplyFilter(items []model.Item, filters []model.Filter, key string, tags TagIndex) []model.Item {
	f, ok := SelectFilter(filters, key)
	if !ok {
		return items
	}
	return FilterItems(items, f.Predicate, tags)
}
